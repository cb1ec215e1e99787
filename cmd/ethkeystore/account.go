// Copyright © 2024 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"github.com/kaleido-io/ethkeystore/pkg/keystorev3"
	"github.com/kaleido-io/ethkeystore/pkg/secp256k1"
)

// deriveAddress mirrors keystorev3's default AddressDeriver so the CLI can
// fill in Account.Address for a caller-supplied private key before calling
// keystorev3.Encrypt (which re-derives and cross-checks it anyway).
func deriveAddress(privateKey keystorev3.PrivateKey) (keystorev3.Address, error) {
	kp, err := secp256k1.NewKeyPairFromBytes(privateKey[:])
	if err != nil {
		return keystorev3.Address{}, err
	}
	return keystorev3.Address(kp.Address), nil
}
