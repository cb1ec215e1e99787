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

package keystorev3

import (
	"crypto/subtle"

	"golang.org/x/crypto/sha3"
)

// computeMAC is the Web3 MAC convention: Keccak-256 over the MAC-key slice
// of the derived key concatenated with the ciphertext (not the plaintext).
func computeMAC(macKey []byte, ciphertext []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(macKey)
	h.Write(ciphertext)
	return h.Sum(nil)
}

func macEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
