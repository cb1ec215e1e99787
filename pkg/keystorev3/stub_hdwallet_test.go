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

import "fmt"

// stubHDWallet pins a single (mnemonic, path) -> privateKey mapping. The
// canonical scenario-1 seed vector pairs a fixed mnemonic with privateKey
// 0x00...01 - a fixture pairing, not one that falls out of real BIP-32/39/44
// math - so exercising it here requires substituting the real
// pkg/hdwallet.Default collaborator with this stub via WithHDWallet.
// MnemonicToEntropy/EntropyToMnemonic round-trip the phrase as raw bytes,
// which is sufficient to exercise the encrypt/decrypt entropy cipher without
// claiming anything about real BIP-39 wordlists.
type stubHDWallet struct {
	mnemonic   string
	path       string
	privateKey []byte
}

func (s stubHDWallet) MnemonicToEntropy(phrase string) ([]byte, error) {
	return []byte(phrase), nil
}

func (s stubHDWallet) EntropyToMnemonic(entropy []byte) (string, error) {
	return string(entropy), nil
}

func (s stubHDWallet) DerivePrivateKey(phrase, path string) ([]byte, error) {
	if phrase != s.mnemonic || path != s.path {
		return nil, fmt.Errorf("stubHDWallet: unexpected derive(%q, %q)", phrase, path)
	}
	out := make([]byte, len(s.privateKey))
	copy(out, s.privateKey)
	return out, nil
}
