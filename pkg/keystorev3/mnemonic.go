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
	"bytes"
	"fmt"
)

// defaultDerivationPath is used whenever x-ethers/path (decrypt) or
// Account.Path (encrypt) is absent.
const defaultDerivationPath = "m/44'/60'/0'/0/0"

type mnemonicPlain struct {
	phrase string
	path   string
}

// decryptMnemonicSection runs the F-component decrypt path: decrypt entropy
// under key[32:64], recover the phrase, derive along the document's path
// (or the default), and cross-check against the private key already
// recovered from the Web3 section.
func decryptMnemonicSection(doc interface{}, key []byte, hd HDWallet, expectedPrivateKey PrivateKey) (mnemonicPlain, error) {
	ivHex, found, err := getString(doc, "x-ethers/mnemonicCounter")
	if err != nil {
		return mnemonicPlain{}, err
	}
	if !found {
		return mnemonicPlain{}, fmt.Errorf("%w: missing x-ethers/mnemonicCounter", ErrInvalidIv)
	}
	iv, err := looseHexDecode(ivHex)
	if err != nil {
		return mnemonicPlain{}, err
	}
	if len(iv) != 16 {
		return mnemonicPlain{}, fmt.Errorf("%w: mnemonicCounter must be 16 bytes, got %d", ErrInvalidIv, len(iv))
	}

	ctHex, found, err := getString(doc, "x-ethers/mnemonicCiphertext")
	if err != nil {
		return mnemonicPlain{}, err
	}
	if !found {
		return mnemonicPlain{}, fmt.Errorf("%w: missing x-ethers/mnemonicCiphertext", ErrMnemonicMismatch)
	}
	ciphertext, err := looseHexDecode(ctHex)
	if err != nil {
		return mnemonicPlain{}, err
	}

	entropy, err := aes128CtrDecrypt(key[32:64], iv, ciphertext)
	if err != nil {
		return mnemonicPlain{}, err
	}
	defer zeroize(entropy)

	phrase, err := hd.EntropyToMnemonic(entropy)
	if err != nil {
		return mnemonicPlain{}, fmt.Errorf("%w: %s", ErrMnemonicMismatch, err)
	}

	path, found, err := getString(doc, "x-ethers/path")
	if err != nil {
		return mnemonicPlain{}, err
	}
	if !found {
		path = defaultDerivationPath
	}

	derived, err := hd.DerivePrivateKey(phrase, path)
	if err != nil {
		return mnemonicPlain{}, fmt.Errorf("%w: %s", ErrMnemonicMismatch, err)
	}
	defer zeroize(derived)

	if !bytes.Equal(derived, expectedPrivateKey[:]) {
		return mnemonicPlain{}, fmt.Errorf("%w: mnemonic/path derives a different private key than the Web3 section", ErrMnemonicMismatch)
	}

	return mnemonicPlain{phrase: phrase, path: path}, nil
}

// validateMnemonicForEncrypt is the H-component pre-validation: the
// caller's mnemonic must derive, along path (defaulted if empty), to
// privateKey. Runs before any KDF work.
func validateMnemonicForEncrypt(hd HDWallet, mnemonic, path string, privateKey PrivateKey) (resolvedPath string, err error) {
	if path == "" {
		path = defaultDerivationPath
	}
	derived, err := hd.DerivePrivateKey(mnemonic, path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMnemonicMismatch, err)
	}
	defer zeroize(derived)
	if !bytes.Equal(derived, privateKey[:]) {
		return "", fmt.Errorf("%w: mnemonic/path does not derive the supplied private key", ErrMnemonicMismatch)
	}
	return path, nil
}

// encryptMnemonicSection runs the F-component encrypt path: entropy is
// recovered from the mnemonic and encrypted under key[32:64] with iv.
func encryptMnemonicSection(hd HDWallet, mnemonic string, key []byte, iv []byte) (entropy []byte, ciphertext []byte, err error) {
	entropy, err = hd.MnemonicToEntropy(mnemonic)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrMnemonicMismatch, err)
	}
	ciphertext = mustAES128CtrEncrypt(key[32:64], iv, entropy)
	return entropy, ciphertext, nil
}
