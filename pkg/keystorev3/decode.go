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
	"encoding/json"
	"fmt"
	"strings"
)

// Decrypt parses document as a Version 3 Web3 Secret Storage keystore,
// derives the key material from password, verifies the MAC, and recovers
// the Account - including the mnemonic and path, if the document carries
// the x-ethers extension.
func Decrypt(document []byte, password interface{}, opts ...Option) (Account, error) {
	s := resolveSettings(opts)

	pw, err := passwordBytes(password)
	if err != nil {
		return Account{}, err
	}
	defer zeroize(pw)

	var doc interface{}
	if err := json.Unmarshal(document, &doc); err != nil {
		return Account{}, fmt.Errorf("%w: %s", ErrBadJSON, err)
	}

	cipher, found, err := getString(doc, "crypto/cipher")
	if err != nil {
		return Account{}, err
	}
	if !found || strings.ToLower(cipher) != cipherAES128CTR {
		return Account{}, fmt.Errorf("%w: %q", ErrUnsupportedCipher, cipher)
	}

	key, err := deriveKey(doc, pw, s.progress)
	if err != nil {
		return Account{}, err
	}
	defer zeroize(key)

	ivHex, found, err := getString(doc, "crypto/cipherparams/iv")
	if err != nil {
		return Account{}, err
	}
	if !found {
		return Account{}, fmt.Errorf("%w: missing crypto/cipherparams/iv", ErrInvalidIv)
	}
	iv, err := looseHexDecode(ivHex)
	if err != nil {
		return Account{}, err
	}

	ctHex, found, err := getString(doc, "crypto/ciphertext")
	if err != nil {
		return Account{}, err
	}
	if !found {
		return Account{}, fmt.Errorf("%w: missing crypto/ciphertext", ErrBadJSON)
	}
	ciphertext, err := looseHexDecode(ctHex)
	if err != nil {
		return Account{}, err
	}

	macHex, found, err := getString(doc, "crypto/mac")
	if err != nil {
		return Account{}, err
	}
	if !found {
		return Account{}, fmt.Errorf("%w: missing crypto/mac", ErrBadJSON)
	}
	expectedMAC, err := looseHexDecode(macHex)
	if err != nil {
		return Account{}, err
	}

	computedMAC := computeMAC(key[16:32], ciphertext)
	if !macEqual(computedMAC, expectedMAC) {
		return Account{}, ErrInvalidPassword
	}

	pkBytes, err := aes128CtrDecrypt(key[0:16], iv, ciphertext)
	if err != nil {
		return Account{}, err
	}
	defer zeroize(pkBytes)

	var privateKey PrivateKey
	copy(privateKey[:], pkBytes)

	derivedAddress, err := s.deriver.AddressOf(privateKey)
	if err != nil {
		return Account{}, err
	}

	account := Account{
		Address:    derivedAddress,
		PrivateKey: privateKey,
	}

	addrHex, found, err := getString(doc, "address")
	if err != nil {
		return Account{}, err
	}
	if found {
		docAddress, err := addressFromHex(addrHex)
		if err != nil {
			return Account{}, err
		}
		if docAddress != derivedAddress {
			return Account{}, fmt.Errorf("%w: document address %s does not match address %s derived from the decrypted private key",
				ErrAddressMismatch, docAddress.String(), derivedAddress.String())
		}
	}

	xeVersion, found, err := getString(doc, "x-ethers/version")
	if err != nil {
		return Account{}, err
	}
	if found && xeVersion == xEthersVersion {
		m, err := decryptMnemonicSection(doc, key, s.hd, privateKey)
		if err != nil {
			return Account{}, err
		}
		account.Mnemonic = m.phrase
		account.Path = m.path
	}

	return account, nil
}
