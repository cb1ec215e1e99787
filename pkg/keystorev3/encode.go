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
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/scrypt"
)

// Encrypt encrypts account under password into a fresh Version 3 Web3
// Secret Storage document, emitting the x-ethers extension whenever
// account.Mnemonic is set. All pre-validation (address/private-key
// coherence, mnemonic/path/private-key coherence) runs before any KDF
// work.
func Encrypt(account Account, password interface{}, options EncryptOptions, opts ...Option) ([]byte, error) {
	s := resolveSettings(opts)

	derivedAddress, err := s.deriver.AddressOf(account.PrivateKey)
	if err != nil {
		return nil, err
	}
	if derivedAddress != account.Address {
		return nil, fmt.Errorf("%w: supplied address %s does not match address %s derived from the private key",
			ErrAddressPrivateKeyMismatch, account.Address.String(), derivedAddress.String())
	}

	if account.Path != "" && account.Mnemonic == "" {
		return nil, ErrPathWithoutMnemonic
	}

	var mnemonicPath string
	if account.Mnemonic != "" {
		mnemonicPath, err = validateMnemonicForEncrypt(s.hd, account.Mnemonic, account.Path, account.PrivateKey)
		if err != nil {
			return nil, err
		}
	}

	pw, err := passwordBytes(password)
	if err != nil {
		return nil, err
	}
	defer zeroize(pw)

	salt, err := resolveRandomOverride(options.Salt, 32, ErrInvalidHex)
	if err != nil {
		return nil, err
	}
	iv, err := resolveRandomOverride(options.IV, 16, ErrInvalidIv)
	if err != nil {
		return nil, err
	}
	uuidSeed, err := resolveRandomOverride(options.UUID, 16, ErrInvalidUUID)
	if err != nil {
		return nil, err
	}

	n := options.Scrypt.N
	if n == 0 {
		n = defaultScryptN
	}
	r := options.Scrypt.R
	if r == 0 {
		r = defaultScryptR
	}
	p := options.Scrypt.P
	if p == 0 {
		p = defaultScryptP
	}
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: n=%d is not a power of two", ErrUnsupportedKdfNValue, n)
	}

	if s.progress != nil {
		s.progress(0.0)
	}
	key, err := scrypt.Key(pw, salt, n, r, p, derivedKeyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt derivation failed: %w", err)
	}
	if s.progress != nil {
		s.progress(1.0)
	}
	defer zeroize(key)

	ciphertext := mustAES128CtrEncrypt(key[0:16], iv, account.PrivateKey[:])
	mac := computeMAC(key[16:32], ciphertext)

	client := options.Client
	if client == "" {
		client = defaultClientTag
	}

	doc := outputDocument{
		Address: hex.EncodeToString(account.Address[:]),
		ID:      formatUUID(uuidSeed),
		Version: keystoreVersion,
		Crypto: outputCrypto{
			Cipher:       cipherAES128CTR,
			CipherText:   hex.EncodeToString(ciphertext),
			CipherParams: outputCipherParams{IV: hex.EncodeToString(iv)},
			KDF:          kdfScrypt,
			KDFParams: outputScryptParams{
				DKLen: 32,
				N:     n,
				R:     r,
				P:     p,
				Salt:  hex.EncodeToString(salt),
			},
			MAC: hex.EncodeToString(mac),
		},
	}

	if account.Mnemonic != "" {
		mnemonicIV, err := generateRandomBytes(16)
		if err != nil {
			return nil, err
		}
		entropy, mnemonicCiphertext, err := encryptMnemonicSection(s.hd, account.Mnemonic, key, mnemonicIV)
		if err != nil {
			return nil, err
		}
		zeroize(entropy)

		doc.XEthers = &outputXEthers{
			Version:            xEthersVersion,
			Client:             client,
			GethFilename:       gethFilename(time.Now(), account.Address),
			MnemonicCounter:    hex.EncodeToString(mnemonicIV),
			MnemonicCiphertext: hex.EncodeToString(mnemonicCiphertext),
			Path:               mnemonicPath,
		}
	}

	return json.Marshal(doc)
}

// formatUUID imposes UUIDv4 version/variant bits on a 16-byte seed,
// producing a deterministic string when the caller supplied EncryptOptions.UUID.
func formatUUID(seed []byte) string {
	id, err := uuid.NewRandomFromReader(bytes.NewReader(seed))
	if err != nil {
		// seed is always exactly 16 bytes by this point (resolveRandomOverride
		// guarantees it); bytes.Reader over 16 bytes cannot fail a 16-byte read.
		panic(fmt.Sprintf("uuid generation from a 16-byte seed failed: %s", err))
	}
	return id.String()
}
