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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecryptBadJSON(t *testing.T) {
	_, err := Decrypt([]byte("not json"), "x")
	assert.True(t, errors.Is(err, ErrBadJSON))
}

func TestDecryptUnsupportedCipher(t *testing.T) {
	doc := []byte(`{"crypto":{"cipher":"aes-256-cbc"}}`)
	_, err := Decrypt(doc, "x")
	assert.True(t, errors.Is(err, ErrUnsupportedCipher))
}

// Scenario 7: a document carrying both "Crypto" and "crypto" as sibling
// keys is ambiguous under case-insensitive resolution.
func TestScenario7AmbiguousSiblingKeys(t *testing.T) {
	doc := []byte(`{"Crypto":{"cipher":"aes-128-ctr"},"crypto":{"cipher":"aes-128-ctr"}}`)
	_, err := Decrypt(doc, "x")
	assert.True(t, errors.Is(err, ErrAmbiguousKey))
}

// Scenario 5: a document whose declared address does not match the address
// derived from the decrypted private key, with an otherwise valid MAC.
func TestScenario5AddressMismatch(t *testing.T) {
	account := scenario1Account(t)
	account.Mnemonic = ""
	account.Path = ""
	options := EncryptOptions{
		Salt:   zeroBytes(32),
		IV:     zeroBytes(16),
		UUID:   zeroBytes(16),
		Scrypt: ScryptParams{N: 4, R: 1, P: 1},
	}
	doc, err := Encrypt(account, "foo", options)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(doc, &parsed))
	parsed["address"] = "0000000000000000000000000000000000000000"
	tampered, err := json.Marshal(parsed)
	require.NoError(t, err)

	_, err = Decrypt(tampered, "foo")
	assert.True(t, errors.Is(err, ErrAddressMismatch))
}

// Scenario 2: pbkdf2-derived documents decrypt successfully. Hand-built
// using the package's own pbkdf2 and AES-CTR primitives rather than a
// fixture produced by Encrypt, since Encrypt only ever writes scrypt
// documents.
func TestScenario2Pbkdf2Decrypt(t *testing.T) {
	account := scenario1Account(t)
	account.Mnemonic = ""
	account.Path = ""

	salt := zeroBytes(16)
	iv := zeroBytes(16)
	kdfDoc := mustUnmarshal(fmt.Sprintf(
		`{"crypto":{"kdf":"pbkdf2","kdfparams":{"prf":"hmac-sha256","c":4,"dklen":32,"salt":%q}}}`,
		bytesToHex(salt)))
	key, err := derivePbkdf2(kdfDoc, []byte("foo"), nil)
	require.NoError(t, err)

	ciphertext := mustAES128CtrEncrypt(key[0:16], iv, account.PrivateKey[:])
	mac := computeMAC(key[16:32], ciphertext)

	doc := fmt.Sprintf(`{
		"address": %q,
		"id": "00000000-0000-4000-8000-000000000000",
		"version": 3,
		"Crypto": {
			"cipher": "aes-128-ctr",
			"ciphertext": %q,
			"cipherparams": {"iv": %q},
			"kdf": "pbkdf2",
			"kdfparams": {"prf": "hmac-sha256", "c": 4, "dklen": 32, "salt": %q},
			"mac": %q
		}
	}`, account.Address.String()[2:], bytesToHex(ciphertext), bytesToHex(iv), bytesToHex(salt), bytesToHex(mac))

	decoded, err := Decrypt([]byte(doc), "foo")
	require.NoError(t, err)
	assert.Equal(t, account.Address, decoded.Address)
	assert.Equal(t, account.PrivateKey, decoded.PrivateKey)
}

func TestDecryptMissingCiphertextIsBadJSON(t *testing.T) {
	doc := []byte(`{"crypto":{"cipher":"aes-128-ctr","kdf":"scrypt","kdfparams":{"n":4,"r":1,"p":1,"dklen":32,"salt":"00"},"cipherparams":{"iv":"00112233445566778899aabbccddeeff"}}}`)
	_, err := Decrypt(doc, "x")
	assert.True(t, errors.Is(err, ErrBadJSON))
}
