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
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// derivedKeyLen is always requested from the KDF, regardless of the
// document's advertised dklen (which only validates the Web3 half of the
// key). The upper 32 bytes feed the mnemonic sub-codec.
const derivedKeyLen = 64

// deriveKey dispatches on crypto/kdf and returns the full 64-byte derived
// key. progress, if non-nil, is called with 0.0 immediately before and 1.0
// immediately after the single synchronous KDF call - neither primitive
// exposes a finer-grained hook.
func deriveKey(doc interface{}, password []byte, progress func(float32)) ([]byte, error) {
	kdfName, found, err := getString(doc, "crypto/kdf")
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: missing crypto/kdf", ErrUnsupportedKdf)
	}
	switch strings.ToLower(kdfName) {
	case "scrypt":
		return deriveScrypt(doc, password, progress)
	case "pbkdf2":
		return derivePbkdf2(doc, password, progress)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKdf, kdfName)
	}
}

func deriveScrypt(doc interface{}, password []byte, progress func(float32)) ([]byte, error) {
	saltHex, found, err := getString(doc, "crypto/kdfparams/salt")
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: missing crypto/kdfparams/salt", ErrUnsupportedKdfParams)
	}
	salt, err := looseHexDecode(saltHex)
	if err != nil {
		return nil, err
	}

	n, err := getRequiredInt(doc, "crypto/kdfparams/n", ErrUnsupportedKdfParams)
	if err != nil {
		return nil, err
	}
	r, err := getRequiredInt(doc, "crypto/kdfparams/r", ErrUnsupportedKdfParams)
	if err != nil {
		return nil, err
	}
	p, err := getRequiredInt(doc, "crypto/kdfparams/p", ErrUnsupportedKdfParams)
	if err != nil {
		return nil, err
	}
	if n == 0 || r == 0 || p == 0 {
		return nil, fmt.Errorf("%w: n, r and p must all be non-zero", ErrUnsupportedKdfParams)
	}
	if n < 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: n=%d is not a power of two", ErrUnsupportedKdfNValue, n)
	}

	dklen, err := getRequiredInt(doc, "crypto/kdfparams/dklen", ErrUnsupportedKdfParams)
	if err != nil {
		return nil, err
	}
	if dklen != 32 {
		return nil, fmt.Errorf("%w: dklen=%d", ErrUnsupportedDkLen, dklen)
	}

	if progress != nil {
		progress(0.0)
	}
	key, err := scrypt.Key(password, salt, n, r, p, derivedKeyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt derivation failed: %w", err)
	}
	if progress != nil {
		progress(1.0)
	}
	return key, nil
}

func derivePbkdf2(doc interface{}, password []byte, progress func(float32)) ([]byte, error) {
	prf, found, err := getString(doc, "crypto/kdfparams/prf")
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: missing crypto/kdfparams/prf", ErrUnsupportedPrf)
	}
	var hashFn func() hash.Hash
	switch strings.ToLower(prf) {
	case "hmac-sha256":
		hashFn = sha256.New
	case "hmac-sha512":
		hashFn = sha512.New
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPrf, prf)
	}

	saltHex, found, err := getString(doc, "crypto/kdfparams/salt")
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: missing crypto/kdfparams/salt", ErrUnsupportedKdfParams)
	}
	salt, err := looseHexDecode(saltHex)
	if err != nil {
		return nil, err
	}

	c, err := getRequiredInt(doc, "crypto/kdfparams/c", ErrUnsupportedKdfParams)
	if err != nil {
		return nil, err
	}
	if c <= 0 {
		return nil, fmt.Errorf("%w: c must be positive", ErrUnsupportedKdfParams)
	}

	dklen, err := getRequiredInt(doc, "crypto/kdfparams/dklen", ErrUnsupportedKdfParams)
	if err != nil {
		return nil, err
	}
	if dklen != 32 {
		return nil, fmt.Errorf("%w: dklen=%d", ErrUnsupportedDkLen, dklen)
	}

	if progress != nil {
		progress(0.0)
	}
	key := pbkdf2.Key(password, salt, c, derivedKeyLen, hashFn)
	if progress != nil {
		progress(1.0)
	}
	return key, nil
}
