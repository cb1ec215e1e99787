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
)

func mustUnmarshal(s string) interface{} {
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		panic(err)
	}
	return v
}

func scryptDoc(n, r, p, dklen int) interface{} {
	s := fmt.Sprintf(`{"crypto":{"kdf":"scrypt","kdfparams":{"n":%d,"r":%d,"p":%d,"dklen":%d,"salt":"0011223344556677001122334455667700112233445566770011223344556677"}}}`, n, r, p, dklen)
	return mustUnmarshal(s)
}

func TestDeriveScryptSuccess(t *testing.T) {
	doc := scryptDoc(4, 1, 1, 32)
	var progressCalls []float32
	key, err := deriveScrypt(doc, []byte("password"), func(f float32) { progressCalls = append(progressCalls, f) })
	assert.NoError(t, err)
	assert.Len(t, key, 64)
	assert.Equal(t, []float32{0.0, 1.0}, progressCalls)
}

func TestDeriveScryptZeroParam(t *testing.T) {
	doc := scryptDoc(0, 1, 1, 32)
	_, err := deriveScrypt(doc, []byte("password"), nil)
	assert.True(t, errors.Is(err, ErrUnsupportedKdfParams))
}

func TestDeriveScryptNotPowerOfTwo(t *testing.T) {
	doc := scryptDoc(1000, 1, 1, 32)
	_, err := deriveScrypt(doc, []byte("password"), nil)
	assert.True(t, errors.Is(err, ErrUnsupportedKdfNValue))
}

func TestDeriveScryptBadDklen(t *testing.T) {
	doc := scryptDoc(4, 1, 1, 16)
	_, err := deriveScrypt(doc, []byte("password"), nil)
	assert.True(t, errors.Is(err, ErrUnsupportedDkLen))
}

func pbkdf2Doc(prf string, c, dklen int) interface{} {
	s := fmt.Sprintf(`{"crypto":{"kdf":"pbkdf2","kdfparams":{"prf":"%s","c":%d,"dklen":%d,"salt":"00112233445566770011223344556677"}}}`, prf, c, dklen)
	return mustUnmarshal(s)
}

func TestDerivePbkdf2Success(t *testing.T) {
	doc := pbkdf2Doc("hmac-sha256", 4, 32)
	key, err := derivePbkdf2(doc, []byte("password"), nil)
	assert.NoError(t, err)
	assert.Len(t, key, 64)
}

func TestDerivePbkdf2BadPrf(t *testing.T) {
	doc := pbkdf2Doc("hmac-md5", 4, 32)
	_, err := derivePbkdf2(doc, []byte("password"), nil)
	assert.True(t, errors.Is(err, ErrUnsupportedPrf))
}

func TestDerivePbkdf2PrfCheckedBeforeOtherParams(t *testing.T) {
	// prf invalid, c missing entirely - still reports UnsupportedPrf, not
	// UnsupportedKdfParams, per the pre-validation-order requirement.
	doc := mustUnmarshal(`{"crypto":{"kdf":"pbkdf2","kdfparams":{"prf":"nope"}}}`)
	_, err := derivePbkdf2(doc, []byte("password"), nil)
	assert.True(t, errors.Is(err, ErrUnsupportedPrf))
}

func TestDeriveKeyMissingKdf(t *testing.T) {
	doc := mustUnmarshal(`{"crypto":{}}`)
	_, err := deriveKey(doc, []byte("password"), nil)
	assert.True(t, errors.Is(err, ErrUnsupportedKdf))
}

func TestDeriveKeyUnknownKdf(t *testing.T) {
	doc := mustUnmarshal(`{"crypto":{"kdf":"bcrypt"}}`)
	_, err := deriveKey(doc, []byte("password"), nil)
	assert.True(t, errors.Is(err, ErrUnsupportedKdf))
}
