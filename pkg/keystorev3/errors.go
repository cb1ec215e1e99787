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

import "errors"

// Sentinel errors callers can match with errors.Is, rather than string
// matching. Wrapped with additional context via fmt.Errorf("...: %w", ...).
var (
	ErrBadJSON                   = errors.New("keystore document is not valid JSON")
	ErrAmbiguousKey              = errors.New("ambiguous JSON key casing")
	ErrUnsupportedKdf            = errors.New("unsupported kdf")
	ErrUnsupportedKdfParams      = errors.New("unsupported kdf params")
	ErrUnsupportedKdfNValue      = errors.New("scrypt n must be a power of two")
	ErrUnsupportedDkLen          = errors.New("unsupported derived key length")
	ErrUnsupportedPrf            = errors.New("unsupported pbkdf2 prf")
	ErrUnsupportedCipher         = errors.New("unsupported cipher")
	ErrInvalidPassword           = errors.New("invalid password")
	ErrAddressMismatch           = errors.New("address mismatch")
	ErrMnemonicMismatch          = errors.New("mnemonic mismatch")
	ErrAddressPrivateKeyMismatch = errors.New("address does not match private key")
	ErrPathWithoutMnemonic       = errors.New("path supplied without mnemonic")
	ErrInvalidIv                 = errors.New("invalid iv")
	ErrInvalidUUID               = errors.New("invalid uuid")
	ErrInvalidHex                = errors.New("invalid hex")
)
