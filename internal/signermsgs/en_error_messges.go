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

package signermsgs

import "github.com/hyperledger/firefly-common/pkg/i18n"

var ffe = i18n.FFE

//revive:disable
var (
	MsgInvalidKeystoreFile  = ffe("FF23010", "Failed to read keystore file '%s'")
	MsgDecryptFailed        = ffe("FF23011", "Failed to decrypt keystore: %s")
	MsgEncryptFailed        = ffe("FF23012", "Failed to encrypt keystore: %s")
	MsgInvalidPrivateKeyHex = ffe("FF23013", "Invalid private key hex '%s'")
	MsgInvalidAddressHex    = ffe("FF23014", "Invalid address hex '%s'")
	MsgMissingPassword      = ffe("FF23015", "Missing password")
	MsgPathWithoutMnemonic  = ffe("FF23016", "A derivation path was supplied without a mnemonic")
	MsgInvalidScryptN       = ffe("FF23017", "Scrypt N=%d is not a valid power of two")
	MsgOutputWriteFailed    = ffe("FF23018", "Failed to write keystore file '%s'")
	MsgConfigFileReadFailed = ffe("FF23019", "Failed to read config file '%s'")
)
