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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressStringIsChecksummed(t *testing.T) {
	a, err := addressFromHex("7e5f4552091a69125d5dfcb7b8c2659029395bdf")
	assert.NoError(t, err)
	s := a.String()
	assert.True(t, len(s) == 42 && s[:2] == "0x")
	assert.Equal(t, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", s)
}

func TestPrivateKeyString(t *testing.T) {
	var p PrivateKey
	p[31] = 0x01
	assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000001", p.String())
}

func TestDefaultAddressDeriverKnownVector(t *testing.T) {
	var pk PrivateKey
	pk[31] = 0x01
	addr, err := defaultDeriver.AddressOf(pk)
	assert.NoError(t, err)
	assert.Equal(t, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", addr.String())
}

func TestAddressFromHexAcceptsLooseForm(t *testing.T) {
	a, err := addressFromHex("7E5F4552091A69125d5DfCb7b8C2659029395Bdf")
	assert.NoError(t, err)
	assert.Equal(t, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", a.String())
}

func TestAddressFromHexWrongLength(t *testing.T) {
	_, err := addressFromHex("0x1234")
	assert.Error(t, err)
}
