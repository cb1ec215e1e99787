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

func TestComputeMACIsOverCiphertextNotPlaintext(t *testing.T) {
	key := make([]byte, 16)
	ciphertext := []byte{0x01, 0x02, 0x03}
	plaintext := []byte{0x04, 0x05, 0x06}

	macCipher := computeMAC(key, ciphertext)
	macPlain := computeMAC(key, plaintext)
	assert.NotEqual(t, macCipher, macPlain)
	assert.Len(t, macCipher, 32)
}

func TestComputeMACDeterministic(t *testing.T) {
	key := make([]byte, 16)
	ciphertext := []byte{0x01, 0x02, 0x03}
	assert.Equal(t, computeMAC(key, ciphertext), computeMAC(key, ciphertext))
}

func TestMacEqual(t *testing.T) {
	a := []byte{0x01, 0x02}
	b := []byte{0x01, 0x02}
	c := []byte{0x01, 0x03}
	assert.True(t, macEqual(a, b))
	assert.False(t, macEqual(a, c))
	assert.False(t, macEqual(a, []byte{0x01}))
}
