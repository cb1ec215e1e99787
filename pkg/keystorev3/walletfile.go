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
	"encoding/hex"
	"fmt"
	"time"
)

const (
	keystoreVersion = 3
	cipherAES128CTR = "aes-128-ctr"
	kdfScrypt       = "scrypt"
	xEthersVersion  = "0.1"
)

// Decoding reads an arbitrary document (case-insensitive keys, either
// "Crypto" or "crypto", tolerant of whichever kdf is present) via the
// B-component path resolver, never through these structs - Version 3
// documents in the wild disagree on field casing too much for a single
// fixed-shape struct to decode. Encoding always emits this exact
// canonical shape: lowercase, unprefixed hex throughout, "Crypto" (matching
// the ecosystem producer this codec targets), and scrypt as the only kdf
// encrypt ever writes.

type outputDocument struct {
	Address string         `json:"address"`
	ID      string         `json:"id"`
	Version int            `json:"version"`
	Crypto  outputCrypto   `json:"Crypto"`
	XEthers *outputXEthers `json:"x-ethers,omitempty"`
}

type outputCrypto struct {
	Cipher       string             `json:"cipher"`
	CipherText   string             `json:"ciphertext"`
	CipherParams outputCipherParams `json:"cipherparams"`
	KDF          string             `json:"kdf"`
	KDFParams    outputScryptParams `json:"kdfparams"`
	MAC          string             `json:"mac"`
}

type outputCipherParams struct {
	IV string `json:"iv"`
}

type outputScryptParams struct {
	DKLen int    `json:"dklen"`
	N     int    `json:"n"`
	R     int    `json:"r"`
	P     int    `json:"p"`
	Salt  string `json:"salt"`
}

type outputXEthers struct {
	Version            string `json:"version"`
	Client             string `json:"client"`
	GethFilename       string `json:"gethFilename"`
	MnemonicCounter    string `json:"mnemonicCounter"`
	MnemonicCiphertext string `json:"mnemonicCiphertext"`
	Path               string `json:"path"`
}

// gethFilename formats "UTC--<timestamp>--<addr>" with the timestamp's
// literal ".0Z" suffix geth-style keystore filenames use (not Go's
// fractional-second formatting, which would not produce that exact string).
func gethFilename(t time.Time, address Address) string {
	u := t.UTC()
	ts := fmt.Sprintf("%s-%s-%sT%s-%s-%s.0Z",
		zpad(u.Year(), 4), zpad(int(u.Month()), 2), zpad(u.Day(), 2),
		zpad(u.Hour(), 2), zpad(u.Minute(), 2), zpad(u.Second(), 2))
	return fmt.Sprintf("UTC--%s--%s", ts, hex.EncodeToString(address[:]))
}
