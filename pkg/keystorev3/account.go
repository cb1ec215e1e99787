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

// Package keystorev3 implements the Web3 Secret Storage v3 keystore codec,
// including the x-ethers encrypted-mnemonic extension: Decrypt recovers an
// Account from a password-protected JSON document, Encrypt is its inverse.
// The package is pure - no file I/O, no CLI, no package-level mutable state.
package keystorev3

import (
	"encoding/hex"
	"fmt"

	"github.com/kaleido-io/ethkeystore/pkg/ethtypes"
	"github.com/kaleido-io/ethkeystore/pkg/hdwallet"
	"github.com/kaleido-io/ethkeystore/pkg/secp256k1"
)

// Address is a 20-byte Ethereum address.
type Address [20]byte

// String renders the EIP-55 checksum-cased form with a "0x" prefix.
func (a Address) String() string {
	return ethtypes.AddressWithChecksum(a).String()
}

// PrivateKey is a 32-byte secp256k1 private key.
type PrivateKey [32]byte

func (p PrivateKey) String() string {
	return "0x" + hex.EncodeToString(p[:])
}

// Account is the value Decrypt returns and Encrypt consumes. Mnemonic and
// Path are empty unless the keystore carries the x-ethers extension; Path
// MUST be empty whenever Mnemonic is.
type Account struct {
	Address    Address
	PrivateKey PrivateKey
	Mnemonic   string
	Path       string
}

// AddressDeriver derives the Ethereum address for a private key. The
// default implementation is secp256k1-backed (Keccak-256 of the
// uncompressed public key, low 20 bytes); callers embedding this codec next
// to their own key-management stack may substitute their own.
type AddressDeriver interface {
	AddressOf(privateKey PrivateKey) (Address, error)
}

// HDWallet converts between BIP-39 mnemonics and entropy, and walks BIP-32
// derivation paths to a private key. The default implementation is
// pkg/hdwallet.Default.
type HDWallet interface {
	MnemonicToEntropy(phrase string) ([]byte, error)
	EntropyToMnemonic(entropy []byte) (string, error)
	DerivePrivateKey(phrase, path string) ([]byte, error)
}

type defaultAddressDeriver struct{}

func (defaultAddressDeriver) AddressOf(privateKey PrivateKey) (Address, error) {
	kp, err := secp256k1.NewKeyPairFromBytes(privateKey[:])
	if err != nil {
		return Address{}, fmt.Errorf("failed to derive address: %w", err)
	}
	return Address(kp.Address), nil
}

var (
	defaultDeriver  AddressDeriver = defaultAddressDeriver{}
	defaultHDWallet HDWallet       = hdwallet.Default{}
)

// addressFromHex parses a loose-hex 20-byte address (with or without "0x").
func addressFromHex(s string) (Address, error) {
	b, err := looseHexDecode(s)
	if err != nil {
		return Address{}, err
	}
	if len(b) != 20 {
		return Address{}, fmt.Errorf("%w: address must be 20 bytes, got %d", ErrInvalidHex, len(b))
	}
	var a Address
	copy(a[:], b)
	return a, nil
}
