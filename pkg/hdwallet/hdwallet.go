// Copyright © 2022 Kaleido, Inc.
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

// Package hdwallet derives Ethereum private keys from BIP-39 mnemonics
// along BIP-32/44 derivation paths. It is the default implementation of
// the keystorev3.HDWallet collaborator used by the mnemonic sub-codec;
// keystorev3 never imports btcutil/go-bip39 directly.
package hdwallet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcutil/hdkeychain"
	"github.com/tyler-smith/go-bip39"
)

const hardenedOffset = 0x80000000

// Default is the package-level BIP-39/32/44 implementation. It holds no
// state, so its zero value is ready to use.
type Default struct{}

// MnemonicToEntropy recovers the BIP-39 entropy that generated phrase.
func (Default) MnemonicToEntropy(phrase string) ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(phrase)
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}
	return entropy, nil
}

// EntropyToMnemonic is the inverse of MnemonicToEntropy.
func (Default) EntropyToMnemonic(entropy []byte) (string, error) {
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("invalid entropy: %w", err)
	}
	return phrase, nil
}

// DerivePrivateKey walks path (e.g. "m/44'/60'/0'/0/0") from the master
// node seeded by phrase (with an empty BIP-39 passphrase, matching the
// ecosystem convention for Ethereum HD wallets) and returns the 32-byte
// secp256k1 private key at the leaf.
func (Default) DerivePrivateKey(phrase, path string) ([]byte, error) {
	indices, err := ParseDerivationPath(path)
	if err != nil {
		return nil, err
	}

	seed := bip39.NewSeed(phrase, "")
	node, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	for _, index := range indices {
		node, err = node.Derive(index)
		if err != nil {
			return nil, fmt.Errorf("failed to derive path %s: %w", path, err)
		}
	}

	privKey, err := node.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to derive private key for path %s: %w", path, err)
	}
	b := privKey.Serialize()
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out, nil
}

// ParseDerivationPath parses a BIP-32 path string such as
// "m/44'/60'/0'/0/0" into its raw (possibly hardened) uint32 indices.
// A leading "m/" is optional; a trailing "'" or "h" on a segment marks it
// hardened. Path is treated as an opaque string by the rest of this
// module - no normalization beyond what BIP-32 itself defines is applied.
func ParseDerivationPath(path string) ([]uint32, error) {
	segments := strings.Split(path, "/")
	if len(segments) > 0 && (segments[0] == "m" || segments[0] == "M") {
		segments = segments[1:]
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("empty derivation path")
	}

	indices := make([]uint32, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			return nil, fmt.Errorf("invalid derivation path segment in %q", path)
		}
		hardened := false
		if strings.HasSuffix(seg, "'") || strings.HasSuffix(seg, "h") || strings.HasSuffix(seg, "H") {
			hardened = true
			seg = seg[:len(seg)-1]
		}
		n, err := strconv.ParseUint(seg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid derivation path segment %q: %w", seg, err)
		}
		index := uint32(n)
		if hardened {
			index += hardenedOffset
		}
		indices = append(indices, index)
	}
	return indices, nil
}
