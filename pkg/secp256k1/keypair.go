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

// Package secp256k1 wraps btcec/v2 key generation and Ethereum address
// derivation (Keccak-256 of the uncompressed public key, low 20 bytes).
package secp256k1

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/kaleido-io/ethkeystore/pkg/ethtypes"
	"golang.org/x/crypto/sha3"
)

const PrivateKeySize = 32

type KeyPair struct {
	PrivateKey *btcec.PrivateKey
	PublicKey  *btcec.PublicKey
	Address    ethtypes.Address0xHex
}

func (k *KeyPair) PrivateKeyBytes() []byte {
	b := k.PrivateKey.Serialize()
	out := make([]byte, PrivateKeySize)
	copy(out[PrivateKeySize-len(b):], b)
	return out
}

func GenerateKeyPair() (*KeyPair, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return wrapKey(key, key.PubKey()), nil
}

func NewKeyPairFromBytes(b []byte) (*KeyPair, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("invalid private key length: %d != %d", len(b), PrivateKeySize)
	}
	key, pubKey := btcec.PrivKeyFromBytes(b)
	return wrapKey(key, pubKey), nil
}

func wrapKey(key *btcec.PrivateKey, pubKey *btcec.PublicKey) *KeyPair {
	k := &KeyPair{
		PrivateKey: key,
		PublicKey:  pubKey,
	}

	// Remove the "04" prefix byte (uncompressed-key marker) before hashing.
	publicKeyBytes := k.PublicKey.SerializeUncompressed()[1:]
	hash := sha3.NewLegacyKeccak256()
	hash.Write(publicKeyBytes)
	// Ethereum addresses are the low 20 bytes of the Keccak-256 hash.
	copy(k.Address[:], hash.Sum(nil)[12:32])

	return k
}
