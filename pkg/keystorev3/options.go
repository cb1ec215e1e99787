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

// Option configures a Decrypt or Encrypt call: the progress reporter and
// the two pluggable collaborators. Kept out of EncryptOptions (which
// describes the keystore document itself) so the same Option set applies
// to both operations, and so a caller can never confuse a progress
// callback with the options value - the distinct source-language bug this
// package declines to reproduce (see the package's design notes).
type Option func(*settings)

type settings struct {
	progress func(float32)
	deriver  AddressDeriver
	hd       HDWallet
}

func resolveSettings(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	if s.deriver == nil {
		s.deriver = defaultDeriver
	}
	if s.hd == nil {
		s.hd = defaultHDWallet
	}
	return s
}

// WithProgress registers a callback invoked with a monotonically
// non-decreasing value in [0.0, 1.0] while the KDF runs; the final call is
// always 1.0.
func WithProgress(f func(float32)) Option {
	return func(s *settings) { s.progress = f }
}

// WithAddressDeriver substitutes the AddressDeriver collaborator.
func WithAddressDeriver(d AddressDeriver) Option {
	return func(s *settings) { s.deriver = d }
}

// WithHDWallet substitutes the HDWallet collaborator.
func WithHDWallet(h HDWallet) Option {
	return func(s *settings) { s.hd = h }
}

// ScryptParams tunes the scrypt work factor for Encrypt.
type ScryptParams struct {
	N int
	R int
	P int
}

const (
	defaultScryptN = 1 << 17
	defaultScryptR = 8
	defaultScryptP = 1

	// defaultClientTag is this package's own producer tag. The ecosystem
	// convention (ethers.js) defaults to "ethers.js"; implementers may
	// substitute their own identifier, which this package does.
	defaultClientTag = "ethkeystore-go"
)

// EncryptOptions controls Encrypt's output document. All fields are
// optional; zero values fall back to the documented defaults.
type EncryptOptions struct {
	// IV overrides the 16-byte private-key encryption IV.
	IV []byte
	// Salt overrides the 32-byte scrypt salt.
	Salt []byte
	// UUID overrides the 16-byte seed fed to UUIDv4 generation for the
	// document's id field.
	UUID []byte
	// Client is the producer tag written to x-ethers/client (only when the
	// x-ethers section is emitted). Defaults to defaultClientTag.
	Client string
	// Scrypt tunes the KDF work factor. Zero fields fall back to
	// defaultScryptN/R/P.
	Scrypt ScryptParams
	// Entropy is reserved: declared for parity with the ecosystem's
	// EncryptOptions shape, but never consumed by either Decrypt or
	// Encrypt. Accepted and ignored.
	Entropy []byte
}
