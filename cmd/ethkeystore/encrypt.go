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

package main

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/kaleido-io/ethkeystore/internal/signermsgs"
	"github.com/kaleido-io/ethkeystore/pkg/keystorev3"
	"github.com/spf13/cobra"
)

func encryptCommand() *cobra.Command {
	var privateKeyHex string
	var mnemonic string
	var path string
	var password string
	var outputFile string

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a private key (optionally with its mnemonic) into a Version 3 keystore",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := rootContext()
			if err != nil {
				return err
			}
			if password == "" {
				return i18n.NewError(ctx, signermsgs.MsgMissingPassword)
			}

			pkBytes, err := hex.DecodeString(strings.TrimPrefix(privateKeyHex, "0x"))
			if err != nil || len(pkBytes) != 32 {
				return i18n.NewError(ctx, signermsgs.MsgInvalidPrivateKeyHex, privateKeyHex)
			}
			var privateKey keystorev3.PrivateKey
			copy(privateKey[:], pkBytes)

			derivedAddress, err := deriveAddress(privateKey)
			if err != nil {
				return err
			}

			account := keystorev3.Account{
				Address:    derivedAddress,
				PrivateKey: privateKey,
				Mnemonic:   mnemonic,
				Path:       path,
			}

			options := keystorev3.EncryptOptions{
				Client: config.GetString(Client),
				Scrypt: keystorev3.ScryptParams{
					N: config.GetInt(ScryptN),
					R: config.GetInt(ScryptR),
					P: config.GetInt(ScryptP),
				},
			}

			doc, err := keystorev3.Encrypt(account, password, options)
			if err != nil {
				return i18n.NewError(ctx, signermsgs.MsgEncryptFailed, err)
			}

			if outputFile == "" {
				log.L(ctx).Infof("Encrypted keystore for address %s", account.Address.String())
				os.Stdout.Write(doc)
				os.Stdout.WriteString("\n")
				return nil
			}
			if err := os.WriteFile(outputFile, doc, 0600); err != nil {
				return i18n.NewError(ctx, signermsgs.MsgOutputWriteFailed, outputFile)
			}
			log.L(ctx).Infof("Wrote encrypted keystore for address %s to %s", account.Address.String(), outputFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&privateKeyHex, "private-key", "", "private key hex (32 bytes, with or without 0x)")
	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "BIP-39 mnemonic phrase that derives the private key (optional)")
	cmd.Flags().StringVar(&path, "path", "", "BIP-32 derivation path, only valid with --mnemonic (default m/44'/60'/0'/0/0)")
	cmd.Flags().StringVar(&password, "password", "", "password to encrypt under")
	cmd.Flags().StringVar(&outputFile, "out", "", "output file (default: stdout)")
	return cmd
}
