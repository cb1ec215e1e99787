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
	"fmt"
	"os"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/kaleido-io/ethkeystore/internal/signermsgs"
	"github.com/kaleido-io/ethkeystore/pkg/keystorev3"
	"github.com/spf13/cobra"
)

func decryptCommand() *cobra.Command {
	var keystoreFile string
	var password string

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a Version 3 keystore file and print the recovered account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := rootContext()
			if err != nil {
				return err
			}
			if password == "" {
				return i18n.NewError(ctx, signermsgs.MsgMissingPassword)
			}

			document, err := os.ReadFile(keystoreFile)
			if err != nil {
				return i18n.NewError(ctx, signermsgs.MsgInvalidKeystoreFile, keystoreFile)
			}

			account, err := keystorev3.Decrypt(document, password)
			if err != nil {
				return i18n.NewError(ctx, signermsgs.MsgDecryptFailed, err)
			}

			log.L(ctx).Infof("Decrypted keystore for address %s", account.Address.String())
			fmt.Printf("address:     %s\n", account.Address.String())
			fmt.Printf("privateKey:  %s\n", account.PrivateKey.String())
			if account.Mnemonic != "" {
				fmt.Printf("mnemonic:    %s\n", account.Mnemonic)
				fmt.Printf("path:        %s\n", account.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&keystoreFile, "file", "", "keystore JSON file to decrypt")
	cmd.Flags().StringVar(&password, "password", "", "password to decrypt with")
	return cmd
}
