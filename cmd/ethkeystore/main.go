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

// Command ethkeystore encrypts and decrypts Web3 Secret Storage v3
// keystores (with the x-ethers mnemonic extension) from the command line.
// It is a thin exerciser of pkg/keystorev3 - all cryptographic logic lives
// there; this package only wires up CLI flags, configuration and logging.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "ethkeystore",
	Short: "Web3 Secret Storage keystore encoder/decoder",
	Long:  ``,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
	rootCmd.AddCommand(encryptCommand())
	rootCmd.AddCommand(decryptCommand())
}

func rootContext() (context.Context, error) {
	resetConfig()
	err := config.ReadConfig("ethkeystore", cfgFile)

	ctx := context.Background()
	ctx = log.WithLogger(ctx, logrus.WithField("pid", fmt.Sprintf("%d", os.Getpid())))
	ctx = log.WithLogger(ctx, logrus.WithField("prefix", "ethkeystore"))
	config.SetupLogging(ctx)

	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgConfigFailed)
	}
	return ctx, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
