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
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/spf13/viper"
)

var ffc = config.AddRootKey

var (
	// ScryptN is the scrypt work factor the encrypt command writes.
	ScryptN = ffc("scrypt.n")
	// ScryptR is the default scrypt block size.
	ScryptR = ffc("scrypt.r")
	// ScryptP is the default scrypt parallelism.
	ScryptP = ffc("scrypt.p")
	// Client is the default producer tag written into x-ethers/client.
	Client = ffc("client")
)

func setDefaults() {
	viper.SetDefault(string(ScryptN), 1<<17)
	viper.SetDefault(string(ScryptR), 8)
	viper.SetDefault(string(ScryptP), 1)
	viper.SetDefault(string(Client), "ethkeystore-go")
}

var LogConfig config.Section

func resetConfig() {
	config.RootConfigReset(setDefaults)

	LogConfig = config.RootSection("log")
	log.InitConfig(LogConfig)
}
