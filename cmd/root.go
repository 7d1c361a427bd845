// Copyright 2024
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/penny-vault/vsummary/data"
	"github.com/penny-vault/vsummary/healthcheck"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "vsummary",
	Short: "vsummary builds the vendor sales summary table from an inventory database",
	Long: `vsummary is a command line utility that joins the purchase, price,
sales and freight tables of an inventory database into one analysis table
with a single row per vendor, brand and purchase price.

Each run aggregates:

	* purchases (quantity and dollars) joined to the brand reference price
	* sales (quantity, dollars, price and excise tax)
	* freight cost per vendor

and derives gross profit, profit margin, stock turnover and the sales to
purchase ratio. The destination table is replaced atomically so readers
always see either the previous or the new summary.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.vsummary.toml)")
	rootCmd.PersistentFlags().String("db-url", "", "database connection string")
	rootCmd.PersistentFlags().String("table", data.DefaultSummaryTable, "name of the summary table")
	rootCmd.PersistentFlags().String("log-file", "logs/vsummary.log", "file log messages are appended to")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")

	for key, flag := range map[string]string{
		"db.url":        "db-url",
		"summary.table": "table",
		"log.file":      "log-file",
		"log.level":     "log-level",
	} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			log.Panic().Err(err).Str("Flag", flag).Msg("BindPFlag failed")
		}
	}

	viper.SetDefault("healthchecks.ping_url", healthcheck.DefaultPingURL)
}

func initConfig() {
	// a missing .env file is not an error
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".vsummary" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("toml")
		viper.SetConfigName(".vsummary")
	}

	viper.SetEnvPrefix("vsummary")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Info().Str("ConfigFN", viper.ConfigFileUsed()).Msg("Using config file")
	}
}
