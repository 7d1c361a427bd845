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
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/jackc/pgx/v5"
	"github.com/pelletier/go-toml/v2"
	"github.com/penny-vault/vsummary/data"
	"github.com/penny-vault/vsummary/db"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type dbSettings struct {
	URL string `toml:"url"`
}

type summarySettings struct {
	Table string `toml:"table"`
}

type logSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type fileSettings struct {
	DB      dbSettings      `toml:"db"`
	Summary summarySettings `toml:"summary"`
	Log     logSettings     `toml:"log"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Gather database configuration and create the source tables",
	Run: func(cmd *cobra.Command, args []string) {
		settings := fileSettings{
			Summary: summarySettings{Table: data.DefaultSummaryTable},
			Log:     logSettings{File: "logs/vsummary.log", Level: "info"},
		}

		createTables := true

		form := huh.NewForm(
			// Get details about the database
			huh.NewGroup(
				huh.NewInput().
					Title("Provide the DSN for connecting to your PostgreSQL database (postgres://[user[:password]@][netloc][:port][/dbname][?param1=value1&...])").
					Value(&settings.DB.URL).
					Validate(func(dsn string) error {
						_, err := pgx.ParseConfig(dsn)
						return err
					}),

				huh.NewConfirm().
					Title("Create missing source tables (purchases, purchase_prices, sales, vendor_invoice)?").
					Value(&createTables),
			),

			// Where results and logs go
			huh.NewGroup(
				huh.NewInput().
					Title("Name of the summary table:").
					Value(&settings.Summary.Table),

				huh.NewInput().
					Title("Append log messages to file:").
					Value(&settings.Log.File),
			),
		)

		err := form.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("error gathering database settings")
		}

		settings.Summary.Table = data.TableName(settings.Summary.Table)

		if createTables {
			log.Info().Msg("creating database tables")
			if err := db.Migrate(settings.DB.URL); err != nil {
				log.Fatal().Err(err).Msg("error running database migration")
			}
			log.Info().Msg("database tables created")
		}

		// save database settings to config file
		configFN := cfgFile
		if configFN == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				log.Fatal().Err(err).Msg("could not determine user home directory")
			}
			configFN = filepath.Join(home, ".vsummary.toml")
		}

		log.Info().Str("ConfigFile", configFN).Msg("Saving database connection info to config file")
		configData, err := toml.Marshal(settings)
		if err != nil {
			log.Fatal().Err(err).Msg("could not marshal configuration data")
		}

		err = os.WriteFile(configFN, configData, 0600)
		if err != nil {
			log.Fatal().Err(err).Str("FileName", configFN).Msg("could not save configuration to file")
		}

		log.Info().Msg("vsummary has been initialized")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
