// Copyright 2025
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
	"time"

	"github.com/penny-vault/vsummary/export"
	"github.com/penny-vault/vsummary/inventory"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the summary table to csv, json, parquet or xlsx",
	Long: `The export sub-command writes the current contents of the summary table to
a file. The format is taken from --format or inferred from the file extension.
If backblaze credentials and a bucket are configured the file is also uploaded
into a directory named after today's date.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fn := args[0]

		cfg, err := loadConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("invalid configuration")
		}

		format, err := export.ParseFormat(exportFormat, fn)
		if err != nil {
			log.Fatal().Err(err).Str("FileName", fn).Msg("cannot determine export format")
		}

		if err := exportSummary(cfg, fn, format); err != nil {
			os.Exit(1)
		}
	},
}

// exportSummary writes the summary table to fn and uploads it when backblaze
// is configured. Errors are logged before returning.
func exportSummary(cfg *runConfig, fn string, format export.Format) error {
	ctx, logFile, err := newContext(cfg)
	if err != nil {
		log.Error().Err(err).Str("FileName", cfg.LogFile).Msg("could not open log file")
		return err
	}
	defer logFile.Close()

	logger := zerolog.Ctx(ctx)

	myInventory, err := inventory.New(ctx, cfg.DBUrl)
	if err != nil {
		logger.Error().Err(err).Msg("could not connect to inventory database")
		return err
	}
	defer myInventory.Close()

	rows, err := myInventory.LoadSummary(ctx, cfg.Table)
	if err != nil {
		logger.Error().Err(err).Str("TableName", cfg.Table).Msg("could not load summary table")
		return err
	}

	// export.Write logs its own failures
	if err := export.Write(ctx, fn, format, rows); err != nil {
		return err
	}

	if cfg.Backblaze.Configured() {
		if err := cfg.Backblaze.Upload(ctx, fn, time.Now().Format("2006-01-02")); err != nil {
			logger.Error().Err(err).Msg("failed uploading export to Backblaze")
			return err
		}
	}

	logger.Info().Str("FileName", fn).Int("NumRows", len(rows)).Msg("export finished")
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "output format (csv, json, parquet, xlsx)")
}
