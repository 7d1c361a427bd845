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
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/penny-vault/vsummary/inventory"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var topN int

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display totals and top vendors of the summary table",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("invalid configuration")
		}

		summary, err := summaryDocument(cfg, topN)
		if err != nil {
			os.Exit(1)
		}

		r, _ := glamour.NewTermRenderer(
			// detect background color and pick either the default dark or light theme
			glamour.WithAutoStyle(),
			// wrap output at specific width (default is 80)
			glamour.WithWordWrap(100),
		)

		out, err := r.Render(summary)
		if err != nil {
			log.Fatal().Err(err).Msg("could not render summary document")
		}

		fmt.Print(out)
	},
}

// summaryDocument loads the markdown report of the summary table. Errors are
// logged before returning.
func summaryDocument(cfg *runConfig, topN int) (string, error) {
	ctx, logFile, err := newContext(cfg)
	if err != nil {
		log.Error().Err(err).Str("FileName", cfg.LogFile).Msg("could not open log file")
		return "", err
	}
	defer logFile.Close()

	logger := zerolog.Ctx(ctx)

	myInventory, err := inventory.New(ctx, cfg.DBUrl)
	if err != nil {
		logger.Error().Err(err).Msg("could not connect to inventory database")
		return "", err
	}
	defer myInventory.Close()

	summary, err := myInventory.Summary(ctx, cfg.Table, topN)
	if err != nil {
		logger.Error().Err(err).Str("TableName", cfg.Table).Msg("could not create vendor summary document")
		return "", err
	}

	return summary, nil
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().IntVarP(&topN, "top", "n", 10, "number of vendors to rank by gross profit")
}
