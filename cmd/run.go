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
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hako/durafmt"
	"github.com/penny-vault/vsummary/data"
	"github.com/penny-vault/vsummary/inventory"
	"github.com/penny-vault/vsummary/pkginfo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Rebuild the vendor sales summary table",
	Long: `The run sub-command aggregates the purchases, purchase_prices, sales and
vendor_invoice tables into the vendor sales summary, derives the profitability
metrics and replaces the summary table in a single transaction. When a
healthchecks.io check id is configured the outcome of the run is reported to it.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("invalid configuration")
		}

		run, err := refreshSummary(cfg)
		if err != nil {
			os.Exit(1)
		}

		printRun(run)
	},
}

// refreshSummary runs one refresh of the summary table and reports the
// outcome to the health check. Errors are logged before returning.
func refreshSummary(cfg *runConfig) (*inventory.Run, error) {
	ctx, logFile, err := newContext(cfg)
	if err != nil {
		log.Error().Err(err).Str("FileName", cfg.LogFile).Msg("could not open log file")
		return nil, err
	}
	defer logFile.Close()

	run := inventory.NewRun(cfg.Table)
	ctx = zerolog.Ctx(ctx).With().Str("RunID", run.ID.String()).Logger().WithContext(ctx)
	logger := zerolog.Ctx(ctx)
	logger.Info().Object("Build", pkginfo.Current()).Str("TableName", run.TableName).Msg("starting vendor summary run")

	if err := summarize(ctx, cfg, run); err != nil {
		_ = cfg.HealthCheck.Ping(ctx, false, err.Error())
		logger.Error().Err(err).Msg("vendor summary failed")
		return run, err
	}

	_ = cfg.HealthCheck.Ping(ctx, true, fmt.Sprintf("%d rows written to %s", run.NumRows, run.TableName))

	return run, nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// summarize builds, cleans and persists the vendor summary
func summarize(ctx context.Context, cfg *runConfig, run *inventory.Run) error {
	logger := zerolog.Ctx(ctx)

	myInventory, err := inventory.New(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer myInventory.Close()

	startTime := time.Now()
	logger.Info().Msg("creating vendor summary")
	raw, err := myInventory.BuildVendorSummary(ctx)
	if err != nil {
		return err
	}
	logger.Info().Str("RunTime", durafmt.Parse(time.Since(startTime)).String()).Int("NumRows", len(raw)).Msg("vendor summary query finished")

	logger.Info().Msg("cleaning data")
	rows, err := data.Clean(raw)
	if err != nil {
		return err
	}

	logger.Info().Str("TableName", run.TableName).Msg("ingesting data")
	ingestStart := time.Now()
	if err := myInventory.ReplaceSummary(ctx, run, rows); err != nil {
		return err
	}
	logger.Info().Str("RunTime", durafmt.Parse(time.Since(ingestStart)).String()).Msg("ingestion finished")

	logger.Info().
		Str("RunTime", durafmt.Parse(run.Duration()).String()).
		Int64("NumRows", run.NumRows).
		Msg("process completed successfully")

	return nil
}

func printRun(run *inventory.Run) {
	var sb strings.Builder
	keyword := func(s string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Render(s)
	}

	fmt.Fprintf(&sb,
		"%s\n\nRun: %s\nTable: %s\nRows: %s\nRun Time: %s",
		lipgloss.NewStyle().Bold(true).Render("VENDOR SUMMARY REFRESHED"),
		keyword(run.ID.String()),
		keyword(run.TableName),
		keyword(fmt.Sprintf("%d", run.NumRows)),
		keyword(durafmt.Parse(run.Duration()).LimitFirstN(2).String()),
	)

	fmt.Println(
		lipgloss.NewStyle().
			Width(60).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2).
			Render(sb.String()),
	)
}
