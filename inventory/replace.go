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
package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/penny-vault/vsummary/data"
	"github.com/rs/zerolog"
)

// ReplaceSummary drops the summary table, recreates it and loads rows into
// it. The run is recorded in the run ledger. All of it happens in a single
// transaction so a failure leaves the previous table in place.
func (myInventory *Inventory) ReplaceSummary(ctx context.Context, run *Run, rows []*data.VendorSalesSummary) error {
	logger := zerolog.Ctx(ctx)

	conn, err := myInventory.Pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", data.ErrPersistence, err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", data.ErrPersistence, err)
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil {
			if !errors.Is(err, pgx.ErrTxClosed) {
				logger.Error().Err(err).Msg("error rollingback tx")
			}
		}
	}()

	tbl := data.TableName(run.TableName)
	run.TableName = tbl

	sql := fmt.Sprintf("DROP TABLE IF EXISTS %s", pgx.Identifier{tbl}.Sanitize())
	logger.Debug().Str("SQL", sql).Msg("dropping summary table")
	if _, err := tx.Exec(ctx, sql); err != nil {
		return fmt.Errorf("%w: drop %s: %w", data.ErrPersistence, tbl, err)
	}

	if _, err := tx.Exec(ctx, data.DataTypes[data.VendorSalesSummaryKey].ExpandedSchema(tbl)); err != nil {
		return fmt.Errorf("%w: create %s: %w", data.ErrPersistence, tbl, err)
	}

	numCopied, err := tx.CopyFrom(ctx, pgx.Identifier{tbl}, data.VendorSalesSummaryColumns,
		pgx.CopyFromSlice(len(rows), func(idx int) ([]any, error) {
			return rows[idx].Values(), nil
		}))
	if err != nil {
		return fmt.Errorf("%w: copy into %s: %w", data.ErrPersistence, tbl, err)
	}

	if numCopied != int64(len(rows)) {
		return fmt.Errorf("%w: copied %d of %d rows into %s", data.ErrPersistence, numCopied, len(rows), tbl)
	}

	run.NumRows = numCopied
	run.FinishedAt = time.Now()
	if err := run.save(ctx, tx); err != nil {
		return fmt.Errorf("%w: record run: %w", data.ErrPersistence, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %w", data.ErrPersistence, err)
	}

	logger.Info().Object("Run", run).Msg("summary table replaced")

	return nil
}

// LoadSummary reads every row of the summary table, largest purchase dollars first
func (myInventory *Inventory) LoadSummary(ctx context.Context, tableName string) ([]*data.VendorSalesSummary, error) {
	var rows []*data.VendorSalesSummary

	sql := fmt.Sprintf(`SELECT * FROM %s ORDER BY "TotalPurchaseDollars" DESC`, pgx.Identifier{data.TableName(tableName)}.Sanitize())
	if err := pgxscan.Select(ctx, myInventory.Pool, &rows, sql); err != nil {
		return nil, fmt.Errorf("%w: %w", data.ErrDataAccess, err)
	}

	return rows, nil
}
