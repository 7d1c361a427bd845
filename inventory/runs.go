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
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/penny-vault/vsummary/data"
	"github.com/rs/zerolog"
)

// Run is an entry in the run ledger; one is written for every successful
// replacement of a summary table
type Run struct {
	ID         uuid.UUID `db:"id"`
	TableName  string    `db:"table_name"`
	NumRows    int64     `db:"num_rows"`
	StartedAt  time.Time `db:"started_at"`
	FinishedAt time.Time `db:"finished_at"`
}

// NewRun starts a ledger entry for the given table
func NewRun(tableName string) *Run {
	return &Run{
		ID:        uuid.New(),
		TableName: data.TableName(tableName),
		StartedAt: time.Now(),
	}
}

func (run *Run) MarshalZerologObject(e *zerolog.Event) {
	e.Str("RunID", run.ID.String())
	e.Str("TableName", run.TableName)
	e.Int64("NumRows", run.NumRows)
	e.Time("StartedAt", run.StartedAt)
	e.Time("FinishedAt", run.FinishedAt)
}

// Duration returns the elapsed time of a finished run
func (run *Run) Duration() time.Duration {
	return run.FinishedAt.Sub(run.StartedAt)
}

func (run *Run) save(ctx context.Context, tx pgx.Tx) error {
	if _, err := tx.Exec(ctx, data.DataTypes[data.SummaryRunsKey].ExpandedSchema(data.SummaryRunsTable)); err != nil {
		return err
	}

	sql := fmt.Sprintf(`INSERT INTO %s (
		"id",
		"table_name",
		"num_rows",
		"started_at",
		"finished_at"
	) VALUES (
		$1, $2, $3, $4, $5
	)`, pgx.Identifier{data.SummaryRunsTable}.Sanitize())

	_, err := tx.Exec(ctx, sql, run.ID, run.TableName, run.NumRows, run.StartedAt, run.FinishedAt)
	return err
}

// LastRun returns the most recent run recorded for the table; nil when the
// table has never been built
func (myInventory *Inventory) LastRun(ctx context.Context, tableName string) (*Run, error) {
	var exists bool
	if err := myInventory.Pool.QueryRow(ctx, "SELECT to_regclass($1) IS NOT NULL", data.SummaryRunsTable).Scan(&exists); err != nil {
		return nil, fmt.Errorf("%w: %w", data.ErrDataAccess, err)
	}

	if !exists {
		return nil, nil
	}

	run := &Run{}
	err := pgxscan.Get(ctx, myInventory.Pool, run, fmt.Sprintf(`SELECT id, table_name, num_rows, started_at, finished_at
FROM %s WHERE table_name=$1 ORDER BY finished_at DESC LIMIT 1`, pgx.Identifier{data.SummaryRunsTable}.Sanitize()),
		data.TableName(tableName))
	if err != nil {
		if pgxscan.NotFound(err) || errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", data.ErrDataAccess, err)
	}

	return run, nil
}
