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
package export

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/penny-vault/vsummary/data"
	"github.com/rs/zerolog"
)

type Format string

const (
	CSV     Format = "csv"
	JSON    Format = "json"
	Parquet Format = "parquet"
	XLSX    Format = "xlsx"
)

var Formats = []Format{CSV, JSON, Parquet, XLSX}

// ParseFormat returns the format named by name. If name is empty the format
// is inferred from the extension of fn.
func ParseFormat(name, fn string) (Format, error) {
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(fn), ".")
	}

	switch strings.ToLower(name) {
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "parquet", "pq":
		return Parquet, nil
	case "xlsx", "excel":
		return XLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", data.ErrUnknownFormat, name)
	}
}

// Write saves rows to fn in the requested format
func Write(ctx context.Context, fn string, format Format, rows []*data.VendorSalesSummary) error {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("FileName", fn).Str("Format", string(format)).Int("NumRows", len(rows)).Msg("exporting vendor summary")

	var err error
	switch format {
	case CSV:
		err = writeCSV(fn, rows)
	case JSON:
		err = writeJSON(fn, rows)
	case Parquet:
		err = writeParquet(ctx, fn, rows)
	case XLSX:
		err = writeXLSX(fn, rows)
	default:
		return fmt.Errorf("%w: %q", data.ErrUnknownFormat, format)
	}

	if err != nil {
		logger.Error().Err(err).Str("FileName", fn).Msg("export failed")
		return err
	}

	return nil
}
