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
package data

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

type DataType struct {
	Name   string
	Schema string
}

const (
	VendorSalesSummaryKey = "vendor-sales-summary"
	SummaryRunsKey        = "summary-runs"

	DefaultSummaryTable = "vendor_sales_summary"

	// MaxTableNameLength leaves room for index name suffixes within
	// PostgreSQL's 63 byte identifier limit
	MaxTableNameLength = 40
	SummaryRunsTable    = "vendor_summary_runs"
)

var DataTypes = map[string]*DataType{
	VendorSalesSummaryKey: {
		Name: VendorSalesSummaryKey,
		Schema: `CREATE TABLE "%[1]s" (
"VendorNumber"          BIGINT           NOT NULL,
"VendorName"            TEXT             NOT NULL,
"Brand"                 BIGINT           NOT NULL,
"Description"           TEXT             NOT NULL,
"PurchasePrice"         DOUBLE PRECISION NOT NULL DEFAULT 0.0,
"ActualPrice"           DOUBLE PRECISION NOT NULL DEFAULT 0.0,
"Volume"                DOUBLE PRECISION NOT NULL DEFAULT 0.0,
"TotalPurchaseQuantity" DOUBLE PRECISION NOT NULL DEFAULT 0.0,
"TotalPurchaseDollars"  DOUBLE PRECISION NOT NULL DEFAULT 0.0,
"TotalSalesQuantity"    DOUBLE PRECISION NOT NULL DEFAULT 0.0,
"TotalSalesDollars"     DOUBLE PRECISION NOT NULL DEFAULT 0.0,
"TotalSalesPrice"       DOUBLE PRECISION NOT NULL DEFAULT 0.0,
"TotalExciseTax"        DOUBLE PRECISION NOT NULL DEFAULT 0.0,
"FreightCost"           DOUBLE PRECISION NOT NULL DEFAULT 0.0,
"GrossProfit"           DOUBLE PRECISION NOT NULL DEFAULT 0.0,
"ProfitMargin"          DOUBLE PRECISION NOT NULL DEFAULT 0.0,
"StockTurnover"         DOUBLE PRECISION NOT NULL DEFAULT 0.0,
"SalesToPurchaseRatio"  DOUBLE PRECISION NOT NULL DEFAULT 0.0
);

CREATE INDEX "%[1]s_vendor_brand_idx" ON "%[1]s"("VendorNumber", "Brand");
CREATE INDEX "%[1]s_purchase_dollars_idx" ON "%[1]s"("TotalPurchaseDollars" DESC);`,
	},
	SummaryRunsKey: {
		Name: SummaryRunsKey,
		Schema: `CREATE TABLE IF NOT EXISTS "%[1]s" (
id          UUID        PRIMARY KEY,
table_name  TEXT        NOT NULL,
num_rows    BIGINT      NOT NULL DEFAULT 0,
started_at  TIMESTAMPTZ NOT NULL,
finished_at TIMESTAMPTZ NOT NULL
);`,
	},
}

// ExpandedSchema returns the DDL of the data type for the given table name
func (dt *DataType) ExpandedSchema(tableName string) string {
	return fmt.Sprintf(dt.Schema, tableName)
}

// TableName normalizes a user supplied table name into a lower case
// identifier made of letters, digits and underscores
func TableName(name string) string {
	tbl := slug.Make(name)
	tbl = strings.ReplaceAll(tbl, "-", "_")
	if len(tbl) > MaxTableNameLength {
		tbl = strings.TrimRight(tbl[:MaxTableNameLength], "_")
	}
	if tbl == "" {
		return DefaultSummaryTable
	}

	return tbl
}
