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
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/penny-vault/vsummary/data"
	"github.com/rs/zerolog"
)

// previewRows is the number of rows written to the debug log after each stage
const previewRows = 5

// vendorSummarySQL joins purchases (with reference prices), sales and freight
// per vendor and brand. ActualPrice is not part of the purchase grouping key;
// purchase_prices holds one price per brand so MAX returns that price.
const vendorSummarySQL = `WITH freight_summary AS (
	SELECT
		"VendorNumber",
		SUM("Freight") AS "FreightCost"
	FROM vendor_invoice
	GROUP BY "VendorNumber"
),

purchase_summary AS (
	SELECT
		p."VendorNumber",
		p."VendorName",
		p."Brand",
		p."Description",
		p."PurchasePrice",
		MAX(pp."Price") AS "ActualPrice",
		pp."Volume",
		SUM(p."Quantity") AS "TotalPurchaseQuantity",
		SUM(p."Dollars") AS "TotalPurchaseDollars"
	FROM purchases p
	JOIN purchase_prices pp
		ON p."Brand" = pp."Brand"
	WHERE p."PurchasePrice" > 0
	GROUP BY p."VendorNumber", p."VendorName", p."Brand", p."Description", p."PurchasePrice", pp."Volume"
),

sales_summary AS (
	SELECT
		"VendorNo",
		"Brand",
		SUM("SalesQuantity") AS "TotalSalesQuantity",
		SUM("SalesDollars") AS "TotalSalesDollars",
		SUM("SalesPrice") AS "TotalSalesPrice",
		SUM("ExciseTax") AS "TotalExciseTax"
	FROM sales
	GROUP BY "VendorNo", "Brand"
)

SELECT
	ps."VendorNumber",
	ps."VendorName",
	ps."Brand",
	ps."Description",
	ps."PurchasePrice",
	ps."ActualPrice",
	CAST(ps."Volume" AS TEXT) AS "Volume",
	ps."TotalPurchaseQuantity",
	ps."TotalPurchaseDollars",
	ss."TotalSalesQuantity",
	ss."TotalSalesDollars",
	ss."TotalSalesPrice",
	ss."TotalExciseTax",
	fs."FreightCost"
FROM purchase_summary ps
LEFT JOIN sales_summary ss
	ON ps."VendorNumber" = ss."VendorNo"
	AND ps."Brand" = ss."Brand"
LEFT JOIN freight_summary fs
	ON ps."VendorNumber" = fs."VendorNumber"
ORDER BY ps."TotalPurchaseDollars" DESC NULLS LAST`

// BuildVendorSummary runs the vendor summary aggregation and returns its rows
// sorted by total purchase dollars, largest first
func (myInventory *Inventory) BuildVendorSummary(ctx context.Context) ([]*data.RawVendorSummary, error) {
	logger := zerolog.Ctx(ctx)

	var rows []*data.RawVendorSummary
	if err := pgxscan.Select(ctx, myInventory.Pool, &rows, vendorSummarySQL); err != nil {
		logger.Error().Err(err).Msg("vendor summary query failed")
		return nil, fmt.Errorf("%w: vendor summary query: %w", data.ErrDataAccess, err)
	}

	logger.Info().Int("NumRows", len(rows)).Msg("vendor summary created")
	for idx, row := range rows {
		if idx == previewRows {
			break
		}
		logger.Debug().Object("Row", row).Msg("vendor summary")
	}

	return rows, nil
}
