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
package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/penny-vault/vsummary/data"
	"github.com/shopspring/decimal"
	"github.com/xeonx/timeago"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type vendorTotals struct {
	VendorNumber    int64
	VendorName      string
	NumBrands       int
	PurchaseDollars decimal.Decimal
	SalesDollars    decimal.Decimal
	GrossProfit     decimal.Decimal
}

// Summary returns a description of the summary table in markdown
func (myInventory *Inventory) Summary(ctx context.Context, tableName string, topN int) (string, error) {
	rows, err := myInventory.LoadSummary(ctx, tableName)
	if err != nil {
		return "", err
	}

	lastRun, err := myInventory.LastRun(ctx, tableName)
	if err != nil {
		return "", err
	}

	return RenderSummary(data.TableName(tableName), rows, lastRun, topN)
}

// RenderSummary builds the markdown summary document for the given rows
func RenderSummary(tableName string, rows []*data.VendorSalesSummary, lastRun *Run, topN int) (string, error) {
	p := message.NewPrinter(language.English)
	builder := strings.Builder{}

	if _, err := builder.WriteString(fmt.Sprintf("# %s\n", tableName)); err != nil {
		return "", err
	}

	if _, err := builder.WriteString("## Details\n\n"); err != nil {
		return "", err
	}

	var (
		purchaseDollars = decimal.Zero
		salesDollars    = decimal.Zero
		grossProfit     = decimal.Zero
		freightCost     = decimal.Zero
		exciseTax       = decimal.Zero
	)

	vendors := make(map[int64]*vendorTotals)
	for _, row := range rows {
		purchaseDollars = purchaseDollars.Add(decimal.NewFromFloat(row.TotalPurchaseDollars))
		salesDollars = salesDollars.Add(decimal.NewFromFloat(row.TotalSalesDollars))
		grossProfit = grossProfit.Add(decimal.NewFromFloat(row.GrossProfit))
		exciseTax = exciseTax.Add(decimal.NewFromFloat(row.TotalExciseTax))

		totals, ok := vendors[row.VendorNumber]
		if !ok {
			totals = &vendorTotals{
				VendorNumber: row.VendorNumber,
				VendorName:   row.VendorName,
			}
			vendors[row.VendorNumber] = totals

			// freight is per vendor and repeated on each of its rows
			freightCost = freightCost.Add(decimal.NewFromFloat(row.FreightCost))
		}

		totals.NumBrands++
		totals.PurchaseDollars = totals.PurchaseDollars.Add(decimal.NewFromFloat(row.TotalPurchaseDollars))
		totals.SalesDollars = totals.SalesDollars.Add(decimal.NewFromFloat(row.TotalSalesDollars))
		totals.GrossProfit = totals.GrossProfit.Add(decimal.NewFromFloat(row.GrossProfit))
	}

	details := []string{
		p.Sprintf("  * Rows: %d\n", len(rows)),
		p.Sprintf("  * Vendors: %d\n", len(vendors)),
		p.Sprintf("  * Purchases: %s\n", money(p, purchaseDollars)),
		p.Sprintf("  * Sales: %s\n", money(p, salesDollars)),
		p.Sprintf("  * Gross Profit: %s\n", money(p, grossProfit)),
		p.Sprintf("  * Profit Margin: %s%%\n", margin(grossProfit, salesDollars).StringFixed(2)),
		p.Sprintf("  * Freight: %s\n", money(p, freightCost)),
		p.Sprintf("  * Excise Tax: %s\n\n", money(p, exciseTax)),
	}

	for _, line := range details {
		if _, err := builder.WriteString(line); err != nil {
			return "", err
		}
	}

	// Last refreshed time
	if lastRun == nil {
		if _, err := builder.WriteString("Last Refreshed: Never\n\n"); err != nil {
			return "", err
		}
	} else {
		age := timeago.English.Format(lastRun.FinishedAt)
		if _, err := builder.WriteString(fmt.Sprintf("Last Refreshed: %s (%s) [%s]\n\n", age,
			lastRun.FinishedAt.Local().Format("01/02/2006"), lastRun.ID.String()[:8])); err != nil {
			return "", err
		}
	}

	if topN <= 0 || len(vendors) == 0 {
		return builder.String(), nil
	}

	// Top vendors
	ranked := make([]*vendorTotals, 0, len(vendors))
	for _, totals := range vendors {
		ranked = append(ranked, totals)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if cmp := ranked[i].GrossProfit.Cmp(ranked[j].GrossProfit); cmp != 0 {
			return cmp > 0
		}
		return ranked[i].VendorNumber < ranked[j].VendorNumber
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	if _, err := builder.WriteString(p.Sprintf("## Top %d Vendors by Gross Profit\n\n", len(ranked))); err != nil {
		return "", err
	}

	if _, err := builder.WriteString("| Vendor | Name | Brands | Purchases | Sales | Gross Profit | Margin |\n|---|---|---|---|---|---|---|\n"); err != nil {
		return "", err
	}

	for _, totals := range ranked {
		if _, err := builder.WriteString(p.Sprintf("| %d | %s | %d | %s | %s | %s | %s%% |\n",
			totals.VendorNumber, totals.VendorName, totals.NumBrands,
			money(p, totals.PurchaseDollars), money(p, totals.SalesDollars), money(p, totals.GrossProfit),
			margin(totals.GrossProfit, totals.SalesDollars).StringFixed(2))); err != nil {
			return "", err
		}
	}

	return builder.String(), nil
}

func money(p *message.Printer, amount decimal.Decimal) string {
	return p.Sprintf("$%.2f", amount.Round(2).InexactFloat64())
}

func margin(grossProfit, sales decimal.Decimal) decimal.Decimal {
	if sales.IsZero() {
		return decimal.Zero
	}

	return grossProfit.Div(sales).Mul(decimal.NewFromInt(100))
}
