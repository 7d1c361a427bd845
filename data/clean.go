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
package data

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Clean converts the rows produced by the vendor summary query into summary
// records. The input rows are left unchanged.
func Clean(rows []*RawVendorSummary) ([]*VendorSalesSummary, error) {
	cleaned := make([]*VendorSalesSummary, 0, len(rows))
	for _, raw := range rows {
		summary, err := raw.Clean()
		if err != nil {
			return nil, err
		}

		cleaned = append(cleaned, summary)
	}

	return cleaned, nil
}

// Clean coerces the volume to a number, replaces NULLs with zero, trims the
// vendor name and description and computes the derived metrics.
func (raw *RawVendorSummary) Clean() (*VendorSalesSummary, error) {
	volume, err := raw.volume()
	if err != nil {
		return nil, err
	}

	summary := &VendorSalesSummary{
		VendorNumber:          valueOr(raw.VendorNumber, 0),
		VendorName:            strings.TrimSpace(valueOr(raw.VendorName, "0")),
		Brand:                 valueOr(raw.Brand, 0),
		Description:           strings.TrimSpace(valueOr(raw.Description, "0")),
		PurchasePrice:         valueOr(raw.PurchasePrice, 0),
		ActualPrice:           valueOr(raw.ActualPrice, 0),
		Volume:                volume,
		TotalPurchaseQuantity: valueOr(raw.TotalPurchaseQuantity, 0),
		TotalPurchaseDollars:  valueOr(raw.TotalPurchaseDollars, 0),
		TotalSalesQuantity:    valueOr(raw.TotalSalesQuantity, 0),
		TotalSalesDollars:     valueOr(raw.TotalSalesDollars, 0),
		TotalSalesPrice:       valueOr(raw.TotalSalesPrice, 0),
		TotalExciseTax:        valueOr(raw.TotalExciseTax, 0),
		FreightCost:           valueOr(raw.FreightCost, 0),
	}

	summary.GrossProfit = summary.TotalSalesDollars - summary.TotalPurchaseDollars
	summary.ProfitMargin = profitMargin(summary.GrossProfit, raw.TotalSalesDollars)
	summary.StockTurnover = ratio(raw.TotalSalesQuantity, raw.TotalPurchaseQuantity)
	summary.SalesToPurchaseRatio = ratio(raw.TotalSalesDollars, raw.TotalPurchaseDollars)

	return summary, nil
}

func (raw *RawVendorSummary) volume() (float64, error) {
	if raw.Volume == nil {
		return 0, nil
	}

	volume, err := cast.ToFloat64E(strings.TrimSpace(*raw.Volume))
	if err != nil {
		return 0, fmt.Errorf("%w: volume %q for vendor %d brand %d: %w", ErrTypeConversion,
			*raw.Volume, valueOr(raw.VendorNumber, 0), valueOr(raw.Brand, 0), err)
	}

	// "NaN" parses as a float but is a missing value
	if math.IsNaN(volume) {
		return 0, nil
	}

	return volume, nil
}

// profitMargin is gross profit as a percentage of sales; 0 when there are no sales
func profitMargin(grossProfit float64, salesDollars *float64) float64 {
	if salesDollars == nil || *salesDollars == 0 {
		return 0
	}

	return grossProfit / *salesDollars * 100
}

// ratio divides numerator by denominator; a missing or zero denominator yields 0
func ratio(numerator, denominator *float64) float64 {
	if denominator == nil || *denominator == 0 {
		return 0
	}

	return valueOr(numerator, 0) / *denominator
}

func valueOr[T any](val *T, fallback T) T {
	if val == nil {
		return fallback
	}

	return *val
}
