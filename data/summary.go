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
	"github.com/rs/zerolog"
)

// RawVendorSummary is one row of the vendor summary query before cleaning.
// Every column may be NULL: the sales and freight columns are NULL when the
// left joins find no match.
type RawVendorSummary struct {
	VendorNumber          *int64   `db:"VendorNumber"`
	VendorName            *string  `db:"VendorName"`
	Brand                 *int64   `db:"Brand"`
	Description           *string  `db:"Description"`
	PurchasePrice         *float64 `db:"PurchasePrice"`
	ActualPrice           *float64 `db:"ActualPrice"`
	Volume                *string  `db:"Volume"`
	TotalPurchaseQuantity *float64 `db:"TotalPurchaseQuantity"`
	TotalPurchaseDollars  *float64 `db:"TotalPurchaseDollars"`
	TotalSalesQuantity    *float64 `db:"TotalSalesQuantity"`
	TotalSalesDollars     *float64 `db:"TotalSalesDollars"`
	TotalSalesPrice       *float64 `db:"TotalSalesPrice"`
	TotalExciseTax        *float64 `db:"TotalExciseTax"`
	FreightCost           *float64 `db:"FreightCost"`
}

// VendorSalesSummary is a cleaned vendor/brand row with derived metrics. It
// is the record persisted to the summary table and written by exports.
type VendorSalesSummary struct {
	VendorNumber          int64   `db:"VendorNumber" csv:"VendorNumber" json:"vendor_number" parquet:"name=vendor_number, type=INT64"`
	VendorName            string  `db:"VendorName" csv:"VendorName" json:"vendor_name" parquet:"name=vendor_name, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Brand                 int64   `db:"Brand" csv:"Brand" json:"brand" parquet:"name=brand, type=INT64"`
	Description           string  `db:"Description" csv:"Description" json:"description" parquet:"name=description, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	PurchasePrice         float64 `db:"PurchasePrice" csv:"PurchasePrice" json:"purchase_price" parquet:"name=purchase_price, type=DOUBLE"`
	ActualPrice           float64 `db:"ActualPrice" csv:"ActualPrice" json:"actual_price" parquet:"name=actual_price, type=DOUBLE"`
	Volume                float64 `db:"Volume" csv:"Volume" json:"volume" parquet:"name=volume, type=DOUBLE"`
	TotalPurchaseQuantity float64 `db:"TotalPurchaseQuantity" csv:"TotalPurchaseQuantity" json:"total_purchase_quantity" parquet:"name=total_purchase_quantity, type=DOUBLE"`
	TotalPurchaseDollars  float64 `db:"TotalPurchaseDollars" csv:"TotalPurchaseDollars" json:"total_purchase_dollars" parquet:"name=total_purchase_dollars, type=DOUBLE"`
	TotalSalesQuantity    float64 `db:"TotalSalesQuantity" csv:"TotalSalesQuantity" json:"total_sales_quantity" parquet:"name=total_sales_quantity, type=DOUBLE"`
	TotalSalesDollars     float64 `db:"TotalSalesDollars" csv:"TotalSalesDollars" json:"total_sales_dollars" parquet:"name=total_sales_dollars, type=DOUBLE"`
	TotalSalesPrice       float64 `db:"TotalSalesPrice" csv:"TotalSalesPrice" json:"total_sales_price" parquet:"name=total_sales_price, type=DOUBLE"`
	TotalExciseTax        float64 `db:"TotalExciseTax" csv:"TotalExciseTax" json:"total_excise_tax" parquet:"name=total_excise_tax, type=DOUBLE"`
	FreightCost           float64 `db:"FreightCost" csv:"FreightCost" json:"freight_cost" parquet:"name=freight_cost, type=DOUBLE"`
	GrossProfit           float64 `db:"GrossProfit" csv:"GrossProfit" json:"gross_profit" parquet:"name=gross_profit, type=DOUBLE"`
	ProfitMargin          float64 `db:"ProfitMargin" csv:"ProfitMargin" json:"profit_margin" parquet:"name=profit_margin, type=DOUBLE"`
	StockTurnover         float64 `db:"StockTurnover" csv:"StockTurnover" json:"stock_turnover" parquet:"name=stock_turnover, type=DOUBLE"`
	SalesToPurchaseRatio  float64 `db:"SalesToPurchaseRatio" csv:"SalesToPurchaseRatio" json:"sales_to_purchase_ratio" parquet:"name=sales_to_purchase_ratio, type=DOUBLE"`
}

// VendorSalesSummaryColumns lists the summary table columns in the order
// returned by Values
var VendorSalesSummaryColumns = []string{
	"VendorNumber",
	"VendorName",
	"Brand",
	"Description",
	"PurchasePrice",
	"ActualPrice",
	"Volume",
	"TotalPurchaseQuantity",
	"TotalPurchaseDollars",
	"TotalSalesQuantity",
	"TotalSalesDollars",
	"TotalSalesPrice",
	"TotalExciseTax",
	"FreightCost",
	"GrossProfit",
	"ProfitMargin",
	"StockTurnover",
	"SalesToPurchaseRatio",
}

// Values returns the row as a slice ordered like VendorSalesSummaryColumns
func (summary *VendorSalesSummary) Values() []any {
	return []any{
		summary.VendorNumber,
		summary.VendorName,
		summary.Brand,
		summary.Description,
		summary.PurchasePrice,
		summary.ActualPrice,
		summary.Volume,
		summary.TotalPurchaseQuantity,
		summary.TotalPurchaseDollars,
		summary.TotalSalesQuantity,
		summary.TotalSalesDollars,
		summary.TotalSalesPrice,
		summary.TotalExciseTax,
		summary.FreightCost,
		summary.GrossProfit,
		summary.ProfitMargin,
		summary.StockTurnover,
		summary.SalesToPurchaseRatio,
	}
}

func (summary *VendorSalesSummary) MarshalZerologObject(e *zerolog.Event) {
	e.Int64("VendorNumber", summary.VendorNumber)
	e.Str("VendorName", summary.VendorName)
	e.Int64("Brand", summary.Brand)
	e.Float64("TotalPurchaseDollars", summary.TotalPurchaseDollars)
	e.Float64("TotalSalesDollars", summary.TotalSalesDollars)
	e.Float64("GrossProfit", summary.GrossProfit)
	e.Float64("ProfitMargin", summary.ProfitMargin)
}

func (raw *RawVendorSummary) MarshalZerologObject(e *zerolog.Event) {
	if raw.VendorNumber != nil {
		e.Int64("VendorNumber", *raw.VendorNumber)
	}
	if raw.VendorName != nil {
		e.Str("VendorName", *raw.VendorName)
	}
	if raw.Brand != nil {
		e.Int64("Brand", *raw.Brand)
	}
	if raw.Volume != nil {
		e.Str("Volume", *raw.Volume)
	}
	if raw.TotalPurchaseDollars != nil {
		e.Float64("TotalPurchaseDollars", *raw.TotalPurchaseDollars)
	}
	if raw.TotalSalesDollars != nil {
		e.Float64("TotalSalesDollars", *raw.TotalSalesDollars)
	}
}
