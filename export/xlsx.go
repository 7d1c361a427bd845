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
	"github.com/penny-vault/vsummary/data"
	"github.com/xuri/excelize/v2"
)

const SheetName = "VendorSalesSummary"

func writeXLSX(fn string, rows []*data.VendorSalesSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	header := make([]any, len(data.VendorSalesSummaryColumns))
	for idx, col := range data.VendorSalesSummaryColumns {
		header[idx] = col
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	for idx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return err
		}

		values := row.Values()
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return err
		}
	}

	return f.SaveAs(fn)
}
