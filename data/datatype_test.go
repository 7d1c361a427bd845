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
package data_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/vsummary/data"
)

var _ = Describe("DataType", func() {
	DescribeTable("TableName",
		func(input, expected string) {
			Expect(data.TableName(input)).To(Equal(expected))
		},
		Entry("already normalized", "vendor_sales_summary", "vendor_sales_summary"),
		Entry("spaces and capitals", "Vendor Sales Summary", "vendor_sales_summary"),
		Entry("punctuation", "vendor; DROP TABLE sales", "vendor_drop_table_sales"),
		Entry("empty", "", data.DefaultSummaryTable),
		Entry("long names are truncated", strings.Repeat("a", 70), strings.Repeat("a", data.MaxTableNameLength)),
		Entry("truncation drops a trailing separator", strings.Repeat("a", 39)+" bbb", strings.Repeat("a", 39)),
	)

	It("keeps index names of the longest table name distinct and within 63 bytes", func() {
		tbl := data.TableName(strings.Repeat("vendor sales summary ", 10))
		Expect(len(tbl)).To(BeNumerically("<=", data.MaxTableNameLength))

		brandIdx := tbl + "_vendor_brand_idx"
		dollarsIdx := tbl + "_purchase_dollars_idx"
		Expect(len(brandIdx)).To(BeNumerically("<=", 63))
		Expect(len(dollarsIdx)).To(BeNumerically("<=", 63))

		schema := data.DataTypes[data.VendorSalesSummaryKey].ExpandedSchema(tbl)
		Expect(schema).To(ContainSubstring(`"` + brandIdx + `"`))
		Expect(schema).To(ContainSubstring(`"` + dollarsIdx + `"`))
	})

	It("expands the summary schema with the table name", func() {
		schema := data.DataTypes[data.VendorSalesSummaryKey].ExpandedSchema("vss_test")
		Expect(schema).To(ContainSubstring(`CREATE TABLE "vss_test"`))
		Expect(schema).To(ContainSubstring(`"vss_test_vendor_brand_idx"`))
		for _, col := range data.VendorSalesSummaryColumns {
			Expect(schema).To(ContainSubstring(`"` + col + `"`))
		}
	})
})
