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
package inventory_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/vsummary/data"
	"github.com/penny-vault/vsummary/inventory"
)

var _ = Describe("RenderSummary", func() {
	var rows []*data.VendorSalesSummary

	BeforeEach(func() {
		rows = []*data.VendorSalesSummary{
			{VendorNumber: 1, VendorName: "ACME SPIRITS", Brand: 101, TotalPurchaseDollars: 50, TotalSalesDollars: 45, GrossProfit: -5, FreightCost: 5, TotalExciseTax: 0.5},
			{VendorNumber: 2, VendorName: "NORTHWIND", Brand: 202, TotalPurchaseDollars: 40, TotalSalesDollars: 100, GrossProfit: 60, FreightCost: 2},
			{VendorNumber: 1, VendorName: "ACME SPIRITS", Brand: 102, TotalPurchaseDollars: 10, TotalSalesDollars: 30, GrossProfit: 20, FreightCost: 5},
		}
	})

	It("reports table totals", func() {
		doc, err := inventory.RenderSummary("vendor_sales_summary", rows, nil, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc).To(HavePrefix("# vendor_sales_summary\n"))
		Expect(doc).To(ContainSubstring("Rows: 3"))
		Expect(doc).To(ContainSubstring("Vendors: 2"))
		Expect(doc).To(ContainSubstring("Purchases: $100.00"))
		Expect(doc).To(ContainSubstring("Sales: $175.00"))
		Expect(doc).To(ContainSubstring("Gross Profit: $75.00"))
		Expect(doc).To(ContainSubstring("Profit Margin: 42.86%"))
		Expect(doc).To(ContainSubstring("Freight: $7.00"))
		Expect(doc).To(ContainSubstring("Excise Tax: $0.50"))
		Expect(doc).To(ContainSubstring("Last Refreshed: Never"))
		Expect(doc).NotTo(ContainSubstring("Top"))
	})

	It("ranks vendors by gross profit", func() {
		doc, err := inventory.RenderSummary("vendor_sales_summary", rows, nil, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc).To(ContainSubstring("## Top 2 Vendors by Gross Profit"))
		Expect(doc).To(ContainSubstring("| 2 | NORTHWIND | 1 | $40.00 | $100.00 | $60.00 | 60.00% |"))
		Expect(doc).To(ContainSubstring("| 1 | ACME SPIRITS | 2 | $60.00 | $75.00 | $15.00 | 20.00% |"))
		Expect(strings.Index(doc, "NORTHWIND |")).To(BeNumerically("<", strings.Index(doc, "ACME SPIRITS |")))
	})

	It("limits the vendor table to topN entries", func() {
		doc, err := inventory.RenderSummary("vendor_sales_summary", rows, nil, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc).To(ContainSubstring("## Top 1 Vendors by Gross Profit"))
		Expect(doc).NotTo(ContainSubstring("ACME SPIRITS |"))
	})

	It("shows when the table was last refreshed", func() {
		run := inventory.NewRun("vendor_sales_summary")
		run.FinishedAt = time.Now().Add(-2 * time.Hour)

		doc, err := inventory.RenderSummary("vendor_sales_summary", rows, run, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc).To(ContainSubstring("hours ago"))
		Expect(doc).To(ContainSubstring(run.ID.String()[:8]))
	})

	It("handles an empty table", func() {
		doc, err := inventory.RenderSummary("vendor_sales_summary", nil, nil, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc).To(ContainSubstring("Rows: 0"))
		Expect(doc).To(ContainSubstring("Profit Margin: 0.00%"))
	})
})

var _ = Describe("Run", func() {
	It("normalizes the table name and measures its duration", func() {
		run := inventory.NewRun("Vendor Sales Summary")
		Expect(run.TableName).To(Equal("vendor_sales_summary"))
		run.FinishedAt = run.StartedAt.Add(3 * time.Second)
		Expect(run.Duration()).To(Equal(3 * time.Second))
	})
})
