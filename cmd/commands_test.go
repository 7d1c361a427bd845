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
package cmd

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/vsummary/data"
	"github.com/penny-vault/vsummary/export"
	"github.com/penny-vault/vsummary/healthcheck"
)

// nothing listens on port 1 so connecting fails straight away
const unreachableDB = "postgres://vsummary@127.0.0.1:1/inventory?connect_timeout=2"

var _ = Describe("Commands", func() {
	var (
		cfg    *runConfig
		logFN  string
		server *httptest.Server
		pings  []string
	)

	BeforeEach(func() {
		pings = nil
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pings = append(pings, r.URL.Path)
		}))

		logFN = filepath.Join(GinkgoT().TempDir(), "logs", "vsummary.log")
		cfg = &runConfig{
			DBUrl:       unreachableDB,
			Table:       data.DefaultSummaryTable,
			LogFile:     logFN,
			LogLevel:    "info",
			HealthCheck: healthcheck.Check{BaseURL: server.URL, ID: "chk"},
		}
	})

	AfterEach(func() {
		server.Close()
	})

	logContents := func() string {
		contents, err := os.ReadFile(logFN)
		Expect(err).NotTo(HaveOccurred())
		return string(contents)
	}

	It("logs a failed refresh to the log file and pings the fail endpoint", func() {
		run, err := refreshSummary(cfg)
		Expect(errors.Is(err, data.ErrDataAccess)).To(BeTrue())
		Expect(run).NotTo(BeNil())

		contents := logContents()
		Expect(contents).To(ContainSubstring(`"message":"starting vendor summary run"`))
		Expect(contents).To(ContainSubstring(`"message":"vendor summary failed"`))
		Expect(contents).To(ContainSubstring(run.ID.String()))
		Expect(pings).To(Equal([]string{"/chk/fail"}))
	})

	It("logs info failures to the log file", func() {
		_, err := summaryDocument(cfg, 10)
		Expect(errors.Is(err, data.ErrDataAccess)).To(BeTrue())
		Expect(logContents()).To(ContainSubstring(`"message":"could not connect to inventory database"`))
	})

	It("logs export failures to the log file", func() {
		out := filepath.Join(GinkgoT().TempDir(), "summary.csv")
		err := exportSummary(cfg, out, export.CSV)
		Expect(errors.Is(err, data.ErrDataAccess)).To(BeTrue())
		Expect(logContents()).To(ContainSubstring(`"message":"could not connect to inventory database"`))

		_, statErr := os.Stat(out)
		Expect(os.IsNotExist(statErr)).To(BeTrue())
	})

	It("reports a log file that cannot be opened", func() {
		blocker := filepath.Join(GinkgoT().TempDir(), "blocker")
		Expect(os.WriteFile(blocker, nil, 0644)).To(Succeed())
		cfg.LogFile = filepath.Join(blocker, "vsummary.log")

		_, err := refreshSummary(cfg)
		Expect(err).To(HaveOccurred())
		Expect(pings).To(BeEmpty())
	})
})
