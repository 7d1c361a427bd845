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
package healthcheck_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/vsummary/healthcheck"
)

var _ = Describe("Check", func() {
	var (
		server  *httptest.Server
		paths   []string
		bodies  []string
		status  int
		ctx     context.Context
		myCheck *healthcheck.Check
	)

	BeforeEach(func() {
		paths = nil
		bodies = nil
		status = http.StatusOK
		ctx = context.Background()

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			paths = append(paths, r.URL.Path)
			bodies = append(bodies, string(body))
			w.WriteHeader(status)
		}))

		myCheck = &healthcheck.Check{BaseURL: server.URL + "/", ID: "abc-123"}
	})

	AfterEach(func() {
		server.Close()
	})

	It("pings the success endpoint", func() {
		Expect(myCheck.Ping(ctx, true, "3 rows")).To(Succeed())
		Expect(paths).To(Equal([]string{"/abc-123"}))
		Expect(bodies).To(Equal([]string{"3 rows"}))
	})

	It("pings the fail endpoint", func() {
		Expect(myCheck.Ping(ctx, false, "boom")).To(Succeed())
		Expect(paths).To(Equal([]string{"/abc-123/fail"}))
	})

	It("returns ErrStatus for rejected pings", func() {
		status = http.StatusNotFound
		err := myCheck.Ping(ctx, true, "")
		Expect(errors.Is(err, healthcheck.ErrStatus)).To(BeTrue())
	})

	It("does nothing without a check id", func() {
		myCheck.ID = ""
		Expect(myCheck.Enabled()).To(BeFalse())
		Expect(myCheck.Ping(ctx, true, "")).To(Succeed())
		Expect(paths).To(BeEmpty())
	})

	It("defaults to hc-ping.com", func() {
		check := &healthcheck.Check{ID: "xyz"}
		Expect(check.URL(true)).To(Equal("https://hc-ping.com/xyz"))
		Expect(check.URL(false)).To(Equal("https://hc-ping.com/xyz/fail"))
	})
})
