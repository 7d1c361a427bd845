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
package healthcheck

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const DefaultPingURL = "https://hc-ping.com"

var (
	ErrStatus = errors.New("status code is invalid")
)

type Check struct {
	BaseURL string
	ID      string
}

// Enabled reports whether a check id has been configured
func (check *Check) Enabled() bool {
	return check.ID != ""
}

// URL returns the ping endpoint for a successful or failed run
func (check *Check) URL(success bool) string {
	baseURL := strings.TrimSuffix(check.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultPingURL
	}

	if success {
		return fmt.Sprintf("%s/%s", baseURL, check.ID)
	}

	return fmt.Sprintf("%s/%s/fail", baseURL, check.ID)
}

// Ping signals the outcome of a run. msg is sent as the request body and
// shows up in the healthchecks.io event log.
func (check *Check) Ping(ctx context.Context, success bool, msg string) error {
	if !check.Enabled() {
		return nil
	}

	logger := zerolog.Ctx(ctx)

	client := resty.New()
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain").
		SetBody(msg).
		Post(check.URL(success))

	if err != nil {
		logger.Warn().Err(err).Str("CheckID", check.ID).Msg("healthcheck ping failed")
		return err
	}

	if resp.StatusCode() != 200 {
		logger.Warn().Int("StatusCode", resp.StatusCode()).Str("CheckID", check.ID).Msg("healthcheck ping rejected")
		return fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}

	logger.Debug().Str("CheckID", check.ID).Bool("Success", success).Msg("healthcheck pinged")
	return nil
}
