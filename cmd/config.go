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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/penny-vault/vsummary/backblaze"
	"github.com/penny-vault/vsummary/data"
	"github.com/penny-vault/vsummary/healthcheck"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type runConfig struct {
	DBUrl    string `validate:"required,url,startswith=postgres"`
	Table    string `validate:"required"`
	LogFile  string
	LogLevel string `validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`

	HealthCheck healthcheck.Check
	Backblaze   backblaze.Uploader
}

// loadConfig reads the run configuration from viper and validates it
func loadConfig() (*runConfig, error) {
	cfg := &runConfig{
		DBUrl:    viper.GetString("db.url"),
		Table:    data.TableName(viper.GetString("summary.table")),
		LogFile:  viper.GetString("log.file"),
		LogLevel: viper.GetString("log.level"),
		HealthCheck: healthcheck.Check{
			BaseURL: viper.GetString("healthchecks.ping_url"),
			ID:      viper.GetString("healthchecks.check_id"),
		},
		Backblaze: backblaze.Uploader{
			ApplicationID:  viper.GetString("backblaze.application_id"),
			ApplicationKey: viper.GetString("backblaze.application_key"),
			Bucket:         viper.GetString("backblaze.bucket"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", data.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// newLogger writes to the console and appends to cfg.LogFile when set. The
// returned closer releases the log file.
func newLogger(cfg *runConfig) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if cfg.LogLevel != "" {
		var err error
		if level, err = zerolog.ParseLevel(cfg.LogLevel); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("%w: %w", data.ErrInvalidConfig, err)
		}
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}}
	var closer io.Closer = io.NopCloser(nil)

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return zerolog.Nop(), nil, err
		}

		fh, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Nop(), nil, err
		}

		writers = append(writers, fh)
		closer = fh
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, closer, nil
}

// newContext returns a background context carrying the configured logger
func newContext(cfg *runConfig) (context.Context, io.Closer, error) {
	logger, closer, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	return logger.WithContext(context.Background()), closer, nil
}
