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
package backblaze

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kothar/go-backblaze"
	"github.com/rs/zerolog"
)

var (
	ErrBucketNotFound = errors.New("bucket not found")
)

type Uploader struct {
	ApplicationID  string
	ApplicationKey string
	Bucket         string
}

// Configured reports whether enough credentials are present to upload
func (uploader *Uploader) Configured() bool {
	return uploader.ApplicationID != "" && uploader.ApplicationKey != "" && uploader.Bucket != ""
}

// ObjectName is the name fn is stored under in the bucket
func ObjectName(fn, dirname string) string {
	return fmt.Sprintf("%s/%s", dirname, filepath.Base(fn))
}

func (uploader *Uploader) Upload(ctx context.Context, fn, dirname string) error {
	logger := zerolog.Ctx(ctx).With().Str("BucketName", uploader.Bucket).Logger()

	b2, err := backblaze.NewB2(backblaze.Credentials{
		KeyID:          uploader.ApplicationID,
		ApplicationKey: uploader.ApplicationKey,
	})
	if err != nil {
		logger.Error().Err(err).Msg("authorize backblaze failed")
		return err
	}

	bucket, err := b2.Bucket(uploader.Bucket)
	if err != nil {
		logger.Error().Err(err).Msg("lookup bucket failed")
		return err
	}
	if bucket == nil {
		logger.Error().Msg("bucket does not exist")
		return fmt.Errorf("%w: %s", ErrBucketNotFound, uploader.Bucket)
	}

	reader, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer reader.Close()

	outName := ObjectName(fn, dirname)
	metadata := make(map[string]string)

	file, err := bucket.UploadFile(outName, metadata, reader)
	if err != nil {
		logger.Error().Err(err).Str("FileName", outName).Msg("save file to backblaze failed")
		return err
	}

	logger.Info().Str("FileName", file.Name).Int64("Size", file.ContentLength).Str("ID", file.ID).Msg("uploaded file to backblaze")
	return nil
}
