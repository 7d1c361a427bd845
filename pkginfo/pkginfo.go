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
package pkginfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const Name = "vsummary"

var (
	BuildDate  string
	CommitHash string
	Version    string
)

type Build struct {
	Version    string
	BuildDate  string
	CommitHash string
	OSArch     string
	GoVersion  string
}

// Current describes the running binary
func Current() Build {
	version := Version
	if version == "" {
		version = "devel"
	}

	return Build{
		Version:    version,
		BuildDate:  BuildDate,
		CommitHash: CommitHash,
		OSArch:     runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion:  runtime.Version(),
	}
}

// String returns a version info string suitable for printing on the command line
func (build Build) String() string {
	return fmt.Sprintf(`%s %s %s

Build Date: %s
Commit: %s
Built with: %s`, Name, build.Version, build.OSArch, build.BuildDate, build.CommitHash, build.GoVersion)
}

func (build Build) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Version", build.Version)
	e.Str("Commit", build.CommitHash)
	e.Str("GoVersion", build.GoVersion)
}

// GetDependencyList returns path=version pairs of the modules compiled into
// the binary. When prefix is not empty only matching module paths are kept.
func GetDependencyList(prefix string) []string {
	var deps []string

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		log.Error().Msg("could not get package build info")
		return deps
	}

	for _, dep := range buildInfo.Deps {
		if !strings.HasPrefix(dep.Path, prefix) {
			continue
		}
		deps = append(deps, fmt.Sprintf("%s=%q", dep.Path, dep.Version))
	}

	sort.Strings(deps)

	return deps
}
