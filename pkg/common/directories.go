// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package common contains the locations where secretary keeps its files.
package common

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const Permissions = 0755

var (
	Directory = filepath.Join(xdg.DataHome, "secretary")

	LogDirectory = filepath.Join(Directory, "logs")
	ConfigFile   = filepath.Join(xdg.ConfigHome, "secretary", "config.yaml")
)

// TryMkdir creates the given directory and its parents if it doesn't
// exist, ignoring any errors.
func TryMkdir(dir string) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		_ = os.MkdirAll(dir, Permissions)
	}
}

// LogPath returns the default location of the match log of a run.
func LogPath(format, runID string) string {
	return filepath.Join(LogDirectory, fmt.Sprintf("%s-%s.csv", format, runID))
}

// DefaultConfig returns the user's config file if it exists.
func DefaultConfig() (string, bool) {
	if _, err := os.Stat(ConfigFile); err != nil {
		return "", false
	}

	return ConfigFile, true
}
