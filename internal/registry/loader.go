// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

package registry

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// ErrNotFound indicates the object_info file does not exist.
var ErrNotFound = errors.New("file not found")

// Loader loads object_info documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile reads and parses an object_info JSON file.
func (l *Loader) LoadFile(path string) (Registry, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}
