// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parser

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/confseed/confseed/internal/try"
)

// osFS serves Open calls straight from the operating system, which
// keeps absolute settings file paths working as callers expect.
type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// readFile reads the whole file at path, translating failures into the
// parser error taxonomy.
func readFile(fsys fs.FS, path string) (_ []byte, err error) {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NotFoundError{Path: path}
		}
		return nil, ReadError{Path: path, Cause: err}
	}
	defer try.Close(&err, f)

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, ReadError{Path: path, Cause: err}
	}
	return b, nil
}
