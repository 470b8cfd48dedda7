// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
)

// document is the shared load pipeline behind the built-in parsers:
// read, decode, shape-check, normalize. The format only contributes its
// unmarshal function.
type document struct {
	format    string
	strict    bool
	fsys      fs.FS
	log       *slog.Logger
	unmarshal func([]byte, *any) error
}

func newDocument(format string, unmarshal func([]byte, *any) error, opts []Option) document {
	o := buildOptions(opts)
	return document{
		format:    format,
		strict:    o.strict,
		fsys:      o.fsys,
		log:       slog.New(o.logHandler),
		unmarshal: unmarshal,
	}
}

func (d document) load(path string) (Sections, error) {
	b, err := readFile(d.fsys, path)
	if err != nil {
		return d.tolerate(path, err)
	}

	// an empty file is an empty document, not a syntax error
	var root any
	if len(bytes.TrimSpace(b)) > 0 {
		err = d.unmarshal(b, &root)
		if err != nil {
			return d.tolerate(path, ParseError{Path: path, Cause: err})
		}
	}

	s, err := sectionsOf(root, path)
	if err != nil {
		return d.tolerate(path, err)
	}
	return s, nil
}

// tolerate implements the non-strict policy: read, parse and structure
// failures become empty settings so a broken file cannot stop the host
// from booting. A missing file always surfaces.
func (d document) tolerate(path string, err error) (Sections, error) {
	var notFound NotFoundError
	if d.strict || errors.As(err, &notFound) {
		return nil, err
	}
	d.log.Warn("ignoring unusable settings file",
		slog.String("format", d.format),
		slog.String("path", path),
		slog.String("error", err.Error()))
	return emptySections(path), nil
}

func sectionsOf(root any, path string) (Sections, error) {
	var m map[string]any
	switch x := root.(type) {
	case nil:
		m = map[string]any{}
	case map[string]any:
		m = x
	case []any:
		m = listToRoot(x)
	default:
		return nil, StructureError{Path: path, Got: fmt.Sprintf("%T", root)}
	}

	s := Normalize(m)
	recordSource(s, path)
	return s, nil
}
