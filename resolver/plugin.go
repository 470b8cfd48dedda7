// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"plugin"

	"github.com/confseed/confseed/parser"
)

// NewParserSymbol is the exported symbol a parser plugin must define:
// a func() parser.Parser returning the plugin's parser implementation.
// Requiring one well-known symbol keeps selection deterministic even
// when a plugin defines several parser types.
const NewParserSymbol = "NewParser"

// openPlugin loads a parser implementation from a Go plugin file.
// Loading a plugin registers its code with the runtime permanently and
// must not race with itself for the same extension; the resolver is
// only ever driven by single-threaded bootstrap code.
func (r *Resolver) openPlugin(loc string) (parser.Parser, error) {
	if !filepath.IsAbs(loc) {
		loc = filepath.Join(r.root, loc)
	}

	_, err := os.Stat(loc)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, LoaderNotFoundError{Path: loc}
		}
		return nil, fmt.Errorf("stat parser plugin %s: %w", loc, err)
	}

	p, err := plugin.Open(loc)
	if err != nil {
		return nil, NoParserError{Path: loc, Cause: err}
	}

	sym, err := p.Lookup(NewParserSymbol)
	if err != nil {
		return nil, NoParserError{Path: loc, Cause: err}
	}

	newParser, ok := sym.(func() parser.Parser)
	if !ok {
		return nil, NoParserError{
			Path:  loc,
			Cause: fmt.Errorf("symbol %s is %T, want func() parser.Parser", NewParserSymbol, sym),
		}
	}
	return newParser(), nil
}
