// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confseed

import (
	"fmt"
	"log/slog"

	"github.com/confseed/confseed/parser"
	"github.com/confseed/confseed/resolver"
)

// Name is the tool identity. The provenance section every load records
// into the destination lives under this reserved component name.
const Name = parser.MetaSection

type options struct {
	resolverOpts []resolver.Option
	parserOpts   []parser.Option
	logHandler   slog.Handler
}

// Option configures a single Apply call. Overrides registered through
// options live only for that call.
type Option func(*options)

// WithParser registers an override parser factory for the given file
// extension (no leading dot). Overrides take precedence over the
// built-in parsers.
func WithParser(ext string, f resolver.Factory) Option {
	return func(o *options) {
		o.resolverOpts = append(o.resolverOpts, resolver.WithFactory(ext, f))
	}
}

// WithParserFile registers an override for the given extension backed
// by a Go plugin file exporting a NewParser symbol. A relative path
// resolves against the application root (see [WithRoot]).
func WithParserFile(ext string, path string) Option {
	return func(o *options) {
		o.resolverOpts = append(o.resolverOpts, resolver.WithFile(ext, path))
	}
}

// WithRoot sets the application root directory that relative override
// plugin paths resolve against.
func WithRoot(dir string) Option {
	return func(o *options) {
		o.resolverOpts = append(o.resolverOpts, resolver.WithRoot(dir))
	}
}

// WithStrict makes the built-in parsers surface read, parse and
// structure failures instead of treating the file as empty. Intended
// for diagnostic contexts; the default favors booting the host over
// completeness of its configuration.
func WithStrict() Option {
	return func(o *options) {
		o.parserOpts = append(o.parserOpts, parser.Strict())
	}
}

// LogHandler sets the slog.Handler the load reports to. The default
// discards everything.
func LogHandler(h slog.Handler) Option {
	return func(o *options) {
		o.logHandler = h
		o.parserOpts = append(o.parserOpts, parser.LogHandler(h))
	}
}

// Apply loads the settings file at path and merges it into dst.
//
// The file's core section is copied key by key onto dst.Values,
// overwriting existing fields of the same name; every other section
// replaces dst.Components[name] wholesale. Fields of dst that the file
// does not mention are left untouched, so applying the same file twice
// is idempotent. Before merging, the provenance section gains a
// "loader" entry identifying the parser implementation used and a
// "configfile" entry recording path.
//
// Resolution and parse failures propagate unchanged; the merge itself
// cannot fail.
func Apply(dst *Config, path string, opts ...Option) error {
	o := options{
		logHandler: noopLogHandler{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	log := slog.New(o.logHandler)

	r := resolver.New(append(o.resolverOpts, resolver.WithParserOptions(o.parserOpts...))...)

	p, err := r.Resolve(path)
	if err != nil {
		return err
	}

	settings, err := p.Load(path)
	if err != nil {
		return err
	}
	if settings == nil {
		// the contract does not oblige custom parsers to allocate
		settings = parser.Sections{}
	}

	annotate(settings, path, p)
	log.Debug("applying settings file",
		slog.String("configfile", path),
		slog.String("loader", loaderName(p)))

	dst.merge(settings)
	return nil
}

// annotate injects provenance metadata into the parsed settings. The
// built-in parsers record configfile themselves; custom parsers are
// not required to.
func annotate(settings parser.Sections, path string, p parser.Parser) {
	meta, ok := settings[Name]
	if !ok {
		meta = make(map[string]any, 2)
		settings[Name] = meta
	}
	meta["loader"] = loaderName(p)
	if _, ok := meta["configfile"]; !ok {
		meta["configfile"] = path
	}
}

func loaderName(p parser.Parser) string {
	return fmt.Sprintf("%T", p)
}
