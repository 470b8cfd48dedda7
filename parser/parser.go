// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parser

import (
	"context"
	"io/fs"
	"log/slog"
	"strconv"
)

const (
	// CoreSection is the reserved component name whose settings become
	// top-level fields on the destination config.
	CoreSection = "core"

	// MetaSection is the reserved component name under which provenance
	// metadata about the load is recorded.
	MetaSection = "confseed"
)

// Sections is the sectioned mapping every parser produces: component
// name to that component's settings.
type Sections map[string]map[string]any

// Parser translates a settings file into a [Sections] value.
type Parser interface {
	// Load reads and parses the file at path. It must return a distinct
	// error when the file does not exist, cannot be read or is not
	// well-formed for the parser's format. Load has no side effects
	// beyond reading the file.
	Load(path string) (Sections, error)

	// Extensions returns the file extensions (without leading dot) this
	// parser claims. It is a static capability declaration consumed by
	// discovery tooling; dispatch itself is performed by the resolver.
	Extensions() []string
}

type options struct {
	strict     bool
	fsys       fs.FS
	logHandler slog.Handler
}

// Option configures a built-in parser.
type Option func(*options)

// Strict surfaces read, parse and structure failures instead of
// treating them as empty settings.
func Strict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// FS overrides the filesystem files are read from. The default is the
// operating system filesystem.
func FS(fsys fs.FS) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// LogHandler sets the slog.Handler swallowed failures are reported to
// when not running in strict mode.
func LogHandler(h slog.Handler) Option {
	return func(o *options) {
		o.logHandler = h
	}
}

func buildOptions(opts []Option) options {
	o := options{
		fsys:       osFS{},
		logHandler: noopLogHandler{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type noopLogHandler struct{}

func (noopLogHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (noopLogHandler) Handle(context.Context, slog.Record) error { return nil }
func (noopLogHandler) WithAttrs([]slog.Attr) slog.Handler        { return noopLogHandler{} }
func (noopLogHandler) WithGroup(string) slog.Handler             { return noopLogHandler{} }

// Normalize reshapes a decoded document root into a [Sections] value.
//
// Top-level keys whose values are objects remain component sections.
// Every other top-level key, scalar and list values alike, is relocated
// into the core section under its original key. A core section is
// created when absent. A list root is treated as an object keyed by
// element index.
func Normalize(root map[string]any) Sections {
	out := make(Sections, len(root)+1)

	core := make(map[string]any)
	if m, ok := root[CoreSection].(map[string]any); ok {
		core = m
	}

	for k, v := range root {
		if k == CoreSection {
			if _, ok := v.(map[string]any); ok {
				continue
			}
			// a non-object core value is itself a loose scalar
			core[k] = v
			continue
		}
		switch m := v.(type) {
		case map[string]any:
			out[k] = m
		default:
			core[k] = v
		}
	}

	out[CoreSection] = core
	return out
}

// listToRoot converts a list document root into an index-keyed object
// so it can flow through Normalize like any other aggregate.
func listToRoot(list []any) map[string]any {
	root := make(map[string]any, len(list))
	for i, v := range list {
		root[strconv.Itoa(i)] = v
	}
	return root
}

// emptySections is what a non-strict parser returns in place of a
// failure: no settings beyond a record of which file was attempted.
func emptySections(path string) Sections {
	return Sections{
		CoreSection: {},
		MetaSection: {"configfile": path},
	}
}

// recordSource notes the loaded file under the provenance section
// unless the document itself already claims one.
func recordSource(s Sections, path string) {
	meta, ok := s[MetaSection]
	if !ok {
		meta = make(map[string]any, 1)
		s[MetaSection] = meta
	}
	if _, ok := meta["configfile"]; !ok {
		meta["configfile"] = path
	}
}
