// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package resolver selects the parser implementation serving a
// settings file, dispatching on the file's extension.
//
// Dispatch consults caller overrides first and a registry of built-in
// parsers second, so callers can extend or replace format support
// without touching the loading code. Overrides come in two forms: an
// in-process factory, and the path of a Go plugin exporting a NewParser
// symbol (see [WithFile]).
package resolver

import (
	"strings"

	"github.com/confseed/confseed/parser"
)

// Factory constructs a parser implementation. The options are whatever
// the resolver was configured to forward; custom factories are free to
// ignore them.
type Factory func(opts ...parser.Option) parser.Parser

// Resolver maps file extensions to parser implementations. A Resolver
// is built fresh for every load and is not safe for concurrent use
// while plugin overrides are being registered.
type Resolver struct {
	root       string
	parserOpts []parser.Option
	factories  map[string]Factory
	files      map[string]string
	builtin    map[string]Factory
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRoot sets the directory relative override file paths resolve
// against. It defaults to the current working directory.
func WithRoot(dir string) Option {
	return func(r *Resolver) {
		r.root = dir
	}
}

// WithFactory registers an override factory for the given extension
// (no leading dot). Overrides take precedence over built-in parsers.
func WithFactory(ext string, f Factory) Option {
	return func(r *Resolver) {
		r.factories[ext] = f
	}
}

// WithFile registers an override for the given extension backed by a
// Go plugin file. The plugin must export a NewParser symbol of type
// func() parser.Parser.
func WithFile(ext string, path string) Option {
	return func(r *Resolver) {
		r.files[ext] = path
	}
}

// WithParserOptions sets the options forwarded to built-in parser
// construction, strict mode and logging among them.
func WithParserOptions(opts ...parser.Option) Option {
	return func(r *Resolver) {
		r.parserOpts = opts
	}
}

// New builds a Resolver with the built-in JSON and YAML parsers
// registered under their conventional extensions.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		factories: make(map[string]Factory),
		files:     make(map[string]string),
		builtin: map[string]Factory{
			"json": func(opts ...parser.Option) parser.Parser { return parser.NewJSON(opts...) },
			"yaml": func(opts ...parser.Option) parser.Parser { return parser.NewYAML(opts...) },
			"yml":  func(opts ...parser.Option) parser.Parser { return parser.NewYAML(opts...) },
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Builtin returns one instance of every registered built-in parser,
// keyed by extension. It exists for discovery tooling.
func (r *Resolver) Builtin() map[string]parser.Parser {
	m := make(map[string]parser.Parser, len(r.builtin))
	for ext, f := range r.builtin {
		m[ext] = f(r.parserOpts...)
	}
	return m
}

// Resolve returns the parser implementation serving the settings file
// at path.
func (r *Resolver) Resolve(path string) (parser.Parser, error) {
	ext := Ext(path)

	if f, ok := r.factories[ext]; ok {
		return f(r.parserOpts...), nil
	}
	if loc, ok := r.files[ext]; ok {
		return r.openPlugin(loc)
	}
	if f, ok := r.builtin[ext]; ok {
		return f(r.parserOpts...), nil
	}
	return nil, UnknownExtensionError{Ext: ext}
}

// Ext extracts the extension dispatch key from a file path: the
// substring after the final dot, lowercased, or the empty string when
// there is none. Lowercasing keeps dispatch case-insensitive, so
// settings.JSON reaches the same parser as settings.json.
func Ext(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(path[i+1:])
}
