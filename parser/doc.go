// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package parser defines the contract between settings files and the
// merge engine, along with the built-in JSON and YAML parsers.
//
// A parser turns the bytes of a settings file into a [Sections] value,
// a mapping from component name to that component's settings. Two
// component names are reserved: "core", whose settings are destined for
// the host's flat top-level namespace, and "confseed", which holds
// provenance metadata about the load itself.
//
// # Normalization
//
// Settings files are written by humans and frequently place bare
// scalars at the top level:
//
//	{"dbname": "testdb", "auth_ldap": {"host_url": "ldaps://x"}}
//
// Every parser is expected to normalize such documents before
// returning: top-level keys whose values are not objects are relocated
// into the core section under their original key, so the document
// above is equivalent to
//
//	{"core": {"dbname": "testdb"}, "auth_ldap": {"host_url": "ldaps://x"}}
//
// # Strict mode
//
// By default the built-in parsers trade correctness for bootstrap
// resilience: a file that exists but cannot be read or parsed yields
// empty settings rather than an error, so a malformed settings file
// never prevents the host application from starting. Diagnostic
// contexts (the confseed CLI, automated tests) construct parsers with
// [Strict], which surfaces every failure. A missing file is an error in
// both modes.
//
// Duplicate keys within one document resolve per the underlying codec;
// both encoding/json and gopkg.in/yaml.v3 keep the last value written.
package parser
