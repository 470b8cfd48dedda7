// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package confseed loads component-sectioned settings files into a
// mutable configuration object during process bootstrap.
//
// A settings file is an object whose top-level keys name components.
// The reserved component "core" holds settings destined for the host's
// flat top-level namespace; every other component's settings land under
// that component's name in a per-component namespace. Bare top-level
// scalars are treated as core settings.
//
// # Basic Usage
//
// Apply a settings file to a destination before the host initializes:
//
//	var cfg confseed.Config
//	err := confseed.Apply(&cfg, "/etc/myapp/settings.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Given the document
//
//	{"core": {"debug": true}, "auth_ldap": {"host_url": "ldaps://x"}}
//
// cfg.Values carries debug and cfg.Components["auth_ldap"] carries the
// LDAP settings verbatim.
//
// # Extending Format Support
//
// Dispatch is by file extension. JSON and YAML parsers are built in;
// callers register their own with [WithParser] or point at a compiled
// parser plugin with [WithParserFile]:
//
//	err := confseed.Apply(&cfg, "settings.custom",
//	    confseed.WithParser("custom", newCustomParser),
//	)
//
// Apply runs once, synchronously, before any concurrent subsystem
// exists; it takes no locks and must not be invoked concurrently with
// itself while plugin overrides are in play.
package confseed
