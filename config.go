// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confseed

import (
	"github.com/confseed/confseed/parser"
)

// Config is the destination configuration object. It has two regions:
// Values, the host's flat top-level namespace, and Components, a
// per-component namespace keyed by component name.
//
// The caller owns a Config before and after every Apply call. Apply
// only ever adds or overwrites fields; nothing is deleted.
type Config struct {
	Values     map[string]any
	Components map[string]map[string]any
}

// Component returns the named component's settings, reporting whether
// any have been applied.
func (c *Config) Component(name string) (map[string]any, bool) {
	s, ok := c.Components[name]
	return s, ok
}

// merge applies parsed settings onto the config: core settings become
// flat fields, every other section replaces its component wholesale.
func (c *Config) merge(settings parser.Sections) {
	for name, section := range settings {
		if name == parser.CoreSection {
			if c.Values == nil {
				c.Values = make(map[string]any, len(section))
			}
			for k, v := range section {
				c.Values[k] = v
			}
			continue
		}

		if c.Components == nil {
			c.Components = make(map[string]map[string]any)
		}
		c.Components[name] = section
	}
}
