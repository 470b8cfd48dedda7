// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parser

import "gopkg.in/yaml.v3"

// YAML is a built-in parser for YAML settings files. It accepts the
// same component-sectioned document shape as [JSON].
type YAML struct {
	doc document
}

// NewYAML configures a YAML parser.
func NewYAML(opts ...Option) *YAML {
	return &YAML{
		doc: newDocument("yaml", unmarshalYAML, opts),
	}
}

// Load implements the [Parser] interface.
func (p *YAML) Load(path string) (Sections, error) {
	return p.doc.load(path)
}

// Extensions implements the [Parser] interface.
func (p *YAML) Extensions() []string {
	return []string{"yaml", "yml"}
}

func unmarshalYAML(b []byte, v *any) error {
	return yaml.Unmarshal(b, v)
}
