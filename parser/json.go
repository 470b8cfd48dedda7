// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parser

import "encoding/json"

// JSON is the canonical built-in parser. It reads settings files whose
// root is a JSON object of component sections.
type JSON struct {
	doc document
}

// NewJSON configures a JSON parser.
func NewJSON(opts ...Option) *JSON {
	return &JSON{
		doc: newDocument("json", unmarshalJSON, opts),
	}
}

// Load implements the [Parser] interface.
func (p *JSON) Load(path string) (Sections, error) {
	return p.doc.load(path)
}

// Extensions implements the [Parser] interface.
func (p *JSON) Extensions() []string {
	return []string{"json"}
}

func unmarshalJSON(b []byte, v *any) error {
	return json.Unmarshal(b, v)
}
