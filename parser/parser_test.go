// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		root     map[string]any
		expected Sections
	}{
		{
			name:     "empty document gains an empty core section",
			root:     map[string]any{},
			expected: Sections{CoreSection: {}},
		},
		{
			name: "component sections pass through unchanged",
			root: map[string]any{
				"core":      map[string]any{"debug": true},
				"auth_ldap": map[string]any{"host_url": "ldaps://x"},
			},
			expected: Sections{
				CoreSection: {"debug": true},
				"auth_ldap": {"host_url": "ldaps://x"},
			},
		},
		{
			name: "bare scalars relocate into core",
			root: map[string]any{
				"dbname":    "testdb",
				"auth_ldap": map[string]any{"version": "3"},
			},
			expected: Sections{
				CoreSection: {"dbname": "testdb"},
				"auth_ldap": {"version": "3"},
			},
		},
		{
			name: "bare lists relocate into core",
			root: map[string]any{
				"hosts": []any{"a", "b"},
			},
			expected: Sections{
				CoreSection: {"hosts": []any{"a", "b"}},
			},
		},
		{
			name: "loose keys merge with an explicit core section",
			root: map[string]any{
				"core":   map[string]any{"debug": true},
				"dbname": "testdb",
			},
			expected: Sections{
				CoreSection: {"debug": true, "dbname": "testdb"},
			},
		},
		{
			name: "a scalar core value is itself a loose key",
			root: map[string]any{
				"core": 42,
			},
			expected: Sections{
				CoreSection: {"core": 42},
			},
		},
		{
			name: "nested objects inside a section are preserved exactly",
			root: map[string]any{
				"core": map[string]any{
					"behat_profiles": map[string]any{
						"default": map[string]any{"browser": "firefox"},
					},
				},
			},
			expected: Sections{
				CoreSection: {
					"behat_profiles": map[string]any{
						"default": map[string]any{"browser": "firefox"},
					},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Normalize(tc.root))
		})
	}
}

func TestNormalize_Property(t *testing.T) {
	keyGen := rapid.StringMatching(`[a-z][a-z0-9_]{0,10}`).Filter(func(s string) bool {
		return s != CoreSection
	})
	scalarGen := rapid.OneOf(
		rapid.Bool().AsAny(),
		rapid.Int().AsAny(),
		rapid.String().AsAny(),
	)

	rapid.Check(t, func(t *rapid.T) {
		scalars := rapid.MapOf(keyGen, scalarGen).Draw(t, "scalars")
		sections := rapid.MapOf(keyGen, rapid.MapOf(keyGen, scalarGen)).Draw(t, "sections")

		root := make(map[string]any, len(scalars)+len(sections))
		for k, v := range sections {
			root[k] = map[string]any(v)
		}
		// scalar keys win any collision with section names, mirroring a
		// document that simply repeats a key
		for k, v := range scalars {
			root[k] = v
		}

		out := Normalize(root)

		core, ok := out[CoreSection]
		require.True(t, ok, "core section must always exist")
		for k, v := range scalars {
			require.Equal(t, v, core[k], "scalar %q must relocate into core", k)
			_, stillTopLevel := out[k]
			require.False(t, stillTopLevel, "scalar %q must not survive at top level", k)
		}
		for name, section := range out {
			if name == CoreSection {
				continue
			}
			require.Equal(t, root[name], map[string]any(section))
		}
	})
}

func TestListToRoot(t *testing.T) {
	root := listToRoot([]any{"a", map[string]any{"b": 1}})
	require.Equal(t, map[string]any{
		"0": "a",
		"1": map[string]any{"b": 1},
	}, root)
}
