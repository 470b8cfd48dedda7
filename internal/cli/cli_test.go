// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/confseed/confseed/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand("test", "none", "unknown")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShowCommand(t *testing.T) {
	t.Run("will print the parsed sections", func(t *testing.T) {
		path := writeSettings(t, "settings.json", `{
			"core": {"debug": true},
			"auth_ldap": {"host_url": "ldaps://x"}
		}`)

		out, _, err := execute(t, "show", path)
		require.NoError(t, err)

		assert.Contains(t, out, "core")
		assert.Contains(t, out, "debug: true")
		assert.Contains(t, out, "auth_ldap")
		assert.Contains(t, out, "host_url: ldaps://x")
	})

	t.Run("will flag empty leaf values when asked", func(t *testing.T) {
		path := writeSettings(t, "settings.json", `{
			"auth_ldap": {"host_url": "", "nested": {"bind_dn": ""}}
		}`)

		_, errOut, err := execute(t, "show", "--warn-empty", path)
		require.NoError(t, err)

		assert.Contains(t, errOut, "empty value at auth_ldap.host_url")
		assert.Contains(t, errOut, "empty value at auth_ldap.nested.bind_dn")
	})

	t.Run("will fail", func(t *testing.T) {
		t.Run("if the file is malformed, even though bootstrap would tolerate it", func(t *testing.T) {
			path := writeSettings(t, "settings.json", `{"core": `)

			_, _, err := execute(t, "show", path)

			var parseErr parser.ParseError
			require.ErrorAs(t, err, &parseErr)
		})

		t.Run("if the file does not exist", func(t *testing.T) {
			_, _, err := execute(t, "show", filepath.Join(t.TempDir(), "missing.json"))

			var notFound parser.NotFoundError
			require.ErrorAs(t, err, &notFound)
		})

		t.Run("if an override flag is malformed", func(t *testing.T) {
			path := writeSettings(t, "settings.json", `{}`)

			_, _, err := execute(t, "show", "--ext", "jsonparser.so", path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "want ext=path")
		})
	})
}

func TestExtensionsCommand(t *testing.T) {
	out, _, err := execute(t, "extensions")
	require.NoError(t, err)

	assert.Contains(t, out, "parser.JSON")
	assert.Contains(t, out, "json")
	assert.Contains(t, out, "parser.YAML")
	assert.Contains(t, out, "yaml, yml")
}
