// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli implements the confseed command line tool: a thin
// display and validation wrapper over parser resolution and loading.
// It always runs the parsers in strict mode; its exit status reflects
// whether the settings file parsed.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand assembles the confseed command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "confseed",
		Short: "Inspect component-sectioned settings files",
		Long: `Confseed loads settings files whose top-level keys name components, with the
reserved "core" component holding the host's flat top-level settings.

The tool parses files with the same parsers the confseed library uses at
bootstrap, but always in strict mode: every read, parse and structure failure
surfaces with a non-zero exit status instead of being treated as empty
configuration.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newExtensionsCommand())

	return rootCmd
}
