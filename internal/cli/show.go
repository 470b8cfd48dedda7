// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/confseed/confseed/parser"
	"github.com/confseed/confseed/resolver"

	"github.com/spf13/cobra"
)

func newShowCommand() *cobra.Command {
	var overrides []string
	var warnEmpty bool

	cmd := &cobra.Command{
		Use:   "show <settings-file>",
		Short: "Parse a settings file and print its component sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []resolver.Option{
				resolver.WithParserOptions(parser.Strict()),
			}
			for _, ov := range overrides {
				ext, path, ok := strings.Cut(ov, "=")
				if !ok {
					return fmt.Errorf("invalid override %q, want ext=path", ov)
				}
				opts = append(opts, resolver.WithFile(ext, path))
			}
			r := resolver.New(opts...)

			p, err := r.Resolve(args[0])
			if err != nil {
				return err
			}
			sections, err := p.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderSections(sections))

			if warnEmpty {
				for _, path := range emptyLeaves(sections) {
					fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("warning: empty value at "+path))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&overrides, "ext", nil, "override parser for an extension, as ext=path to a parser plugin (repeatable)")
	cmd.Flags().BoolVar(&warnEmpty, "warn-empty", false, "flag empty-string leaf values recursively")

	return cmd
}

// emptyLeaves walks every section and returns dotted paths of leaf
// values that are empty strings, in stable order.
func emptyLeaves(sections parser.Sections) []string {
	var paths []string
	for name, section := range sections {
		walkEmpty(name, section, &paths)
	}
	sort.Strings(paths)
	return paths
}

func walkEmpty(prefix string, m map[string]any, paths *[]string) {
	for k, v := range m {
		path := prefix + "." + k
		switch x := v.(type) {
		case map[string]any:
			walkEmpty(path, x, paths)
		case []any:
			for i, e := range x {
				if s, ok := e.(string); ok && s == "" {
					*paths = append(*paths, fmt.Sprintf("%s[%d]", path, i))
				}
			}
		case string:
			if x == "" {
				*paths = append(*paths, path)
			}
		}
	}
}
