// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/confseed/confseed/resolver"

	"github.com/spf13/cobra"
)

func newExtensionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extensions",
		Short: "List built-in parsers and the file extensions they claim",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builtin := resolver.New().Builtin()

			// group extensions by parser, since several extensions can
			// dispatch to the same implementation
			claimed := make(map[string][]string)
			for _, p := range builtin {
				name := fmt.Sprintf("%T", p)
				if _, ok := claimed[name]; ok {
					continue
				}
				claimed[name] = p.Extensions()
			}

			names := make([]string, 0, len(claimed))
			for name := range claimed {
				names = append(names, name)
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			for _, name := range names {
				fmt.Fprintf(out, "%s\t%s\n", sectionStyle.Render(name), strings.Join(claimed[name], ", "))
			}
			return nil
		},
	}
}
