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

	"github.com/charmbracelet/lipgloss"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// renderSections pretty-prints a sectioned mapping, core first, the
// remaining components alphabetically.
func renderSections(sections parser.Sections) string {
	var names []string
	for name := range sections {
		if name != parser.CoreSection {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := sections[parser.CoreSection]; ok {
		names = append([]string{parser.CoreSection}, names...)
	}

	var b strings.Builder
	for _, name := range names {
		b.WriteString(sectionStyle.Render("["+name+"]") + "\n")
		renderMap(&b, sections[name], 1)
		b.WriteString("\n")
	}
	return b.String()
}

func renderMap(b *strings.Builder, m map[string]any, depth int) {
	indent := strings.Repeat("  ", depth)

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch x := m[k].(type) {
		case map[string]any:
			fmt.Fprintf(b, "%s%s:\n", indent, keyStyle.Render(k))
			renderMap(b, x, depth+1)
		default:
			fmt.Fprintf(b, "%s%s: %v\n", indent, keyStyle.Render(k), x)
		}
	}
}
