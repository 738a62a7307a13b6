// Package normalize rewrites declaration bodies from legacy/informal clause
// forms into the canonical DOL grammar.
//
// The transform is line-local, preserves line count and indentation, and is
// idempotent: normalizing already-canonical text changes nothing.
package normalize

import (
	"strings"

	"github.com/univrs/metadol/internal/ast"
)

// Body нормализует тело декларации построчно. Пустые строки и строки,
// начинающиеся с комментария, проходят без изменений вместе с исходным
// отступом.
func Body(kind ast.Kind, body string) string {
	lines := strings.Split(body, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "//") {
			out = append(out, line)
			continue
		}
		// исходный отступ переприклеивается после переписывания
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

		for _, rule := range globalRules {
			stripped = rule.Apply(stripped)
		}
		for _, rule := range kindRules[kind] {
			stripped = rule.Apply(stripped)
		}

		out = append(out, indent+stripped)
	}

	return strings.Join(out, "\n")
}
