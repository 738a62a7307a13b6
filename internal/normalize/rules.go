package normalize

import (
	"regexp"
	"strings"

	"github.com/univrs/metadol/internal/ast"
)

// Rule — одно строчное переписывание. Apply получает строку без отступа и
// возвращает её же или переписанную. Каждое правило обязано не матчиться на
// собственный результат: нормализация в целом идемпотентна.
type Rule struct {
	Name  string
	Apply func(line string) string
}

var (
	reDeriveFrom = regexp.MustCompile(`\bderive\s+from\b`)
	reRequire    = regexp.MustCompile(`\brequire\s+`)
	reSubject    = regexp.MustCompile(`^([\w.]+)\s+(has|is|derives|requires|matches|never|emits)\b`)

	reTraitUses     = regexp.MustCompile(`^[\w.]+\s+uses\s+`)
	reTraitIs       = regexp.MustCompile(`^is\s+\w`)
	reConstrMatches = regexp.MustCompile(`^matches\s+(\w+)\s+(.+)$`)
	reSysRequires   = regexp.MustCompile(`^system\s+requires\s+`)
	reSysAll        = regexp.MustCompile(`^all\s+(\w+)\s+is\s+`)
	reSysBareReq    = regexp.MustCompile(`^requires\s+([\w.]+)\s*$`)
)

// globalRules применяются к каждой значимой строке независимо от вида
// декларации, в порядке объявления.
var globalRules = []Rule{
	{
		Name: "derive-from",
		Apply: func(line string) string {
			return reDeriveFrom.ReplaceAllString(line, "derives from")
		},
	},
	{
		// 'require ' -> 'requires ', кроме 'require clause'. RE2 не умеет
		// negative lookahead, поэтому проверяем хвост вручную.
		Name: "require",
		Apply: func(line string) string {
			matches := reRequire.FindAllStringIndex(line, -1)
			if matches == nil {
				return line
			}
			var b strings.Builder
			prev := 0
			for _, m := range matches {
				b.WriteString(line[prev:m[0]])
				if strings.HasPrefix(line[m[1]:], "clause") {
					b.WriteString(line[m[0]:m[1]])
				} else {
					b.WriteString("requires ")
				}
				prev = m[1]
			}
			b.WriteString(line[prev:])
			return b.String()
		},
	},
	{
		// Квалифицированный субъект перед глаголом сводится к последнему
		// сегменту: 'authentication.temporal matches x' -> 'temporal matches x'.
		// Lossy при коллизии последних сегментов — принятое упрощение.
		Name: "dequalify-subject",
		Apply: func(line string) string {
			m := reSubject.FindStringSubmatchIndex(line)
			if m == nil {
				return line
			}
			subject := line[m[2]:m[3]]
			if !strings.Contains(subject, ".") {
				return line
			}
			parts := strings.Split(subject, ".")
			return parts[len(parts)-1] + line[m[3]:]
		},
	},
}

// kindRules — упорядоченные списки правил по виду декларации.
var kindRules = map[ast.Kind][]Rule{
	ast.KindTrait: {
		{
			// в traits 'uses' не несёт субъекта
			Name: "uses-no-subject",
			Apply: func(line string) string {
				return reTraitUses.ReplaceAllString(line, "uses ")
			},
		},
		{
			Name: "emits-action",
			Apply: func(line string) string {
				if strings.HasPrefix(line, "emits ") {
					return "action " + line
				}
				return line
			},
		},
		{
			Name: "is-behavior",
			Apply: func(line string) string {
				if reTraitIs.MatchString(line) {
					return "behavior " + line
				}
				return line
			},
		},
	},
	ast.KindConstraint: {
		{
			// 'matches x y' без субъекта -> 'x matches y'
			Name: "matches-reorder",
			Apply: func(line string) string {
				return reConstrMatches.ReplaceAllString(line, "$1 matches $2")
			},
		},
		{
			Name: "never-invariant",
			Apply: func(line string) string {
				if strings.HasPrefix(line, "never ") {
					return "invariant " + line
				}
				return line
			},
		},
	},
	ast.KindSystem: {
		{
			Name: "system-requires",
			Apply: func(line string) string {
				return reSysRequires.ReplaceAllString(line, "requires ")
			},
		},
		{
			Name: "all-is",
			Apply: func(line string) string {
				return reSysAll.ReplaceAllString(line, "$1 is ")
			},
		},
		{
			// канон требует явной минимальной версии; 0.0.1 — дефолтный пол
			Name: "requires-version-floor",
			Apply: func(line string) string {
				return reSysBareReq.ReplaceAllString(line, "requires $1 >= 0.0.1")
			},
		},
	},
}
