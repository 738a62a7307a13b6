package deriv

import (
	"regexp"
	"strings"
)

// reDerivesFrom ловит цель наследования в уже нормализованной строке тела.
var reDerivesFrom = regexp.MustCompile(`\bderives\s+from\s+([\w.@>]+)`)

// CanonicalName приводит имя к виду, по которому сопоставляются узлы
// графа: квалификатор отбрасывается, остаётся последний сегмент.
func CanonicalName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Parents извлекает канонические имена родителей из нормализованного
// тела декларации. Порядок — порядок появления, без дедупликации: её
// делает BuildGraph.
func Parents(body string) []string {
	var parents []string
	for _, m := range reDerivesFrom.FindAllStringSubmatch(body, -1) {
		if name := CanonicalName(m[1]); name != "" {
			parents = append(parents, name)
		}
	}
	return parents
}
