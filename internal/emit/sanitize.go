package emit

import (
	"regexp"
	"strings"
)

var rePlaceholder = regexp.MustCompile(`\{(\w+)\}`)

// SanitizeExegesis нейтрализует фигурные скобки в тексте exegesis: выходной
// формат не умеет вложенные неэкранированные скобки внутри блока.
// Шаблонные плейсхолдеры `{word}` становятся `<word>`, все оставшиеся
// скобки — круглыми.
func SanitizeExegesis(text string) string {
	text = rePlaceholder.ReplaceAllString(text, "<$1>")
	text = strings.ReplaceAll(text, "{", "(")
	return strings.ReplaceAll(text, "}", ")")
}
