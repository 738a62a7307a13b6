package lexer

import "bytes"

// StripComments удаляет все line-комментарии (`//` до конца строки) из
// содержимого. Переводы строк сохраняются, так что номера строк в
// результате совпадают с исходными. Возвращает новый слайс и флаг: были ли
// удаления.
//
// Результат — единственный буфер, который дальше токенизируется; текст
// комментариев после этой трансформации невосстановим.
func StripComments(content []byte) ([]byte, bool) {
	// Быстрый путь: нет "//" — возвращаем как есть.
	if !bytes.Contains(content, []byte("//")) {
		return content, false
	}

	out := make([]byte, 0, len(content))
	i := 0
	for i < len(content) {
		if content[i] == '/' && i+1 < len(content) && content[i+1] == '/' {
			// скипаем до конца строки, сам '\n' оставляем
			for i < len(content) && content[i] != '\n' {
				i++
			}
			continue
		}
		out = append(out, content[i])
		i++
	}
	return out, true
}
