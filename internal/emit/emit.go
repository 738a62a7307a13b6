// Package emit formats canonical declaration files and hands them to a Sink.
//
// The emitter is deliberately thin: normalization and sanitization happen
// before it, directory layout and file writing happen behind the Sink.
package emit

import (
	"fmt"
	"path"

	"github.com/univrs/metadol/internal/ast"
)

// Render производит канонический текст декларации:
//
//	<kind> <name> {<body>}
//
//	exegesis {<exegesis>}
//
// Блок exegesis присутствует всегда, даже пустой.
func Render(kind ast.Kind, name, body, exegesis string) []byte {
	return []byte(fmt.Sprintf("%s %s {%s}\n\nexegesis {%s}\n", kind, name, body, exegesis))
}

// RelPath возвращает путь файла декларации относительно корня вывода:
// множественная директория вида плюс производное имя файла.
func RelPath(kind ast.Kind, filename string) string {
	return path.Join(kind.Dir(), filename+".dol")
}

// Emit рендерит декларацию (уже нормализованную и санитизированную) и
// отдаёт её в sink. Возвращает относительный путь созданного файла.
func Emit(sink Sink, decl ast.Decl) (string, error) {
	relPath := RelPath(decl.Kind, DeriveFilename(decl.Name))
	content := Render(decl.Kind, decl.Name, decl.Body, decl.Exegesis)
	if err := sink.Emit(decl.Kind, relPath, content); err != nil {
		return "", err
	}
	return relPath, nil
}
