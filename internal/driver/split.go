// Package driver wires the split pipeline together: source loading, comment
// stripping, declaration parsing, normalization and emission.
package driver

import (
	"fmt"

	"github.com/univrs/metadol/internal/diag"
	"github.com/univrs/metadol/internal/emit"
	"github.com/univrs/metadol/internal/lexer"
	"github.com/univrs/metadol/internal/normalize"
	"github.com/univrs/metadol/internal/parser"
	"github.com/univrs/metadol/internal/source"
)

// FileResult содержит результат разрезания одного файла.
type FileResult struct {
	Path    string        // путь входного файла
	FileID  source.FileID // ID расчищенной версии файла в FileSet
	Created []string      // относительные пути созданных файлов, в порядке появления
	Bag     *diag.Bag     // диагностики
}

// Count returns the number of declarations emitted from the file.
func (r FileResult) Count() int { return len(r.Created) }

// SplitFile разрезает уже загруженный файл: каждая декларация
// нормализуется, санитизируется и немедленно уходит в sink. Ошибка
// извлечения обрывает файл целиком — частичный результат возвращается
// вместе с ошибкой.
func SplitFile(fileSet *source.FileSet, id source.FileID, sink emit.Sink, maxDiagnostics int) (FileResult, error) {
	raw := fileSet.Get(id)

	// Комментарии вычищаются до любого позиционного сканирования; дальше
	// живёт только расчищенный буфер (переводы строк сохранены, так что
	// номера строк в диагностике честные).
	stripped, changed := lexer.StripComments(raw.Content)
	flags := raw.Flags
	if changed {
		flags |= source.FileStripped
	}
	strippedID := fileSet.Add(raw.Path, stripped, flags)
	file := fileSet.Get(strippedID)

	bag := diag.NewBag(maxDiagnostics)
	result := FileResult{
		Path:   raw.Path,
		FileID: strippedID,
		Bag:    bag,
	}

	lx := lexer.New(file)
	p := parser.New(file, lx, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})

	for {
		decl, ok, err := p.Next()
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}

		// Декларация живёт один виток: нормализовали, отдали, забыли.
		decl.Body = normalize.Body(decl.Kind, decl.Body)
		decl.Exegesis = emit.SanitizeExegesis(decl.Exegesis)

		relPath, err := emit.Emit(sink, decl)
		if err != nil {
			diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOWriteFileError, decl.Span,
				fmt.Sprintf("failed to write declaration %q: %v", decl.Name, err))
			return result, err
		}
		result.Created = append(result.Created, relPath)
	}
}
