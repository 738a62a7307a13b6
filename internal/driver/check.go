package driver

import (
	"github.com/univrs/metadol/internal/ast"
	"github.com/univrs/metadol/internal/deriv"
	"github.com/univrs/metadol/internal/diag"
	"github.com/univrs/metadol/internal/lexer"
	"github.com/univrs/metadol/internal/normalize"
	"github.com/univrs/metadol/internal/parser"
	"github.com/univrs/metadol/internal/source"
)

// CheckResult содержит итог проверки файла без записи вывода.
type CheckResult struct {
	Path       string
	FileID     source.FileID // ID расчищенной версии файла
	Decls      []ast.Decl    // нормализованные декларации
	KindCounts map[ast.Kind]int
	Bag        *diag.Bag
}

// CheckFile прогоняет файл через извлечение и нормализацию, ничего не
// записывая, и дополнительно проверяет граф derives from: дубликаты
// имён, ссылки на необъявленных родителей, циклы. Ошибка извлечения
// возвращается вместе с частичным результатом.
func CheckFile(fileSet *source.FileSet, id source.FileID, maxDiagnostics int) (CheckResult, error) {
	raw := fileSet.Get(id)

	stripped, changed := lexer.StripComments(raw.Content)
	flags := raw.Flags
	if changed {
		flags |= source.FileStripped
	}
	strippedID := fileSet.Add(raw.Path, stripped, flags)
	file := fileSet.Get(strippedID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	result := CheckResult{
		Path:       raw.Path,
		FileID:     strippedID,
		KindCounts: make(map[ast.Kind]int),
		Bag:        bag,
	}

	lx := lexer.New(file)
	decls, err := parser.ParseFile(file, lx, parser.Options{Reporter: reporter})
	for i := range decls {
		decls[i].Body = normalize.Body(decls[i].Kind, decls[i].Body)
		result.KindCounts[decls[i].Kind]++
	}
	result.Decls = decls
	if err != nil {
		return result, err
	}

	nodes := make([]deriv.Node, 0, len(decls))
	for _, decl := range decls {
		nodes = append(nodes, deriv.Node{
			Name:    deriv.CanonicalName(decl.Name),
			Kind:    decl.Kind,
			Span:    decl.Span,
			Parents: deriv.Parents(decl.Body),
		})
	}
	idx := deriv.BuildIndex(nodes)
	graph, slots := deriv.BuildGraph(idx, nodes, reporter)
	topo := deriv.ToposortKahn(graph)
	deriv.ReportCycles(idx, slots, topo, reporter)

	return result, nil
}
