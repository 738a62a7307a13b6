package deriv

import (
	"fmt"
	"slices"
	"strings"

	"github.com/univrs/metadol/internal/ast"
	"github.com/univrs/metadol/internal/diag"
	"github.com/univrs/metadol/internal/source"
)

// Node — одна декларация как узел графа наследования.
type Node struct {
	Name    string
	Kind    ast.Kind
	Span    source.Span
	Parents []string // имена из строк `derives from ...` тела
}

// Graph — граф derives from: ребро идёт от потомка к родителю.
type Graph struct {
	Edges   [][]DeclID // Edges[child] = []parent
	Indeg   []int      // входящие степени для Kahn (только объявленные узлы)
	Present []bool     // имя реально объявлено, а не только упомянуто
}

// Slot хранит метаданные узла по его ID после построения графа.
type Slot struct {
	Node    Node
	Present bool
}

// BuildGraph раскладывает декларации по индексу и строит рёбра
// наследования. Дубликаты имён, self-derivation и ссылки на
// необъявленных родителей уходят в reporter; граф строится по первой
// декларации каждого имени.
func BuildGraph(idx Index, nodes []Node, reporter diag.Reporter) (Graph, []Slot) {
	nodeCount := len(idx.IDToName)
	g := Graph{
		Edges:   make([][]DeclID, nodeCount),
		Indeg:   make([]int, nodeCount),
		Present: make([]bool, nodeCount),
	}
	slots := make([]Slot, nodeCount)
	for i, name := range idx.IDToName {
		slots[i].Node.Name = name
	}

	for _, node := range nodes {
		if node.Name == "" {
			continue
		}
		id, ok := idx.NameToID[node.Name]
		if !ok {
			// индекс строится на тех же узлах, сюда попасть нельзя
			continue
		}
		slot := &slots[int(id)]
		if slot.Present {
			if reporter != nil {
				notes := []diag.Note(nil)
				if slot.Node.Span != (source.Span{}) {
					notes = append(notes, diag.Note{
						Span: slot.Node.Span,
						Msg:  fmt.Sprintf("previous declaration of %q", slot.Node.Name),
					})
				}
				reporter.Report(diag.OntDuplicateDecl, diag.SevError, node.Span,
					fmt.Sprintf("duplicate declaration %q", node.Name), notes)
			}
			continue
		}
		slot.Node = node
		slot.Present = true
		g.Present[int(id)] = true
	}

	for child := range slots {
		slot := &slots[child]
		if !slot.Present || len(slot.Node.Parents) == 0 {
			continue
		}
		seen := make(map[DeclID]struct{}, len(slot.Node.Parents))
		for _, parent := range slot.Node.Parents {
			if parent == "" {
				continue
			}
			parentID, ok := idx.NameToID[parent]
			if !ok {
				continue
			}
			if DeclID(child) == parentID {
				if reporter != nil {
					reporter.Report(diag.OntSelfDerivation, diag.SevError, slot.Node.Span,
						fmt.Sprintf("declaration %q derives from itself", slot.Node.Name), nil)
				}
				continue
			}
			if _, dup := seen[parentID]; dup {
				continue
			}
			seen[parentID] = struct{}{}

			g.Edges[child] = append(g.Edges[child], parentID)
			if g.Present[int(parentID)] {
				g.Indeg[int(parentID)]++
			} else if reporter != nil {
				// родитель может жить в другом модуле, поэтому warning
				reporter.Report(diag.OntMissingParent, diag.SevWarning, slot.Node.Span,
					fmt.Sprintf("declaration %q derives from %q, which is not declared here",
						slot.Node.Name, parent), nil)
			}
		}
		if len(g.Edges[child]) > 1 {
			slices.Sort(g.Edges[child])
		}
	}

	return g, slots
}

// ReportCycles печатает по диагностике на каждую декларацию из цикла,
// с общей сводкой цепочки в сообщении.
func ReportCycles(idx Index, slots []Slot, topo *Topo, reporter diag.Reporter) {
	if reporter == nil || topo == nil || !topo.Cyclic || len(topo.Cycles) == 0 {
		return
	}
	names := make([]string, 0, len(topo.Cycles))
	for _, id := range topo.Cycles {
		names = append(names, idx.IDToName[int(id)])
	}
	summary := strings.Join(names, " -> ")

	for _, id := range topo.Cycles {
		slot := slots[int(id)]
		if !slot.Present {
			continue
		}
		reporter.Report(diag.OntDerivationCycle, diag.SevError, slot.Node.Span,
			fmt.Sprintf("declaration %q participates in a derivation cycle: %s",
				slot.Node.Name, summary), nil)
	}
}
