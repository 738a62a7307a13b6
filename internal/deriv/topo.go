package deriv

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// Topo — результат топологической сортировки графа наследования.
type Topo struct {
	Order   []DeclID   // линейный порядок (только объявленные узлы)
	Batches [][]DeclID // поколения: волна i зависит только от волн < i
	Cyclic  bool
	Cycles  []DeclID // узлы, оставшиеся в цикле
}

// ToposortKahn сортирует объявленные узлы алгоритмом Кана. Узлы, не
// вышедшие из очереди, образуют цикл и попадают в Cycles.
func ToposortKahn(g Graph) *Topo {
	nodeCount := len(g.Edges)
	indeg := make([]int, len(g.Indeg))
	copy(indeg, g.Indeg)

	topo := &Topo{
		Order:   make([]DeclID, 0, nodeCount),
		Batches: make([][]DeclID, 0),
	}

	active := 0
	for i := 0; i < nodeCount; i++ {
		if g.Present[i] {
			active++
		}
	}

	current := make([]DeclID, 0, nodeCount)
	for i := 0; i < nodeCount; i++ {
		if !g.Present[i] {
			continue
		}
		if indeg[i] == 0 {
			id, err := safecast.Conv[DeclID, int](i)
			if err != nil {
				panic(fmt.Errorf("decl id overflow: %w", err))
			}
			current = append(current, id)
		}
	}
	slices.Sort(current)

	visited := 0
	for len(current) > 0 {
		batch := make([]DeclID, len(current))
		copy(batch, current)
		topo.Batches = append(topo.Batches, batch)

		next := make([]DeclID, 0)
		for _, id := range batch {
			topo.Order = append(topo.Order, id)
			visited++
			for _, parent := range g.Edges[int(id)] {
				if !g.Present[int(parent)] {
					continue
				}
				indeg[int(parent)]--
				if indeg[int(parent)] == 0 {
					next = append(next, parent)
				}
			}
		}
		slices.Sort(next)
		current = next
	}

	if visited != active {
		topo.Cyclic = true
		for i := 0; i < nodeCount; i++ {
			if !g.Present[i] {
				continue
			}
			if indeg[i] > 0 {
				id, err := safecast.Conv[DeclID, int](i)
				if err != nil {
					panic(fmt.Errorf("decl id overflow: %w", err))
				}
				topo.Cycles = append(topo.Cycles, id)
			}
		}
		slices.Sort(topo.Cycles)
	}

	return topo
}
