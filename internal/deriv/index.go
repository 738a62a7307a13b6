// Package deriv строит граф наследования деклараций по связям
// `derives from` и проверяет его на дубликаты, висячие ссылки и циклы.
package deriv

import "sort"

// DeclID — плотный индекс имени в графе (декларации и их родители).
type DeclID uint32

// Index сопоставляет имена деклараций плотным ID.
type Index struct {
	NameToID map[string]DeclID
	IDToName []string
}

// BuildIndex собирает уникальные имена (декларации плюс все упомянутые
// родители), сортирует их и раздаёт ID по порядку. Родитель без
// собственной декларации тоже получает ID — граф различает "упомянут"
// и "объявлен" через Present.
func BuildIndex(nodes []Node) Index {
	uniq := make(map[string]struct{}, len(nodes))
	for _, node := range nodes {
		if node.Name != "" {
			uniq[node.Name] = struct{}{}
		}
		for _, parent := range node.Parents {
			if parent != "" {
				uniq[parent] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(uniq))
	for name := range uniq {
		names = append(names, name)
	}
	sort.Strings(names)

	nameToID := make(map[string]DeclID, len(names))
	for i, name := range names {
		nameToID[name] = DeclID(i)
	}

	return Index{
		NameToID: nameToID,
		IDToName: names,
	}
}
