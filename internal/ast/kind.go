package ast

import "github.com/univrs/metadol/internal/token"

// Kind перечисляет четыре вида деклараций DOL. Набор фиксирован: сканер
// никогда не производит декларацию другого вида.
type Kind uint8

const (
	// KindGene is a gene declaration.
	KindGene Kind = iota
	// KindTrait is a trait declaration.
	KindTrait
	// KindConstraint is a constraint declaration.
	KindConstraint
	// KindSystem is a system declaration.
	KindSystem
)

// Явная таблица вид → имя директории. Не конкатенация "kind"+"s": если у
// какого-то вида множественное число окажется нерегулярным, ломаться должна
// таблица, а не вывод.
var kindDirs = [...]string{
	KindGene:       "genes",
	KindTrait:      "traits",
	KindConstraint: "constraints",
	KindSystem:     "systems",
}

var kindNames = [...]string{
	KindGene:       "gene",
	KindTrait:      "trait",
	KindConstraint: "constraint",
	KindSystem:     "system",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Dir returns the plural output directory name for the kind.
func (k Kind) Dir() string {
	if int(k) < len(kindDirs) {
		return kindDirs[k]
	}
	return "unknown"
}

// Kinds returns all declaration kinds in canonical order.
func Kinds() []Kind {
	return []Kind{KindGene, KindTrait, KindConstraint, KindSystem}
}

// KindOfToken maps a declaration keyword token kind to a Kind.
func KindOfToken(k token.Kind) (Kind, bool) {
	switch k {
	case token.KwGene:
		return KindGene, true
	case token.KwTrait:
		return KindTrait, true
	case token.KwConstraint:
		return KindConstraint, true
	case token.KwSystem:
		return KindSystem, true
	default:
		return 0, false
	}
}
