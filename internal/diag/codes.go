package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Синтаксис / извлечение деклараций
	SynInfo Code = 2000
	// SynUnterminatedBlock: '{' без парной '}' до конца файла. Фатально для
	// файла: позиция сканера после этого недостоверна.
	SynUnterminatedBlock Code = 2001
	// SynMalformedBraceCall: brace matcher вызван не на '{'. Нарушение
	// внутреннего контракта сканера, не runtime-состояние.
	SynMalformedBraceCall Code = 2002
	// SynEmptyDeclName: ключевое слово декларации без имени перед '{'.
	SynEmptyDeclName Code = 2003

	// Онтология: связи между декларациями (derives from)
	OntInfo Code = 3000
	// OntDuplicateDecl: два объявления с одним именем в одном файле.
	OntDuplicateDecl Code = 3001
	// OntMissingParent: derives from ссылается на имя, которого нет в файле.
	// Warning: родитель может жить в другом модуле.
	OntMissingParent Code = 3002
	// OntSelfDerivation: декларация derives from самой себя.
	OntSelfDerivation Code = 3003
	// OntDerivationCycle: цикл в графе derives from.
	OntDerivationCycle Code = 3004

	// Ошибки I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Проект / модули / кеш
	PrjInfo          Code = 5000
	PrjMissingModule Code = 5001
	PrjCacheError    Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	SynInfo:               "Syntax information",
	SynUnterminatedBlock:  "Unterminated brace block",
	SynMalformedBraceCall: "Brace matching started at a non-brace offset",
	SynEmptyDeclName:      "Declaration header without a name",
	OntInfo:               "Ontology information",
	OntDuplicateDecl:      "Duplicate declaration name",
	OntMissingParent:      "Derivation parent not declared in this file",
	OntSelfDerivation:     "Declaration derives from itself",
	OntDerivationCycle:    "Cycle in the derivation graph",
	IOLoadFileError:       "Failed to load file",
	IOWriteFileError:      "Failed to write file",
	PrjInfo:               "Project information",
	PrjMissingModule:      "Module source file not found",
	PrjCacheError:         "Split cache error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("ONT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
