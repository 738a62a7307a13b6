package project

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Manifest описывает metadol.toml проекта.
type Manifest struct {
	Split SplitConfig `toml:"split"`
}

// SplitConfig — секция [split]: какие модули резать и куда класть результат.
type SplitConfig struct {
	// Out — корневая директория вывода; по умолчанию директория манифеста.
	Out string `toml:"out"`
	// Modules — упорядоченный список имён модулей; для каждого читается
	// <module>.dol рядом с манифестом (или под Dir, если задана).
	Modules []string `toml:"modules"`
	// Dir — директория с исходными <module>.dol; по умолчанию директория
	// манифеста.
	Dir string `toml:"dir"`
}

// LoadManifest parses a metadol.toml file.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &m, nil
}
