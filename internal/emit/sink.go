package emit

import (
	"os"
	"path/filepath"

	"github.com/univrs/metadol/internal/ast"
)

// Sink принимает готовые канонические файлы деклараций. Ядро сплиттера не
// знает про файловую систему: создание директорий и запись живут только за
// этим интерфейсом.
type Sink interface {
	Emit(kind ast.Kind, relPath string, content []byte) error
}

// DirSink пишет декларации под корневую директорию, создавая
// поддиректории видов по мере необходимости.
type DirSink struct {
	Root string
}

func NewDirSink(root string) *DirSink {
	return &DirSink{Root: root}
}

func (s *DirSink) Emit(_ ast.Kind, relPath string, content []byte) error {
	target := filepath.Join(s.Root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, content, 0o644)
}

// MemSink копит декларации в памяти; для check и тестов.
type MemSink struct {
	Paths []string
	Kinds []ast.Kind // вид i-й декларации, параллелен Paths
	Files map[string][]byte
}

func NewMemSink() *MemSink {
	return &MemSink{Files: make(map[string][]byte)}
}

func (s *MemSink) Emit(kind ast.Kind, relPath string, content []byte) error {
	if _, dup := s.Files[relPath]; !dup {
		s.Paths = append(s.Paths, relPath)
		s.Kinds = append(s.Kinds, kind)
	}
	s.Files[relPath] = content
	return nil
}
