package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/univrs/metadol/internal/diag"
	"github.com/univrs/metadol/internal/emit"
	"github.com/univrs/metadol/internal/source"
)

// ModuleResult содержит итог обработки одного модуля.
type ModuleResult struct {
	Module  string
	Input   string    // путь к <module>.dol
	Created []string  // относительные пути под выходной директорией модуля
	Missing bool      // входного файла нет — модуль молча пропущен
	Cached  bool      // результат взят из кеша
	Err     error     // ошибка извлечения/записи; nil при успехе
	Bag     *diag.Bag // диагностики модуля, включая диагностики сплита файла
	// FileSet нужен вызывающему для резолва спанов из Bag.
	FileSet *source.FileSet
}

// Count returns the number of declaration files for the module.
func (r ModuleResult) Count() int { return len(r.Created) }

// SplitOptions настраивает разрезание набора модулей.
type SplitOptions struct {
	// Dir — директория с входными <module>.dol.
	Dir string
	// Out — корень вывода; модуль пишется в <Out>/<module>/...
	Out string
	// Jobs ограничивает число параллельных модулей; <=0 — GOMAXPROCS.
	Jobs int
	// MaxDiagnostics — лимит диагностик на модуль.
	MaxDiagnostics int
	// Cache — опциональный дисковый кеш; nil отключает кеширование.
	Cache *DiskCache
	// Events — опциональный канал прогресса; закрывается по завершении.
	Events chan<- Event
}

// SplitModules режет каждый модуль из списка независимо: модули не делят
// никакого состояния и обрабатываются параллельно под errgroup. Результаты
// возвращаются в порядке входного списка. Отсутствующий входной файл — не
// ошибка: модуль пропускается, остальные продолжаются. Ошибка извлечения
// фатальна только для своего модуля.
func SplitModules(ctx context.Context, modules []string, opts SplitOptions) ([]ModuleResult, error) {
	if opts.Events != nil {
		defer close(opts.Events)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]ModuleResult, len(modules))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(modules), 1)))

	for i, module := range modules {
		i, module := i, module
		opts.emit(Event{Module: module, Status: StatusQueued})
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			opts.emit(Event{Module: module, Status: StatusWorking})
			results[i] = splitModule(module, opts)

			switch r := results[i]; {
			case r.Err != nil:
				opts.emit(Event{Module: module, Status: StatusError})
			case r.Missing:
				opts.emit(Event{Module: module, Status: StatusSkipped})
			case r.Cached:
				opts.emit(Event{Module: module, Status: StatusCached, Count: r.Count()})
			default:
				opts.emit(Event{Module: module, Status: StatusDone, Count: r.Count()})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (o SplitOptions) emit(ev Event) {
	if o.Events != nil {
		o.Events <- ev
	}
}

// splitModule обрабатывает один модуль от начала до конца с локальным
// курсором и собственным FileSet. Bag создаётся сразу: даже пропущенный
// модуль оставляет след в диагностиках.
func splitModule(module string, opts SplitOptions) ModuleResult {
	fileSet := source.NewFileSetWithBase(opts.Dir)
	input := filepath.Join(fileSet.BaseDir(), module+".dol")
	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	result := ModuleResult{Module: module, Input: input, Bag: bag, FileSet: fileSet}

	if _, err := os.Stat(input); errors.Is(err, os.ErrNotExist) {
		diag.ReportInfo(reporter, diag.PrjMissingModule, source.Span{},
			"module source "+module+".dol not found, skipping")
		result.Missing = true
		return result
	}

	id, err := fileSet.Load(input)
	if err != nil {
		diag.ReportError(reporter, diag.IOLoadFileError, source.Span{},
			fmt.Sprintf("failed to load %s: %v", input, err))
		result.Err = err
		return result
	}

	outDir := filepath.Join(opts.Out, module)
	key := fileSet.Get(id).Hash

	// Кеш: неизменившийся вход, чей вывод цел, не режем заново.
	if opts.Cache != nil {
		var payload SplitPayload
		ok, cacheErr := opts.Cache.Get(key, &payload)
		if cacheErr != nil {
			// битая запись кеша не мешает сплиту
			reporter.Report(diag.PrjCacheError, diag.SevWarning, source.Span{},
				fmt.Sprintf("cache read failed: %v", cacheErr), nil)
		} else if ok && payload.Module == module && outputsIntact(outDir, payload.Created) {
			diag.ReportInfo(reporter, diag.PrjInfo, source.Span{},
				"split output reused from cache")
			result.Created = payload.Created
			result.Cached = true
			return result
		}
	}

	fileResult, err := SplitFile(fileSet, id, emit.NewDirSink(outDir), opts.MaxDiagnostics)
	bag.Merge(fileResult.Bag)
	result.Created = fileResult.Created
	if err != nil {
		result.Err = err
		return result
	}

	if opts.Cache != nil {
		payload := SplitPayload{
			Schema:  splitCacheSchemaVersion,
			Module:  module,
			Created: fileResult.Created,
		}
		// Промах записи в кеш не портит успешный сплит.
		if putErr := opts.Cache.Put(key, &payload); putErr != nil {
			reporter.Report(diag.PrjCacheError, diag.SevWarning, source.Span{},
				fmt.Sprintf("cache write failed: %v", putErr), nil)
		}
	}
	return result
}

func outputsIntact(outDir string, created []string) bool {
	for _, rel := range created {
		if _, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(rel))); err != nil {
			return false
		}
	}
	return true
}
