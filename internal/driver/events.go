package driver

// Status описывает состояние обработки одного модуля.
type Status uint8

const (
	// StatusQueued — модуль ждёт воркера.
	StatusQueued Status = iota
	// StatusWorking — модуль режется прямо сейчас.
	StatusWorking
	// StatusDone — модуль разрезан.
	StatusDone
	// StatusCached — результат взят из кеша без повторного разрезания.
	StatusCached
	// StatusSkipped — входной файл модуля отсутствует.
	StatusSkipped
	// StatusError — извлечение или запись упали.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusWorking:
		return "splitting"
	case StatusDone:
		return "done"
	case StatusCached:
		return "cached"
	case StatusSkipped:
		return "skipped"
	case StatusError:
		return "error"
	}
	return ""
}

// Event — прогресс обработки для внешнего наблюдателя (TUI или plain
// printer). События одного модуля приходят в порядке смены статусов.
type Event struct {
	Module string
	Status Status
	// Count — число созданных деклараций; заполнен для Done/Cached.
	Count int
}
