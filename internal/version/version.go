// Package version вычисляет номер сборки из метаданных, прошитых линкером.
package version

import (
	"fmt"
	"time"
)

// Заполняются через -ldflags при сборке
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

// Точка отсчета нумерации сборок
var epoch = time.Date(2003, time.July, 15, 0, 0, 0, 0, time.UTC)

// BuildInfo - метаданные сборки в структурированном виде
// (отдается как есть эндпоинтом /version).
type BuildInfo struct {
	BuildID    int
	BuildDate  string
	Commit     string
	Branch     string
	CI         string
	Calculated bool
	Error      string
}

// BuildNumber возвращает порядковый номер сборки: число полных суток
// между точкой отсчета и датой сборки.
func BuildNumber() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(epoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", BuildDate)
	}

	// Считаем в часах: обе даты в UTC, переходов на летнее время нет
	return int(t.Sub(epoch).Hours() / 24), nil
}

// Info собирает метаданные сборки. Безопасна в любой момент:
// непрошитая или кривая дата дает Calculated=false, а не панику.
func Info() BuildInfo {
	info := BuildInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
		CI:        BuildCI,
	}

	id, err := BuildNumber()
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// String - человекочитаемая строка сборки для лога старта
func String() string {
	info := Info()

	if !info.Calculated {
		return fmt.Sprintf("Build unknown (%s)", info.Error)
	}

	return fmt.Sprintf(
		"Build %d (%s) commit[%s] branch[%s] ci[%s]",
		info.BuildID,
		info.BuildDate,
		orElse(info.Commit, "unknown"),
		orElse(info.Branch, "unknown"),
		orElse(info.CI, "local"),
	)
}

func orElse(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
