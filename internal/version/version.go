package version

import (
	"fmt"
	"time"
)

// Заполняются линкером через -ldflags "-X ...". Пустые значения -
// локальная сборка без метаданных, это штатная ситуация.
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

// Номер сборки - число суток от эпохи проекта до даты сборки.
// Монотонно растет без ручного версионирования.
var buildEpoch = time.Date(
	2024, time.March, 1,
	0, 0, 0, 0,
	time.UTC,
)

// VersionInfo - метаданные сборки в разобранном виде (отдаются /version)
type VersionInfo struct {
	BuildID    int
	BuildDate  string
	Commit     string
	Branch     string
	CI         string
	Calculated bool
	Error      string
}

// CalculateBuildID считает номер сборки из BuildDate.
// Дата до эпохи или мусор вместо даты - ошибка, номер не выдумываем.
func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}

	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", BuildDate)
	}

	// Часы вместо суток: обе даты в UTC, перевод часов не мешает
	days := int(t.Sub(buildEpoch).Hours() / 24)
	return days, nil
}

// Info собирает метаданные сборки. Не паникует ни при каком окружении:
// битая дата превращается в Error внутри структуры.
func Info() VersionInfo {
	info := VersionInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
		CI:        BuildCI,
	}

	id, err := CalculateBuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// String - однострочник для лога при старте сервера
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
