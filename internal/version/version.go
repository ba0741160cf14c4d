package version

import (
	"fmt"
	"time"
)

// Заполняются при сборке через ldflags, например:
//
//	-X github.com/rpruizc/rustoguelike/internal/version.BuildDate=2026-08-23
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

// Эпоха проекта. Номер сборки - число полных суток от неё до BuildDate.
var buildEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// VersionInfo - метаданные сборки в структурном виде, отдаются /version.
type VersionInfo struct {
	BuildID    int    `json:"buildId"`
	BuildDate  string `json:"buildDate"`
	Commit     string `json:"commit"`
	Branch     string `json:"branch"`
	CI         string `json:"ci"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// CalculateBuildID возвращает номер сборки по BuildDate.
// Локальные сборки без ldflags дают ошибку, это штатно.
func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before project epoch", BuildDate)
	}

	// Обе даты в UTC, в сутках ровно 24 часа
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info собирает метаданные сборки. Безопасна в любой момент.
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

// String возвращает однострочное описание сборки для логов при старте.
func String() string {
	info := Info()
	if !info.Calculated {
		return fmt.Sprintf("rustoguelike dev build (%s)", info.Error)
	}
	return fmt.Sprintf(
		"rustoguelike build %d (%s) commit[%s] branch[%s] ci[%s]",
		info.BuildID,
		info.BuildDate,
		orDefault(info.Commit, "unknown"),
		orDefault(info.Branch, "unknown"),
		orDefault(info.CI, "local"),
	)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
