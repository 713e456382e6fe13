// Package version хранит сведения о сборке, проставляемые через -ldflags:
//
//	go build -ldflags "-X github.com/Boxfort/rustlike/internal/version.BuildDate=2026-10-15"
package version

import (
	"errors"
	"fmt"
	"time"
)

var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

// ErrNoBuildDate - бинарник собран без -ldflags
var ErrNoBuildDate = errors.New("build date is not set")

// epoch - день нулевой сборки
var epoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// Info - сведения о сборке
type Info struct {
	BuildID   int
	BuildDate string
	Commit    string
	Err       error
}

// BuildID считает номер сборки: число дней от epoch до даты сборки.
func BuildID(date string) (int, error) {
	if date == "" {
		return 0, ErrNoBuildDate
	}
	t, err := time.ParseInLocation(time.DateOnly, date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(epoch) {
		return 0, fmt.Errorf("build date %s is before %s", date, epoch.Format(time.DateOnly))
	}
	return int(t.Sub(epoch).Hours() / 24), nil
}

// Current возвращает сведения о текущем бинарнике.
func Current() Info {
	id, err := BuildID(BuildDate)
	return Info{BuildID: id, BuildDate: BuildDate, Commit: BuildCommit, Err: err}
}

func (i Info) String() string {
	commit := i.Commit
	if commit == "" {
		commit = "unknown"
	}
	if i.Err != nil {
		return fmt.Sprintf("rustlike dev build commit[%s]", commit)
	}
	return fmt.Sprintf("rustlike build %d (%s) commit[%s]", i.BuildID, i.BuildDate, commit)
}
