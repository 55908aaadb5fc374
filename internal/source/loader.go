package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/luispabloln/control-biometrico/internal/config"
	"github.com/luispabloln/control-biometrico/internal/models"
	"github.com/luispabloln/control-biometrico/internal/parser"
)

// Snapshot is one fully loaded dataset. It is immutable once built; a
// reload produces a new snapshot rather than patching the current one.
type Snapshot struct {
	ID        uuid.UUID
	LoadedAt  time.Time
	Employees []models.Employee
	Areas     []string
	Events    []models.AttendanceEvent
	Months    []string // newest first
	Holidays  models.HolidaySet
}

// DefaultMonth is the most recent month with any recognized event.
func (s *Snapshot) DefaultMonth() string {
	if len(s.Months) == 0 {
		return ""
	}
	return s.Months[0]
}

// Loader fetches the three source blobs. Each source is a local file
// path or an http(s) URL.
type Loader struct {
	roster   string
	logs     string
	holidays string
	timeout  time.Duration
	client   *http.Client
}

func NewLoader(cfg config.Config) *Loader {
	return &Loader{
		roster:   cfg.RosterSource,
		logs:     cfg.LogsSource,
		holidays: cfg.HolidaysSource,
		timeout:  cfg.SourceTimeout,
		client:   &http.Client{Timeout: cfg.SourceTimeout},
	}
}

// Load fetches all three sources concurrently and parses them into a
// snapshot. The fetches join before any parsing: if any source fails
// the whole load fails and no partial snapshot is produced.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	var rosterText, logText, holidayText string
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rosterText, err = l.fetch(ctx, l.roster)
		return err
	})
	g.Go(func() (err error) {
		logText, err = l.fetch(ctx, l.logs)
		return err
	})
	g.Go(func() (err error) {
		holidayText, err = l.fetch(ctx, l.holidays)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("source data unavailable: %w", err)
	}

	employees, areas := parser.ParseRoster(rosterText)
	events, months := parser.ExtractEvents(logText)

	return &Snapshot{
		ID:        uuid.New(),
		LoadedAt:  time.Now(),
		Employees: employees,
		Areas:     areas,
		Events:    events,
		Months:    months,
		Holidays:  parser.ParseHolidays(holidayText),
	}, nil
}

func (l *Loader) fetch(ctx context.Context, location string) (string, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
		if err != nil {
			return "", err
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("fetch %s: status %d", location, resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		return string(body), nil
	}

	body, err := os.ReadFile(location)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
