// Package clock formats the date and time shown by the scene header for a
// fixed display timezone.
package clock

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "time/tzdata"
)

const (
	DefaultZone     = "America/New_York"
	DefaultFallback = "ET"

	dateLayout = "Mon Jan 2 2006"
	timeLayout = "3:04:05 PM"
)

var DefaultAbbrevs = []string{"EST", "EDT"}

type Formatter struct {
	loc      *time.Location
	valid    []string
	fallback string
}

// Reading is one refresh worth of header text.
type Reading struct {
	Date string
	Time string
}

// New loads zone and returns a formatter for it. valid lists the acceptable
// short zone names; when empty they are derived from the zone itself.
func New(zone string, valid []string, fallback string) (*Formatter, error) {
	if zone == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", zone, err)
	}
	if len(valid) == 0 {
		valid = zoneAbbrevs(loc, time.Now().Year())
	}
	if fallback == "" {
		fallback = DefaultFallback
		if zone != DefaultZone {
			fallback = zone
		}
	}
	return &Formatter{loc: loc, valid: valid, fallback: fallback}, nil
}

// Default returns the America/New_York formatter.
func Default() *Formatter {
	f, err := New(DefaultZone, DefaultAbbrevs, DefaultFallback)
	if err != nil {
		// tzdata is embedded, so this only happens with a corrupt binary.
		panic(err)
	}
	return f
}

func (f *Formatter) Location() *time.Location {
	if f == nil {
		return nil
	}
	return f.loc
}

// FormatDate renders "<weekday> <month> <day> <year>", e.g. "Tue Mar 5 2024".
func (f *Formatter) FormatDate(t time.Time) string {
	if f == nil || f.loc == nil {
		return ""
	}
	return strings.TrimSpace(t.In(f.loc).Format(dateLayout))
}

// FormatTime renders a 12-hour time with the zone abbreviation,
// e.g. "2:07:09 PM EST". Unknown abbreviations become the fallback label.
func (f *Formatter) FormatTime(t time.Time) string {
	if f == nil || f.loc == nil {
		return ""
	}
	local := t.In(f.loc)
	abbr, _ := local.Zone()
	if !f.isValid(abbr) {
		abbr = f.fallback
	}
	return strings.TrimSpace(local.Format(timeLayout) + " " + abbr)
}

func (f *Formatter) Read(t time.Time) Reading {
	return Reading{Date: f.FormatDate(t), Time: f.FormatTime(t)}
}

func (f *Formatter) isValid(abbr string) bool {
	for _, v := range f.valid {
		if v == abbr {
			return true
		}
	}
	return false
}

// zoneAbbrevs returns the distinct abbreviations the zone uses in January and
// July. Numeric offsets such as "-03" are not abbreviations and are skipped.
func zoneAbbrevs(loc *time.Location, year int) []string {
	var out []string
	for _, month := range []time.Month{time.January, time.July} {
		name, _ := time.Date(year, month, 1, 12, 0, 0, 0, loc).Zone()
		if name == "" || strings.ContainsAny(name[:1], "+-0123456789") {
			continue
		}
		if len(out) == 0 || out[0] != name {
			out = append(out, name)
		}
	}
	return out
}

// Schedule tells a frame-driven host when the clock text is due for a
// refresh. The first call is always due.
type Schedule struct {
	Every time.Duration
	next  time.Time
}

func NewSchedule(every time.Duration) *Schedule {
	if every <= 0 {
		every = time.Second
	}
	return &Schedule{Every: every}
}

func (s *Schedule) Due(now time.Time) bool {
	if !s.next.IsZero() && now.Before(s.next) {
		return false
	}
	s.next = now.Add(s.Every)
	return true
}

// Run calls fn immediately and then every interval until ctx is done. Calls
// happen one at a time on the calling goroutine.
func Run(ctx context.Context, every time.Duration, f *Formatter, fn func(Reading)) error {
	if every <= 0 {
		every = time.Second
	}
	fn(f.Read(time.Now()))

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			fn(f.Read(now))
		}
	}
}
