package filter

import (
	"fmt"
	"strings"
	"time"

	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

const noFilter = "all"

var (
	noFilterValues = []string{"", noFilter, "none"}

	dayAbbreviations = map[string]time.Weekday{
		"m":  time.Monday,
		"tu": time.Tuesday,
		"w":  time.Wednesday,
		"th": time.Thursday,
		"f":  time.Friday,
		"sa": time.Saturday,
		"su": time.Sunday,
	}
)

// Spec optional month and day of week a trip must match. The zero value matches every trip.
// + Month: 0 means any month
// + Weekday: nil means any day
type Spec struct {
	Month   time.Month
	Weekday *time.Weekday
}

// NewSpec parses month and day names. "all", "none" and "" leave the selector unset.
// Days also accept the abbreviations M, Tu, W, Th, F, Sa and Su.
func NewSpec(month string, day string) (Spec, error) {
	var spec Spec

	parsedMonth, err := ParseMonth(month)
	if err != nil {
		return Spec{}, err
	}
	spec.Month = parsedMonth

	if utils.ContainsString(utils.NormalizeInput(day), noFilterValues) {
		return spec, nil
	}

	weekday, err := ParseWeekday(day)
	if err != nil {
		return Spec{}, err
	}
	spec.Weekday = &weekday
	return spec, nil
}

// ParseMonth returns 0 for "all", "none" and ""
func ParseMonth(month string) (time.Month, error) {
	normalized := utils.NormalizeInput(month)
	if utils.ContainsString(normalized, noFilterValues) {
		return 0, nil
	}

	for m := time.January; m <= time.December; m++ {
		if strings.ToLower(m.String()) == normalized {
			return m, nil
		}
	}
	return 0, fmt.Errorf("month %q: %w", month, dataErrors.ErrInvalidFilter)
}

func ParseWeekday(day string) (time.Weekday, error) {
	normalized := utils.NormalizeInput(day)
	if weekday, ok := dayAbbreviations[normalized]; ok {
		return weekday, nil
	}

	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == normalized {
			return d, nil
		}
	}
	return 0, fmt.Errorf("day %q: %w", day, dataErrors.ErrInvalidFilter)
}

// WithMonth returns a copy of the spec restricted to month
func (s Spec) WithMonth(month time.Month) Spec {
	s.Month = month
	return s
}

// WithWeekday returns a copy of the spec restricted to weekday
func (s Spec) WithWeekday(weekday time.Weekday) Spec {
	s.Weekday = &weekday
	return s
}

// Matches true if tripData satisfies every selector set in the spec
func (s Spec) Matches(tripData trip.TripData) bool {
	if s.Month != 0 && tripData.Month != s.Month {
		return false
	}
	if s.Weekday != nil && tripData.DayOfWeek != *s.Weekday {
		return false
	}
	return true
}

// String e.g. "month: March, day: all"
func (s Spec) String() string {
	month := noFilter
	if s.Month != 0 {
		month = s.Month.String()
	}

	day := noFilter
	if s.Weekday != nil {
		day = s.Weekday.String()
	}
	return fmt.Sprintf("month: %s, day: %s", month, day)
}

// Apply returns a new table with the trips of table that match spec, in the same order.
// The result keeps the kind of table (with or without demographics) and shares no state with it.
func Apply(table trip.Table, spec Spec) trip.Table {
	return table.Select(spec.Matches)
}
