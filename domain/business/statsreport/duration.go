package statsreport

import (
	"fmt"
	"math"
	"strconv"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Breakdown total elapsed time split in days, hours, minutes and seconds.
// Seconds keeps the fractional part of the original total.
type Breakdown struct {
	Days    int64   `json:"days"`
	Hours   int64   `json:"hours"`
	Minutes int64   `json:"minutes"`
	Seconds float64 `json:"seconds"`
}

func NewBreakdown(totalSeconds float64) Breakdown {
	whole := math.Floor(totalSeconds)
	fraction := totalSeconds - whole
	remaining := int64(whole)

	days := remaining / secondsPerDay
	remaining %= secondsPerDay
	hours := remaining / secondsPerHour
	remaining %= secondsPerHour
	minutes := remaining / secondsPerMinute
	remaining %= secondsPerMinute

	return Breakdown{
		Days:    days,
		Hours:   hours,
		Minutes: minutes,
		Seconds: float64(remaining) + fraction,
	}
}

func (b Breakdown) TotalSeconds() float64 {
	return float64(b.Days*secondsPerDay+b.Hours*secondsPerHour+b.Minutes*secondsPerMinute) + b.Seconds
}

// String e.g. "1 day, 2 hours, 0 minutes and 5 seconds"
func (b Breakdown) String() string {
	seconds := strconv.FormatFloat(b.Seconds, 'f', -1, 64)
	return fmt.Sprintf("%s, %s, %s and %s %s",
		plural(b.Days, "day"),
		plural(b.Hours, "hour"),
		plural(b.Minutes, "minute"),
		seconds, unit(b.Seconds == 1, "second"),
	)
}

// MeanDuration average duration truncated to whole minutes and seconds
type MeanDuration struct {
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

func NewMeanDuration(meanSeconds float64) MeanDuration {
	whole := int64(meanSeconds)
	return MeanDuration{
		Minutes: whole / secondsPerMinute,
		Seconds: whole % secondsPerMinute,
	}
}

// String e.g. "1 minute and 2 seconds"
func (md MeanDuration) String() string {
	return fmt.Sprintf("%s and %s", plural(md.Minutes, "minute"), plural(md.Seconds, "second"))
}

func plural(amount int64, name string) string {
	return fmt.Sprintf("%d %s", amount, unit(amount == 1, name))
}

func unit(singular bool, name string) string {
	if singular {
		return name
	}
	return name + "s"
}
