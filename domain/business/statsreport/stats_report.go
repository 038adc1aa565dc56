package statsreport

import (
	"time"

	"bikeshare/domain/entities"
)

const reportType = "stats-report"

// StatsReport aggregates computed over a filtered trip table
// + Metadata: metadata added to the structure
// + Filter: description of the filter used to build the table
// + Trips: amount of trips analyzed
// + Skipped: rows dropped while loading the source
// + Demographics: nil when the source has no gender and birth year columns
type StatsReport struct {
	Metadata     entities.Metadata `json:"metadata"`
	Filter       string            `json:"filter"`
	Trips        int               `json:"trips"`
	Skipped      int               `json:"skipped"`
	Time         TimeStats         `json:"time"`
	Stations     StationStats      `json:"stations"`
	Duration     DurationStats     `json:"duration"`
	Users        UserStats         `json:"users"`
	Demographics *DemographicStats `json:"demographics,omitempty"`
}

func NewStatsReport(city string, stage string, filter string) *StatsReport {
	return &StatsReport{
		Metadata: entities.NewMetadata(city, reportType, stage, filter),
		Filter:   filter,
	}
}

func (sr *StatsReport) GetMetadata() entities.Metadata {
	return sr.Metadata
}

// HasDemographics true if the report carries gender and birth year stats
func (sr *StatsReport) HasDemographics() bool {
	return sr.Demographics != nil
}

// TimeStats most frequent times of travel
type TimeStats struct {
	Month      time.Month   `json:"month"`
	MonthCount int          `json:"month_count"`
	Day        time.Weekday `json:"day"`
	DayCount   int          `json:"day_count"`
	Hour       int          `json:"hour"`
	HourCount  int          `json:"hour_count"`
}

// StationStats most popular stations and route. A field is empty when no trip had a value for it.
type StationStats struct {
	StartStation      string `json:"start_station"`
	StartStationCount int    `json:"start_station_count"`
	EndStation        string `json:"end_station"`
	EndStationCount   int    `json:"end_station_count"`
	Route             string `json:"route"`
	RouteCount        int    `json:"route_count"`
}

// DurationStats total and mean trip duration, both in seconds
type DurationStats struct {
	TotalSeconds float64 `json:"total_seconds"`
	MeanSeconds  float64 `json:"mean_seconds"`
}

func (ds DurationStats) Total() Breakdown {
	return NewBreakdown(ds.TotalSeconds)
}

func (ds DurationStats) Mean() MeanDuration {
	return NewMeanDuration(ds.MeanSeconds)
}

// CategoryCount amount of trips for a given category value
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// UserStats trips per user type, most frequent first
type UserStats struct {
	UserTypes []CategoryCount `json:"user_types"`
}

// DemographicStats gender breakdown and birth year stats
// + BirthYears: nil when no trip has a birth year
type DemographicStats struct {
	Genders    []CategoryCount `json:"genders"`
	BirthYears *BirthYearStats `json:"birth_years,omitempty"`
}

// BirthYearStats earliest, most recent and most common year of birth
type BirthYearStats struct {
	Earliest   int `json:"earliest"`
	MostRecent int `json:"most_recent"`
	MostCommon int `json:"most_common"`
}
