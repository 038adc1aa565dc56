package trip

import "time"

// TimestampLayout layout used by every city dataset for Start Time and End Time
const TimestampLayout = "2006-01-02 15:04:05"

// TripData struct that contains the trip data
// + StartTime: timestamp in which the trip begins
// + EndTime: timestamp in which the trip ends
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: rider category, e.g. Subscriber or Customer. Empty when the dataset has no value
// + Month, DayOfWeek, Hour: derived from StartTime once, at load time
type TripData struct {
	StartTime    time.Time    `json:"start_time"`
	EndTime      time.Time    `json:"end_time"`
	StartStation string       `json:"start_station"`
	EndStation   string       `json:"end_station"`
	Duration     float64      `json:"duration"`
	UserType     string       `json:"user_type"`
	Month        time.Month   `json:"month"`
	DayOfWeek    time.Weekday `json:"day_of_week"`
	Hour         int          `json:"hour"`
}

// NewTripData builds a TripData and derives the month, day of week and hour from startTime
func NewTripData(startTime time.Time, endTime time.Time, startStation string, endStation string, duration float64, userType string) TripData {
	return TripData{
		StartTime:    startTime,
		EndTime:      endTime,
		StartStation: startStation,
		EndStation:   endStation,
		Duration:     duration,
		UserType:     userType,
		Month:        startTime.Month(),
		DayOfWeek:    startTime.Weekday(),
		Hour:         startTime.Hour(),
	}
}

// RiderData demographic fields. Only some cities publish them.
// + Gender: empty when the rider did not report it
// + BirthYear: only meaningful when HasBirthYear is true
type RiderData struct {
	Gender       string `json:"gender"`
	BirthYear    int    `json:"birth_year"`
	HasBirthYear bool   `json:"has_birth_year"`
}

// Row a trip as shown to the user. Rider is nil for tables without demographics.
type Row struct {
	TripData
	Rider *RiderData `json:"rider,omitempty"`
}
