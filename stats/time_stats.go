package stats

import (
	"time"

	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/business/statsreport"
	"bikeshare/domain/entities/trip"
)

// TimeStats most frequent month, day of week and start hour
func TimeStats(table trip.Table) (statsreport.TimeStats, error) {
	if err := checkNotEmpty(table, "TimeStats"); err != nil {
		return statsreport.TimeStats{}, err
	}

	months := frequencycounter.NewCounter[time.Month](func(a, b time.Month) bool { return a < b })
	days := frequencycounter.NewCounter[time.Weekday](mondayFirst)
	hours := frequencycounter.NewOrderedCounter[int]()
	for idx := 0; idx < table.Len(); idx++ {
		tripData := table.Trip(idx)
		months.UpdateCounter(tripData.Month)
		days.UpdateCounter(tripData.DayOfWeek)
		hours.UpdateCounter(tripData.Hour)
	}

	var timeStats statsreport.TimeStats
	timeStats.Month, timeStats.MonthCount, _ = months.Mode()
	timeStats.Day, timeStats.DayCount, _ = days.Mode()
	timeStats.Hour, timeStats.HourCount, _ = hours.Mode()
	return timeStats, nil
}
