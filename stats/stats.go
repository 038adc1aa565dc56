// Package stats computes the descriptive statistics of a trip table. Every function is pure
// and fails with ErrEmptyDataset when the table has no trips.
//
// When several values share the highest frequency the smallest one is reported: months and
// hours compare numerically, days go from Monday to Sunday and names compare
// lexicographically.
package stats

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/business/statsreport"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/filter"
)

const engineType = "stats-engine"

func getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", engineType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", engineType, method, message)
}

func checkNotEmpty(table trip.Table, method string) error {
	if table.Len() == 0 {
		return fmt.Errorf("%s over %s: %w", method, table.Source(), dataErrors.ErrEmptyDataset)
	}
	return nil
}

// mondayFirst orders weekdays from Monday to Sunday
func mondayFirst(a, b time.Weekday) bool {
	return (a+6)%7 < (b+6)%7
}

func toCategoryCounts(counter *frequencycounter.Counter[string]) []statsreport.CategoryCount {
	entries := counter.Entries()
	categoryCounts := make([]statsreport.CategoryCount, 0, len(entries))
	for _, entry := range entries {
		categoryCounts = append(categoryCounts, statsreport.CategoryCount{Name: entry.Value, Count: entry.Count})
	}
	return categoryCounts
}

// BuildReport computes every statistic of table. Demographic stats are only computed when
// table carries them.
func BuildReport(city string, table trip.Table, spec filter.Spec) (*statsreport.StatsReport, error) {
	if err := checkNotEmpty(table, "BuildReport"); err != nil {
		log.Debug(getLogMessage("BuildReport", "nothing to report", err))
		return nil, err
	}

	report := statsreport.NewStatsReport(city, engineType, spec.String())
	report.Trips = table.Len()
	report.Skipped = table.Skipped()

	var err error
	if report.Time, err = TimeStats(table); err != nil {
		return nil, err
	}
	if report.Stations, err = StationStats(table); err != nil {
		return nil, err
	}
	if report.Duration, err = DurationStats(table); err != nil {
		return nil, err
	}
	if report.Users, err = UserStats(table); err != nil {
		return nil, err
	}

	if demographicTable, ok := table.(trip.DemographicTable); ok {
		demographics, err := DemographicStats(demographicTable)
		if err != nil {
			return nil, err
		}
		report.Demographics = &demographics
	}

	log.Debug(getLogMessage("BuildReport", fmt.Sprintf("report built for %s (%s): %v trips", city, spec, report.Trips), nil))
	return report, nil
}
