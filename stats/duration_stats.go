package stats

import (
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/statsreport"
	"bikeshare/domain/entities/trip"
)

// DurationStats total and mean trip duration
func DurationStats(table trip.Table) (statsreport.DurationStats, error) {
	if err := checkNotEmpty(table, "DurationStats"); err != nil {
		return statsreport.DurationStats{}, err
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	for idx := 0; idx < table.Len(); idx++ {
		accumulator.UpdateAccumulator(table.Trip(idx).Duration)
	}

	return statsreport.DurationStats{
		TotalSeconds: accumulator.TotalDuration,
		MeanSeconds:  accumulator.GetAverageDuration(),
	}, nil
}
