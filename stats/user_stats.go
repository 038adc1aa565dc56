package stats

import (
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/business/statsreport"
	"bikeshare/domain/entities/trip"
)

// UserStats trips per user type, most frequent first. Trips without user type are not counted.
func UserStats(table trip.Table) (statsreport.UserStats, error) {
	if err := checkNotEmpty(table, "UserStats"); err != nil {
		return statsreport.UserStats{}, err
	}

	userTypes := frequencycounter.NewOrderedCounter[string]()
	for idx := 0; idx < table.Len(); idx++ {
		if userType := table.Trip(idx).UserType; userType != "" {
			userTypes.UpdateCounter(userType)
		}
	}

	return statsreport.UserStats{UserTypes: toCategoryCounts(userTypes)}, nil
}

// DemographicStats trips per gender and birth year stats. Riders without gender or birth year
// are left out of the corresponding stat. BirthYears is nil if no rider has a birth year.
func DemographicStats(table trip.DemographicTable) (statsreport.DemographicStats, error) {
	if err := checkNotEmpty(table, "DemographicStats"); err != nil {
		return statsreport.DemographicStats{}, err
	}

	genders := frequencycounter.NewOrderedCounter[string]()
	birthYears := frequencycounter.NewOrderedCounter[int]()
	var earliest, mostRecent int
	for idx := 0; idx < table.Len(); idx++ {
		rider := table.Rider(idx)
		if rider.Gender != "" {
			genders.UpdateCounter(rider.Gender)
		}

		if !rider.HasBirthYear {
			continue
		}
		if birthYears.Len() == 0 || rider.BirthYear < earliest {
			earliest = rider.BirthYear
		}
		if birthYears.Len() == 0 || rider.BirthYear > mostRecent {
			mostRecent = rider.BirthYear
		}
		birthYears.UpdateCounter(rider.BirthYear)
	}

	demographicStats := statsreport.DemographicStats{Genders: toCategoryCounts(genders)}
	if mostCommon, _, ok := birthYears.Mode(); ok {
		demographicStats.BirthYears = &statsreport.BirthYearStats{
			Earliest:   earliest,
			MostRecent: mostRecent,
			MostCommon: mostCommon,
		}
	}
	return demographicStats, nil
}
