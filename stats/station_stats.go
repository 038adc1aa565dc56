package stats

import (
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/business/statsreport"
	"bikeshare/domain/entities/trip"
)

const routeSeparator = " to "

// Route joins both station names, e.g. "Canal St & Adams St to Michigan Ave & Oak St".
// ok is false when any of the names is missing.
func Route(startStation string, endStation string) (route string, ok bool) {
	if startStation == "" || endStation == "" {
		return "", false
	}
	return startStation + routeSeparator + endStation, true
}

// StationStats most popular start station, end station and route. Trips without a station
// name are not counted for that station nor for the route.
func StationStats(table trip.Table) (statsreport.StationStats, error) {
	if err := checkNotEmpty(table, "StationStats"); err != nil {
		return statsreport.StationStats{}, err
	}

	startStations := frequencycounter.NewOrderedCounter[string]()
	endStations := frequencycounter.NewOrderedCounter[string]()
	routes := frequencycounter.NewOrderedCounter[string]()
	for idx := 0; idx < table.Len(); idx++ {
		tripData := table.Trip(idx)
		if tripData.StartStation != "" {
			startStations.UpdateCounter(tripData.StartStation)
		}
		if tripData.EndStation != "" {
			endStations.UpdateCounter(tripData.EndStation)
		}
		if route, ok := Route(tripData.StartStation, tripData.EndStation); ok {
			routes.UpdateCounter(route)
		}
	}

	var stationStats statsreport.StationStats
	stationStats.StartStation, stationStats.StartStationCount, _ = startStations.Mode()
	stationStats.EndStation, stationStats.EndStationCount, _ = endStations.Mode()
	stationStats.Route, stationStats.RouteCount, _ = routes.Mode()
	return stationStats, nil
}
