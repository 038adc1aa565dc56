package trip

// Table an immutable, ordered collection of trips loaded from a single source
type Table interface {
	// Source identifies where the trips were loaded from
	Source() string
	Len() int
	Trip(i int) TripData
	Row(i int) Row
	// Skipped amount of source rows that were dropped because they could not be parsed
	Skipped() int
	// Select returns a new table of the same kind with the trips for which keep returns true.
	// The returned table does not share mutable state with the receiver.
	Select(keep func(TripData) bool) Table
}

// DemographicTable a Table whose source also carries gender and birth year for each trip
type DemographicTable interface {
	Table
	Rider(i int) RiderData
}

// TripTable Table without demographic data
type TripTable struct {
	source  string
	trips   []TripData
	skipped int
}

func NewTripTable(source string, trips []TripData, skipped int) *TripTable {
	tripsCopy := make([]TripData, len(trips))
	copy(tripsCopy, trips)
	return &TripTable{
		source:  source,
		trips:   tripsCopy,
		skipped: skipped,
	}
}

func (tt *TripTable) Source() string {
	return tt.source
}

func (tt *TripTable) Len() int {
	return len(tt.trips)
}

func (tt *TripTable) Trip(i int) TripData {
	return tt.trips[i]
}

func (tt *TripTable) Row(i int) Row {
	return Row{TripData: tt.trips[i]}
}

func (tt *TripTable) Skipped() int {
	return tt.skipped
}

func (tt *TripTable) Select(keep func(TripData) bool) Table {
	selected := make([]TripData, 0, len(tt.trips))
	for _, tripData := range tt.trips {
		if keep(tripData) {
			selected = append(selected, tripData)
		}
	}

	return &TripTable{
		source:  tt.source,
		trips:   selected,
		skipped: tt.skipped,
	}
}

// DemographicTripTable TripTable plus one RiderData per trip, index aligned
type DemographicTripTable struct {
	TripTable
	riders []RiderData
}

// NewDemographicTripTable panics if trips and riders are not index aligned
func NewDemographicTripTable(source string, trips []TripData, riders []RiderData, skipped int) *DemographicTripTable {
	if len(trips) != len(riders) {
		panic("[DemographicTripTable] trips and riders must have the same length")
	}

	ridersCopy := make([]RiderData, len(riders))
	copy(ridersCopy, riders)
	return &DemographicTripTable{
		TripTable: *NewTripTable(source, trips, skipped),
		riders:    ridersCopy,
	}
}

func (dt *DemographicTripTable) Rider(i int) RiderData {
	return dt.riders[i]
}

func (dt *DemographicTripTable) Row(i int) Row {
	rider := dt.riders[i]
	return Row{
		TripData: dt.trips[i],
		Rider:    &rider,
	}
}

func (dt *DemographicTripTable) Select(keep func(TripData) bool) Table {
	selectedTrips := make([]TripData, 0, len(dt.trips))
	selectedRiders := make([]RiderData, 0, len(dt.riders))
	for idx, tripData := range dt.trips {
		if keep(tripData) {
			selectedTrips = append(selectedTrips, tripData)
			selectedRiders = append(selectedRiders, dt.riders[idx])
		}
	}

	return &DemographicTripTable{
		TripTable: TripTable{
			source:  dt.source,
			trips:   selectedTrips,
			skipped: dt.skipped,
		},
		riders: selectedRiders,
	}
}
