package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

// gota keeps a literal NaN string as a missing value and renders it as NaN
const missingValue = "NaN"

var errEmptyTimestamp = errors.New("empty timestamp")

// tripColumns raw values of every column used to build the trips
type tripColumns struct {
	startTime    []string
	endTime      []string
	duration     []string
	startStation []string
	endStation   []string
	userType     []string
	gender       []string
	birthYear    []string
}

// Parse reads a trips CSV from r. Columns are looked up by name, extra columns are ignored.
// Rows with a different amount of fields than the header, or with an invalid start time,
// end time or duration, are skipped and counted. If the header has both the gender and
// birth year columns a trip.DemographicTable is returned.
func Parse(source string, r io.Reader, columns config.Columns) (trip.Table, error) {
	header, records, lines, skipped, err := readRecords(source, r)
	if err != nil {
		return nil, err
	}

	withDemographics, err := checkHeader(header, columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	if len(records) == 0 {
		return newTable(source, nil, nil, skipped, withDemographics), nil
	}

	df := dataframe.LoadRecords(append([][]string{header}, records...),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("error reading %s: %s: %w", source, df.Err, dataErrors.ErrMalformedRecord)
	}

	rawColumns := getTripColumns(df, header, columns, withDemographics)

	trips := make([]trip.TripData, 0, df.Nrow())
	var riders []trip.RiderData
	for idx := 0; idx < df.Nrow(); idx++ {
		tripData, err := rawColumns.getTripData(idx)
		if err != nil {
			logSkippedRow(source, lines[idx], err)
			skipped += 1
			continue
		}

		trips = append(trips, tripData)
		if withDemographics {
			riders = append(riders, rawColumns.getRiderData(idx))
		}
	}

	return newTable(source, trips, riders, skipped, withDemographics), nil
}

// readRecords returns the header and the rows with as many fields as the header, along with
// the line where each row starts. Rows with another amount of fields are skipped and counted.
func readRecords(source string, r io.Reader) (header []string, records [][]string, lines []int, skipped int, err error) {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1

	header, err = csvReader.Read()
	if err == io.EOF {
		return nil, nil, nil, 0, fmt.Errorf("%s has no header: %w", source, dataErrors.ErrMalformedRecord)
	}
	if err != nil {
		return nil, nil, nil, 0, fmt.Errorf("error reading %s: %s: %w", source, err, dataErrors.ErrMalformedRecord)
	}

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, nil, 0, fmt.Errorf("error reading %s: %s: %w", source, err, dataErrors.ErrMalformedRecord)
		}

		line, _ := csvReader.FieldPos(0)
		if len(record) != len(header) {
			logSkippedRow(source, line, fmt.Errorf("expected %v fields, got %v: %w", len(header), len(record), dataErrors.ErrMalformedRecord))
			skipped += 1
			continue
		}

		records = append(records, record)
		lines = append(lines, line)
	}

	return header, records, lines, skipped, nil
}

// checkHeader fails if a required column is missing. It returns true if the header has the
// gender and birth year columns.
func checkHeader(header []string, columns config.Columns) (bool, error) {
	names := make(map[string]bool)
	for _, name := range header {
		names[strings.TrimSpace(name)] = true
	}

	required := []string{columns.StartTime, columns.EndTime, columns.Duration, columns.StartStation, columns.EndStation, columns.UserType}
	var missing []string
	for _, name := range required {
		if !names[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return false, fmt.Errorf("missing required columns %v: %w", missing, dataErrors.ErrMalformedRecord)
	}

	return names[columns.Gender] && names[columns.BirthYear], nil
}

// getTripColumns looks columns up by their position in header, gota renames blank and
// duplicated column names
func getTripColumns(df dataframe.DataFrame, header []string, columns config.Columns, withDemographics bool) *tripColumns {
	dfNames := df.Names()
	columnRecords := func(name string) []string {
		for idx, headerName := range header {
			if strings.TrimSpace(headerName) == name {
				return df.Col(dfNames[idx]).Records()
			}
		}
		return nil
	}

	rawColumns := &tripColumns{
		startTime:    columnRecords(columns.StartTime),
		endTime:      columnRecords(columns.EndTime),
		duration:     columnRecords(columns.Duration),
		startStation: columnRecords(columns.StartStation),
		endStation:   columnRecords(columns.EndStation),
		userType:     columnRecords(columns.UserType),
	}

	if withDemographics {
		rawColumns.gender = columnRecords(columns.Gender)
		rawColumns.birthYear = columnRecords(columns.BirthYear)
	}
	return rawColumns
}

func newTable(source string, trips []trip.TripData, riders []trip.RiderData, skipped int, withDemographics bool) trip.Table {
	if withDemographics {
		return trip.NewDemographicTripTable(source, trips, riders, skipped)
	}
	return trip.NewTripTable(source, trips, skipped)
}

func logSkippedRow(source string, line int, err error) {
	log.Debugf("[source: %s][line: %v] skipping row: %s", source, line, err.Error())
}

func (tc *tripColumns) getTripData(idx int) (trip.TripData, error) {
	startTime, err := parseTimestamp(tc.startTime[idx])
	if err != nil {
		return trip.TripData{}, fmt.Errorf("invalid start time: %s: %w", err, dataErrors.ErrMalformedRecord)
	}

	endTime, err := parseTimestamp(tc.endTime[idx])
	if err != nil {
		return trip.TripData{}, fmt.Errorf("invalid end time: %s: %w", err, dataErrors.ErrMalformedRecord)
	}

	durationStr := getValue(tc.duration[idx])
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil || !isFinite(duration) {
		return trip.TripData{}, fmt.Errorf("invalid duration %q: %w", durationStr, dataErrors.ErrMalformedRecord)
	}

	if duration < 0 {
		return trip.TripData{}, fmt.Errorf("negative duration %q: %w", durationStr, dataErrors.ErrMalformedRecord)
	}

	return trip.NewTripData(
		startTime,
		endTime,
		getValue(tc.startStation[idx]),
		getValue(tc.endStation[idx]),
		duration,
		getValue(tc.userType[idx]),
	), nil
}

func (tc *tripColumns) getRiderData(idx int) trip.RiderData {
	riderData := trip.RiderData{
		Gender: getValue(tc.gender[idx]),
	}

	// birth years are stored as floats in some datasets, e.g. 1992.0
	birthYear, err := strconv.ParseFloat(getValue(tc.birthYear[idx]), 64)
	if err == nil && isFinite(birthYear) {
		riderData.BirthYear = int(birthYear)
		riderData.HasBirthYear = true
	}
	return riderData
}

func parseTimestamp(value string) (time.Time, error) {
	value = getValue(value)
	if value == "" {
		return time.Time{}, errEmptyTimestamp
	}
	return time.Parse(trip.TimestampLayout, value)
}

// getValue returns the trimmed value, or an empty string if the value is missing
func getValue(value string) string {
	value = strings.TrimSpace(value)
	if value == missingValue {
		return ""
	}
	return value
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
