package main

import (
	"fmt"
	"strconv"
	"strings"

	"bikeshare/domain/business/statsreport"
	"bikeshare/domain/entities/trip"
)

const missingText = "n/a"

// renderReport returns the text shown to the user for every section of the report
func renderReport(report *statsreport.StatsReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nAnalyzing %v trips of %s (%s)", report.Trips, titleCaser.String(report.GetMetadata().GetCity()), report.Filter)
	if report.Skipped > 0 {
		fmt.Fprintf(&sb, ", %v malformed rows were skipped", report.Skipped)
	}
	sb.WriteString("\n")

	sb.WriteString("\nCalculating The Most Frequent Times of Travel...\n")
	fmt.Fprintf(&sb, "Most common month: %s, count: %v\n", report.Time.Month, report.Time.MonthCount)
	fmt.Fprintf(&sb, "Most common day of week: %s, count: %v\n", report.Time.Day, report.Time.DayCount)
	fmt.Fprintf(&sb, "Most common start hour: %v, count: %v\n", report.Time.Hour, report.Time.HourCount)

	sb.WriteString("\nCalculating The Most Popular Stations and Trip...\n")
	fmt.Fprintf(&sb, "Most commonly used start station: %s, count: %v\n", orMissing(report.Stations.StartStation), report.Stations.StartStationCount)
	fmt.Fprintf(&sb, "Most commonly used end station: %s, count: %v\n", orMissing(report.Stations.EndStation), report.Stations.EndStationCount)
	fmt.Fprintf(&sb, "Most frequent trip: %s, count: %v\n", orMissing(report.Stations.Route), report.Stations.RouteCount)

	sb.WriteString("\nCalculating Trip Duration...\n")
	fmt.Fprintf(&sb, "Total travel time: %s\n", report.Duration.Total())
	fmt.Fprintf(&sb, "Mean travel time: %s\n", report.Duration.Mean())

	sb.WriteString("\nCalculating User Stats...\n")
	sb.WriteString("Counts of user types:\n")
	writeCategoryCounts(&sb, report.Users.UserTypes)

	if !report.HasDemographics() {
		sb.WriteString("\nGender and birth year data are not available for this city.\n")
		return sb.String()
	}

	sb.WriteString("\nCounts of gender:\n")
	writeCategoryCounts(&sb, report.Demographics.Genders)

	birthYears := report.Demographics.BirthYears
	if birthYears == nil {
		sb.WriteString("\nNo birth year data in the selected trips.\n")
		return sb.String()
	}
	fmt.Fprintf(&sb, "\nEarliest year of birth: %v\nMost recent year of birth: %v\nMost common year of birth: %v\n",
		birthYears.Earliest, birthYears.MostRecent, birthYears.MostCommon)

	return sb.String()
}

func writeCategoryCounts(sb *strings.Builder, counts []statsreport.CategoryCount) {
	if len(counts) == 0 {
		fmt.Fprintf(sb, "  %s\n", missingText)
		return
	}
	for _, categoryCount := range counts {
		fmt.Fprintf(sb, "  %s: %v\n", categoryCount.Name, categoryCount.Count)
	}
}

// renderRow returns a single line with the fields of a raw row
func renderRow(row trip.Row) string {
	fields := []string{
		"Start Time: " + row.StartTime.Format(trip.TimestampLayout),
		"End Time: " + row.EndTime.Format(trip.TimestampLayout),
		"Trip Duration: " + strconv.FormatFloat(row.Duration, 'f', -1, 64),
		"Start Station: " + orMissing(row.StartStation),
		"End Station: " + orMissing(row.EndStation),
		"User Type: " + orMissing(row.UserType),
	}

	if row.Rider != nil {
		birthYear := missingText
		if row.Rider.HasBirthYear {
			birthYear = strconv.Itoa(row.Rider.BirthYear)
		}
		fields = append(fields, "Gender: "+orMissing(row.Rider.Gender), "Birth Year: "+birthYear)
	}

	return "{" + strings.Join(fields, ", ") + "}"
}

func orMissing(value string) string {
	if value == "" {
		return missingText
	}
	return value
}
