package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"bikeshare/catalog"
	"bikeshare/config"
	"bikeshare/domain/business/statsreport"
	"bikeshare/loader"
	"bikeshare/pager"
)

// 2017-06-05 is a Monday
const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1,2017-06-05 08:00:00,2017-06-05 08:10:00,600,Canal St,Oak St,Subscriber,Male,1990.0
2,2017-06-05 08:30:00,2017-06-05 08:40:00,600,Canal St,Oak St,Subscriber,Female,1985.0
3,2017-06-06 09:00:00,2017-06-06 09:10:00,600,Adams St,Oak St,Customer,,
4,2017-06-07 08:00:00,2017-06-07 08:10:00,600,Canal St,Adams St,Subscriber,Male,1990.0
5,2017-06-08 17:00:00,2017-06-08 17:10:00,600,Oak St,Canal St,Subscriber,Male,1970.0
6,2017-06-09 08:00:00,2017-06-09 08:10:00,600,Canal St,Oak St,Customer,Female,2000.0
7,2017-06-10 12:00:00,2017-06-10 12:10:00,600,Adams St,Canal St,Subscriber,Male,1990.0
8,2017-01-02 08:00:00,2017-01-02 08:10:00,60,Oak St,Adams St,Subscriber,Male,1990.0
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
2,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Customer
`

type fakePublisher struct {
	reports []*statsreport.StatsReport
	err     error
}

func (fp *fakePublisher) Publish(_ context.Context, report *statsreport.StatsReport) error {
	fp.reports = append(fp.reports, report)
	return fp.err
}

func (fp *fakePublisher) Close() error {
	return nil
}

func newTestShell(t *testing.T, input string, publisher *fakePublisher) (*Shell, *bytes.Buffer) {
	t.Helper()
	dataDir := t.TempDir()
	for name, content := range map[string]string{"chicago.csv": chicagoCSV, "washington.csv": washingtonCSV} {
		if err := os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	cityCatalog, err := catalog.New(dataDir, catalog.DefaultDatasets())
	if err != nil {
		t.Fatalf("unexpected error building catalog: %v", err)
	}

	out := &bytes.Buffer{}
	tripLoader := loader.NewTripLoader(config.LoaderConfig{Columns: config.DefaultColumns(), CacheSize: 3})
	return NewShell(cityCatalog, tripLoader, publisher, pager.New(5), strings.NewReader(input), out), out
}

func TestShellFullSession(t *testing.T) {
	publisher := &fakePublisher{}
	input := strings.Join([]string{"boston", "Chicago", "month", "juneuary", "June", "yes", "yes", "no"}, "\n") + "\n"
	shell, out := newTestShell(t, input, publisher)

	if err := shell.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := out.String()

	expectedLines := []string{
		"Please enter a valid city",
		"Please enter a valid month",
		"Analyzing 7 trips of Chicago (month: June, day: all)",
		"Most common month: June, count: 7",
		"Most common start hour: 8, count: 4",
		"Most commonly used start station: Canal St, count: 4",
		"Most frequent trip: Canal St to Oak St, count: 3",
		"Total travel time: 0 days, 1 hour, 10 minutes and 0 seconds",
		"Mean travel time: 10 minutes and 0 seconds",
		"  Subscriber: 5",
		"  Customer: 2",
		"Most common year of birth: 1990",
		"There is no more raw data to show.",
	}
	for _, expected := range expectedLines {
		if !strings.Contains(output, expected) {
			t.Errorf("expected output to contain %q\n%s", expected, output)
		}
	}

	if rows := strings.Count(output, "{Start Time: "); rows != 7 {
		t.Errorf("expected 7 raw rows, got %d", rows)
	}
	if strings.Contains(output, "2017-01-02") {
		t.Errorf("rows out of the filter must not be shown")
	}

	if len(publisher.reports) != 1 || publisher.reports[0].GetMetadata().GetCity() != catalog.Chicago {
		t.Errorf("expected a single chicago report published, got %+v", publisher.reports)
	}
}

func TestShellCityWithoutDemographics(t *testing.T) {
	input := strings.Join([]string{"washington", "none", "no"}, "\n") + "\n"
	shell, out := newTestShell(t, input, &fakePublisher{})

	if err := shell.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := out.String()

	if !strings.Contains(output, "Gender and birth year data are not available for this city.") {
		t.Errorf("expected demographics to be reported as not available\n%s", output)
	}
	if strings.Contains(output, "Counts of gender") {
		t.Errorf("no gender stats expected for washington")
	}
	if !strings.Contains(output, "Would you like to restart?") {
		t.Errorf("expected restart prompt")
	}
	if timings := strings.Count(output, "This took "); timings != 1 {
		t.Errorf("expected a single compute time line after the report, got %d", timings)
	}
}

func TestShellRestartsAndFiltersByDay(t *testing.T) {
	input := strings.Join([]string{"chicago", "none", "no", "yes", "chicago", "day", "M", "no", "no"}, "\n") + "\n"
	shell, out := newTestShell(t, input, &fakePublisher{})

	if err := shell.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := out.String()

	if !strings.Contains(output, "Analyzing 8 trips of Chicago (month: all, day: all)") {
		t.Errorf("expected the unfiltered analysis\n%s", output)
	}
	if !strings.Contains(output, "Analyzing 3 trips of Chicago (month: all, day: Monday)") {
		t.Errorf("expected the monday analysis after restarting\n%s", output)
	}
}

func TestShellNoMatchingTrips(t *testing.T) {
	input := strings.Join([]string{"chicago", "both", "december", "su", "no"}, "\n") + "\n"
	shell, out := newTestShell(t, input, &fakePublisher{})

	if err := shell.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "No chicago trips match the filter (month: December, day: Sunday).") {
		t.Errorf("expected empty result message\n%s", out.String())
	}
}

func TestShellMissingDataset(t *testing.T) {
	input := "new york\nnone\n"
	shell, out := newTestShell(t, input, &fakePublisher{})

	if err := shell.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Could not load the new york data: the data file could not be opened") {
		t.Errorf("expected load error message\n%s", out.String())
	}
}

func TestShellKeepsGoingWhenPublishFails(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("connection refused")}
	input := strings.Join([]string{"washington", "none", "yes"}, "\n") + "\n"
	shell, out := newTestShell(t, input, publisher)

	if err := shell.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(publisher.reports) != 1 {
		t.Errorf("expected a publish attempt")
	}
	if rows := strings.Count(out.String(), "{Start Time: "); rows != 2 {
		t.Errorf("expected the raw rows after a failed publish, got %d", rows)
	}
}

func TestShellEndsWhenInputIsClosed(t *testing.T) {
	shell, out := newTestShell(t, "chic", &fakePublisher{})

	if err := shell.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out.String(), "Analyzing") {
		t.Errorf("no analysis expected without a valid city")
	}
}

func TestShellReturnsInputErrors(t *testing.T) {
	errBrokenInput := errors.New("broken input")
	input := io.MultiReader(strings.NewReader("washington\nnone\nno\n"), iotest.ErrReader(errBrokenInput))
	shell, _ := newTestShell(t, "", &fakePublisher{})
	shell.scanner = bufio.NewScanner(input)

	if err := shell.Run(); !errors.Is(err, errBrokenInput) {
		t.Errorf("expected the input error, got %v", err)
	}
}

func TestShellEmptyDatasetFile(t *testing.T) {
	shell, out := newTestShell(t, "chicago\nnone\nno\n", &fakePublisher{})
	header := strings.SplitN(chicagoCSV, "\n", 2)[0] + "\n"
	resource, err := shell.catalog.Resolve(catalog.Chicago)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(resource, []byte(header), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", resource, err)
	}

	if err := shell.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "No chicago trips match the filter (month: all, day: all).") {
		t.Errorf("expected empty result message\n%s", out.String())
	}
}

func TestJoinOptions(t *testing.T) {
	if got := joinOptions([]string{"Chicago", "New York", "Washington"}); got != "Chicago, New York or Washington" {
		t.Errorf("unexpected options %q", got)
	}
	if got := joinOptions([]string{"Chicago"}); got != "Chicago" {
		t.Errorf("unexpected options %q", got)
	}
}
