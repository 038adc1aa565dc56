package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bikeshare/catalog"
	"bikeshare/domain/business/statsreport"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/filter"
	"bikeshare/pager"
	"bikeshare/reports"
	"bikeshare/stats"
	"bikeshare/utils"
)

const (
	shellType      = "shell"
	separator      = "----------------------------------------"
	publishTimeout = 5 * time.Second

	filterMonth = "month"
	filterDay   = "day"
	filterBoth  = "both"
	filterNone  = "none"
	noFilter    = "all"
)

var (
	errInputClosed = errors.New("input closed")

	filterOptions = []string{filterMonth, filterDay, filterBoth, filterNone}
	yesAnswers    = []string{"yes", "y"}

	titleCaser = cases.Title(language.English)
)

// TableLoader loads the trips table stored in a resource
type TableLoader interface {
	Load(resource string) (trip.Table, error)
}

// Shell asks the user for a city and filters, then shows the stats of the selected trips
type Shell struct {
	catalog   *catalog.Catalog
	loader    TableLoader
	publisher reports.Publisher
	pager     *pager.Pager
	scanner   *bufio.Scanner
	out       io.Writer
}

func NewShell(cityCatalog *catalog.Catalog, tableLoader TableLoader, publisher reports.Publisher, rowPager *pager.Pager, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		catalog:   cityCatalog,
		loader:    tableLoader,
		publisher: publisher,
		pager:     rowPager,
		scanner:   bufio.NewScanner(in),
		out:       out,
	}
}

func (s *Shell) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", shellType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", shellType, method, message)
}

// Run repeats the analysis until the user does not want to restart or the input is closed
func (s *Shell) Run() error {
	for {
		err := s.runCycle()
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		restart, err := s.ask("\nWould you like to restart? Enter yes or no.")
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if !utils.ContainsString(utils.NormalizeInput(restart), yesAnswers) {
			return nil
		}
	}
}

func (s *Shell) runCycle() error {
	s.println("Hello! Let's explore some US bikeshare data!")

	city, spec, err := s.getFilters()
	if err != nil {
		return err
	}

	resource, err := s.catalog.Resolve(city)
	if err != nil {
		return err
	}

	table, err := s.loader.Load(resource)
	if err != nil {
		log.Error(s.getLogMessage("runCycle", fmt.Sprintf("error loading %s", city), err))
		s.printf("\nCould not load the %s data: %s\n", city, describeError(err))
		return nil
	}

	filtered := filter.Apply(table, spec)

	start := time.Now()
	report, err := stats.BuildReport(city, filtered, spec)
	if errors.Is(err, dataErrors.ErrEmptyDataset) {
		s.printf("\nNo %s trips match the filter (%s).\n", city, spec)
		return nil
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	s.print(renderReport(report))
	s.printf("\nThis took %v seconds.\n%s\n", elapsed.Seconds(), separator)

	s.publish(report)
	return s.showRawData(filtered)
}

// getFilters asks for a city, month and day. The answers are validated before returning.
func (s *Shell) getFilters() (string, filter.Spec, error) {
	cities := s.catalog.Cities()
	cityNames := make([]string, 0, len(cities))
	for _, city := range cities {
		cityNames = append(cityNames, titleCaser.String(city))
	}

	city, err := s.askUntilValid(
		fmt.Sprintf("\nWould you like to see data from %s?", joinOptions(cityNames)),
		fmt.Sprintf("\nPlease enter a valid city (i.e., %s).", joinOptions(cityNames)),
		func(answer string) bool { return utils.ContainsString(utils.NormalizeInput(answer), cities) },
	)
	if err != nil {
		return "", filter.Spec{}, err
	}

	filterBy, err := s.askUntilValid(
		"\nWould you like to filter the data by month, day, both or not at all? Type \"none\" for no time filter.",
		"\nPlease try again. The input must be month, day, both or none.",
		func(answer string) bool { return utils.ContainsString(utils.NormalizeInput(answer), filterOptions) },
	)
	if err != nil {
		return "", filter.Spec{}, err
	}
	filterBy = utils.NormalizeInput(filterBy)

	month, day := noFilter, noFilter
	if filterBy == filterMonth || filterBy == filterBoth {
		month, err = s.askUntilValid(
			"\nWhich month? January, February, March, April, May, June, ..., December?",
			"\nPlease enter a valid month (i.e., January - December).",
			isMonth,
		)
		if err != nil {
			return "", filter.Spec{}, err
		}
	}

	if filterBy == filterDay || filterBy == filterBoth {
		day, err = s.askUntilValid(
			"\nWhich day? Please type a day M, Tu, W, Th, F, Sa, Su.",
			"\nPlease enter a valid day (i.e., M, Tu, W, Th, F, Sa, Su).",
			isWeekday,
		)
		if err != nil {
			return "", filter.Spec{}, err
		}
	}

	spec, err := filter.NewSpec(month, day)
	if err != nil {
		return "", filter.Spec{}, err
	}

	s.println(separator)
	return utils.NormalizeInput(city), spec, nil
}

// showRawData shows the rows of table one page at a time while the user answers yes
func (s *Shell) showRawData(table trip.Table) error {
	prompt := fmt.Sprintf("\nWould you like to see the first %v lines of the raw data? Enter yes or no.", s.pager.Size())
	cursor := 0
	for {
		answer, err := s.ask(prompt)
		if err != nil {
			return err
		}
		if !utils.ContainsString(utils.NormalizeInput(answer), yesAnswers) {
			return nil
		}

		rows, next, hasMore := s.pager.Page(table, cursor)
		for _, row := range rows {
			s.println(renderRow(row))
		}
		cursor = next

		if !hasMore {
			s.println("\nThere is no more raw data to show.")
			return nil
		}
		prompt = fmt.Sprintf("\nWould you like to see %v more lines of the raw data? Enter yes or no.", s.pager.Size())
	}
}

// publish sends the report to the configured publisher. A failure is logged and the session goes on.
func (s *Shell) publish(report *statsreport.StatsReport) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, report); err != nil {
		log.Error(s.getLogMessage("publish", "error publishing report", err))
	}
}

// ask prints the prompt and returns the next input line
func (s *Shell) ask(prompt string) (string, error) {
	s.println(prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		return "", errInputClosed
	}
	return s.scanner.Text(), nil
}

// askUntilValid repeats the question, showing retryPrompt, until isValid accepts the answer
func (s *Shell) askUntilValid(prompt string, retryPrompt string, isValid func(string) bool) (string, error) {
	answer, err := s.ask(prompt)
	for err == nil && !isValid(answer) {
		answer, err = s.ask(retryPrompt)
	}
	return answer, err
}

func (s *Shell) print(text string) {
	_, _ = fmt.Fprint(s.out, text)
}

func (s *Shell) println(text string) {
	_, _ = fmt.Fprintln(s.out, text)
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// isMonth only accepts a month name, "all" is not an option once the user chose to filter by month
func isMonth(answer string) bool {
	month, err := filter.ParseMonth(answer)
	return err == nil && month != 0
}

func isWeekday(answer string) bool {
	_, err := filter.ParseWeekday(answer)
	return err == nil
}

// joinOptions returns "a, b or c"
func joinOptions(options []string) string {
	if len(options) < 2 {
		return strings.Join(options, "")
	}
	return strings.Join(options[:len(options)-1], ", ") + " or " + options[len(options)-1]
}

func describeError(err error) string {
	switch {
	case errors.Is(err, dataErrors.ErrResourceUnavailable):
		return "the data file could not be opened"
	case errors.Is(err, dataErrors.ErrMalformedRecord):
		return "the data file is malformed"
	default:
		return err.Error()
	}
}
