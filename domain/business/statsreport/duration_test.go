package statsreport

import "testing"

func TestBreakdownRoundTrips(t *testing.T) {
	totals := []float64{0, 59, 60, 3599, 3600, 86399, 86400, 90061, 1234567, 1234567.5}

	for _, total := range totals {
		breakdown := NewBreakdown(total)
		if got := breakdown.TotalSeconds(); got != total {
			t.Errorf("total %v: reconstructed %v from %+v", total, got, breakdown)
		}
		if breakdown.Hours >= 24 || breakdown.Minutes >= 60 || breakdown.Seconds >= 60 {
			t.Errorf("total %v: components out of range %+v", total, breakdown)
		}
	}
}

func TestBreakdownString(t *testing.T) {
	testCases := []struct {
		total    float64
		expected string
	}{
		{total: 90061, expected: "1 day, 1 hour, 1 minute and 1 second"},
		{total: 2*86400 + 2*3600 + 5, expected: "2 days, 2 hours, 0 minutes and 5 seconds"},
		{total: 30.5, expected: "0 days, 0 hours, 0 minutes and 30.5 seconds"},
	}

	for _, tc := range testCases {
		if got := NewBreakdown(tc.total).String(); got != tc.expected {
			t.Errorf("total %v: expected %q, got %q", tc.total, tc.expected, got)
		}
	}
}

func TestMeanDurationTruncates(t *testing.T) {
	mean := NewMeanDuration(125.0 / 2)

	if mean.Minutes != 1 || mean.Seconds != 2 {
		t.Errorf("expected 1m 2s, got %+v", mean)
	}
	if got := mean.String(); got != "1 minute and 2 seconds" {
		t.Errorf("unexpected rendering %q", got)
	}
	if got := NewMeanDuration(179.99).String(); got != "2 minutes and 59 seconds" {
		t.Errorf("expected truncation, got %q", got)
	}
}
