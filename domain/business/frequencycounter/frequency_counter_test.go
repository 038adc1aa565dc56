package frequencycounter

import (
	"testing"
	"time"
)

func TestModeReturnsMostFrequentValue(t *testing.T) {
	counter := NewOrderedCounter(1, 1, 2)

	mode, count, ok := counter.Mode()
	if !ok || mode != 1 || count != 2 {
		t.Errorf("expected mode 1 with count 2, got %v %v %v", mode, count, ok)
	}
}

func TestModeTieBreakPicksSmallestValue(t *testing.T) {
	testCases := []struct {
		name     string
		values   []string
		expected string
	}{
		{name: "first seen is larger", values: []string{"B", "A"}, expected: "A"},
		{name: "first seen is smaller", values: []string{"A", "B"}, expected: "A"},
		{name: "tie among leaders only", values: []string{"C", "C", "A", "B", "B", "A"}, expected: "A"},
		{name: "single value", values: []string{"Z"}, expected: "Z"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mode, _, ok := NewOrderedCounter(tc.values...).Mode()
			if !ok || mode != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, mode)
			}
		})
	}

	months, _, _ := NewOrderedCounter(2, 1, 2, 1).Mode()
	if months != 1 {
		t.Errorf("expected month 1 on tie, got %d", months)
	}
}

func TestModeWithCustomOrder(t *testing.T) {
	mondayFirst := func(a, b time.Weekday) bool { return (a+6)%7 < (b+6)%7 }
	counter := NewCounter[time.Weekday](mondayFirst)
	counter.UpdateCounter(time.Sunday)
	counter.UpdateCounter(time.Monday)

	mode, _, _ := counter.Mode()
	if mode != time.Monday {
		t.Errorf("expected Monday before Sunday, got %v", mode)
	}
}

func TestModeOnEmptyCounter(t *testing.T) {
	if _, _, ok := NewOrderedCounter[string]().Mode(); ok {
		t.Errorf("expected ok=false on empty counter")
	}
}

func TestEntriesSortedByCountThenValue(t *testing.T) {
	counter := NewOrderedCounter("Customer", "Subscriber", "Subscriber", "Dependent", "Customer", "Subscriber", "Alpha")

	entries := counter.Entries()
	expected := []Entry[string]{
		{Value: "Subscriber", Count: 3},
		{Value: "Customer", Count: 2},
		{Value: "Alpha", Count: 1},
		{Value: "Dependent", Count: 1},
	}
	if len(entries) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(entries))
	}
	for idx := range expected {
		if entries[idx] != expected[idx] {
			t.Errorf("entry %d: expected %+v, got %+v", idx, expected[idx], entries[idx])
		}
	}
	if counter.Len() != 4 {
		t.Errorf("expected 4 distinct values, got %d", counter.Len())
	}
}
