package frequencycounter

import "sort"

// Counter struct that counts how many times each value appears
// + counts: occurrences per value
// + order: values in first-seen order, used to iterate deterministically
// + less: order between values. Ties on the mode are resolved in favour of the smallest value
type Counter[K comparable] struct {
	counts map[K]int
	order  []K
	less   func(a, b K) bool
}

func NewCounter[K comparable](less func(a, b K) bool) *Counter[K] {
	return &Counter[K]{
		counts: make(map[K]int),
		less:   less,
	}
}

// NewOrderedCounter Counter for types with a natural order
func NewOrderedCounter[K int | string](values ...K) *Counter[K] {
	counter := NewCounter[K](func(a, b K) bool { return a < b })
	for _, value := range values {
		counter.UpdateCounter(value)
	}
	return counter
}

func (c *Counter[K]) UpdateCounter(value K) {
	if _, ok := c.counts[value]; !ok {
		c.order = append(c.order, value)
	}
	c.counts[value] += 1
}

// Len amount of distinct values
func (c *Counter[K]) Len() int {
	return len(c.order)
}

// Mode returns the most frequent value. When several values share the highest count the
// smallest one according to less is returned. ok is false if nothing was counted.
func (c *Counter[K]) Mode() (mode K, count int, ok bool) {
	for _, value := range c.order {
		valueCount := c.counts[value]
		if !ok || valueCount > count || (valueCount == count && c.less(value, mode)) {
			mode = value
			count = valueCount
			ok = true
		}
	}
	return mode, count, ok
}

// Entry a value with its amount of occurrences
type Entry[K comparable] struct {
	Value K
	Count int
}

// Entries returns every value sorted by count, descending. Equal counts are sorted with less.
func (c *Counter[K]) Entries() []Entry[K] {
	entries := make([]Entry[K], 0, len(c.order))
	for _, value := range c.order {
		entries = append(entries, Entry[K]{Value: value, Count: c.counts[value]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return c.less(entries[i].Value, entries[j].Value)
	})
	return entries
}
