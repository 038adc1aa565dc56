package pager

import "bikeshare/domain/entities/trip"

const DefaultPageSize = 5

// Pager splits a table in consecutive windows of a fixed size. The cursor is held by the caller.
type Pager struct {
	size int
}

// New returns a Pager of size rows per page. Sizes lower than 1 fall back to DefaultPageSize.
func New(size int) *Pager {
	if size < 1 {
		size = DefaultPageSize
	}
	return &Pager{size: size}
}

func (p *Pager) Size() int {
	return p.size
}

// Page returns the rows from cursor up to the page size, the cursor of the next page and
// whether there are rows after this page. A cursor out of the table returns no rows.
func (p *Pager) Page(table trip.Table, cursor int) (rows []trip.Row, next int, hasMore bool) {
	if cursor < 0 || cursor >= table.Len() {
		return []trip.Row{}, cursor, false
	}

	end := cursor + p.size
	if end > table.Len() {
		end = table.Len()
	}

	rows = make([]trip.Row, 0, end-cursor)
	for idx := cursor; idx < end; idx++ {
		rows = append(rows, table.Row(idx))
	}
	return rows, end, end < table.Len()
}
