package service

import "github.com/pkordes/bikeshare-explorer/internal/domain"

// Pager is a forward-only cursor over the records of a filtered dataset.
// Each call to Next hands out the next domain.PageSize records. It is not
// safe for concurrent use; the CLI session owns it.
type Pager struct {
	records []domain.TripRecord
	size    int
	cursor  int
	served  int
}

// NewPager constructs a Pager over ds with the cursor at the first row.
func NewPager(ds domain.Dataset) *Pager {
	return &Pager{records: ds.Records, size: domain.PageSize}
}

// Next returns up to PageSize records starting at the cursor and advances the
// cursor by PageSize. Once the cursor is past the end every call returns an
// empty page; there is no wraparound.
func (p *Pager) Next() domain.Page {
	page := domain.Page{Number: p.served + 1, Offset: p.cursor, Records: []domain.TripRecord{}}
	if p.cursor < len(p.records) {
		end := min(p.cursor+p.size, len(p.records))
		page.Records = p.records[p.cursor:end:end]
	}
	p.cursor += p.size
	p.served++
	return page
}

// Reset moves the cursor back to the first row.
func (p *Pager) Reset() {
	p.cursor = 0
	p.served = 0
}

// Started reports whether Next has been called since construction or the
// last Reset.
func (p *Pager) Started() bool {
	return p.served > 0
}

// Remaining returns the number of rows not yet handed out.
func (p *Pager) Remaining() int {
	return max(len(p.records)-p.cursor, 0)
}
