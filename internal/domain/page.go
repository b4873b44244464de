package domain

// PageSize is the number of raw rows shown per page in the raw-data browser.
const PageSize = 5

// Page is one slice of raw rows handed out by the pager.
// Number is 1-indexed; Offset is the zero-based index of the first row.
type Page struct {
	Number  int
	Offset  int
	Records []TripRecord
}

// IsEmpty reports whether the page has no rows, which happens once the
// cursor has moved past the end of the dataset.
func (p Page) IsEmpty() bool {
	return len(p.Records) == 0
}
