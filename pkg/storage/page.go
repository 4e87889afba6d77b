package storage

// Page selects a window of a list query. A zero Limit means the
// implementation default.
type Page struct {
	Limit  uint
	Offset uint
}

// List is a page of records together with the total number of records
// matching the filter, ignoring the page window.
type List[T any] struct {
	Items []T
	Total int64
}
