package sorting

import "errors"

// Sort direction names accepted by ParseSort
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Parse errors
var (
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'column' or 'column:order' (e.g., 'rating:desc')")
	ErrEmptySortColumn   = errors.New("sort column cannot be empty")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
)

// State holds sorting state. An empty Column keeps store order.
type State struct {
	Column     string
	Descending bool
}
