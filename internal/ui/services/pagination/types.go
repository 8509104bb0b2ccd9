package pagination

// State holds the pagination state of one table.
// Total pages and the page bounds are derived on every read.
type State struct {
	PageSize    int
	CurrentPage int // 1-indexed
	TotalItems  int
}

// Meta is a snapshot of the pagination state for rendering and JSON output
type Meta struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	StartIndex  int  `json:"start_index"`
	EndIndex    int  `json:"end_index"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}
