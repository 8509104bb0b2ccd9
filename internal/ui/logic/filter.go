package logic

import (
	"strings"

	"dispatchdash/internal/domain"
)

const statusPrefix = "status:"

// SearchFilter matches records against a settled search query
type SearchFilter struct {
	columns []string
}

// NewSearchFilter creates a filter that searches the given columns
func NewSearchFilter(columns []string) *SearchFilter {
	return &SearchFilter{columns: columns}
}

// Matches checks if a record matches the query. An empty query matches
// everything. "status:<value>" matches the record's status instead of
// its cells.
func (sf *SearchFilter) Matches(record domain.Record, filterQuery string) bool {
	query := strings.ToLower(strings.TrimSpace(filterQuery))
	if query == "" {
		return true
	}

	if strings.HasPrefix(query, statusPrefix) {
		return sf.MatchesStatusFilter(record, strings.TrimSpace(strings.TrimPrefix(query, statusPrefix)))
	}

	for _, col := range sf.columns {
		if strings.Contains(strings.ToLower(record.Cell(col)), query) {
			return true
		}
	}
	return false
}

// MatchesStatusFilter checks the record status against a status filter.
// A prefix is enough ("status:deliv" finds delivered orders); spaces may
// stand in for underscores.
func (sf *SearchFilter) MatchesStatusFilter(record domain.Record, filter string) bool {
	if filter == "" {
		return true
	}
	filter = strings.ReplaceAll(filter, " ", "_")

	switch filter {
	case "unassigned":
		return record.Cell("driver") == "-"
	case "busy":
		return record.StatusText() == string(domain.DriverOnDelivery)
	default:
		return strings.HasPrefix(record.StatusText(), filter)
	}
}

// Filter returns the records matching the query, keeping their order
func (sf *SearchFilter) Filter(records []domain.Record, query string) []domain.Record {
	result := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if sf.Matches(r, query) {
			result = append(result, r)
		}
	}
	return result
}

// FilterRecords filters records by query across the given columns
func FilterRecords(records []domain.Record, columns []string, query string) []domain.Record {
	return NewSearchFilter(columns).Filter(records, query)
}

// HighlightRange returns the byte range of the first case-insensitive
// occurrence of query in text, or ok=false. Status filters never highlight.
func HighlightRange(text, query string) (start, end int, ok bool) {
	query = strings.TrimSpace(query)
	if query == "" || strings.HasPrefix(strings.ToLower(query), statusPrefix) {
		return 0, 0, false
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)
	if len(lowerText) != len(text) {
		return 0, 0, false
	}
	i := strings.Index(lowerText, lowerQuery)
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(lowerQuery), true
}
