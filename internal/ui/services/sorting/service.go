package sorting

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"dispatchdash/internal/domain"
	"dispatchdash/internal/eventbus"
)

// Service handles row sorting for one table
type Service struct {
	state *State
	bus   eventbus.EventBus
	table domain.TableID
}

// NewService creates a new sorting service
func NewService(bus eventbus.EventBus, table domain.TableID) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		state: &State{},
		bus:   bus,
		table: table,
	}
}

// Column returns the sort column, "" when unsorted
func (s *Service) Column() string {
	return s.state.Column
}

// Descending reports the sort direction
func (s *Service) Descending() bool {
	return s.state.Descending
}

// SetColumn sorts by column ascending, or flips the direction when the
// column is already the sort column
func (s *Service) SetColumn(column string) {
	if column == "" {
		s.Clear()
		return
	}
	if column == s.state.Column {
		s.Apply(column, !s.state.Descending)
		return
	}
	s.Apply(column, false)
}

// Apply sets column and direction explicitly
func (s *Service) Apply(column string, descending bool) {
	if column == s.state.Column && descending == s.state.Descending {
		return
	}
	s.state.Column = column
	s.state.Descending = descending
	if column == "" {
		s.state.Descending = false
	}

	s.bus.Publish(domain.SortChangedEvent{
		Table:      s.table,
		Column:     s.state.Column,
		Descending: s.state.Descending,
	})
}

// Clear returns to store order
func (s *Service) Clear() {
	s.Apply("", false)
}

// Sort orders records in place. Equal rows keep their relative order.
func (s *Service) Sort(records []domain.Record) {
	column := s.state.Column
	if column == "" {
		return
	}
	slices.SortStableFunc(records, func(a, b domain.Record) int {
		c := CompareCells(a.Cell(column), b.Cell(column))
		if s.state.Descending {
			return -c
		}
		return c
	})
}

// ModeString returns a short label such as "rating ↓"
func (s *Service) ModeString() string {
	if s.state.Column == "" {
		return "none"
	}
	if s.state.Descending {
		return s.state.Column + " ↓"
	}
	return s.state.Column + " ↑"
}

// CompareCells compares two cell values numerically when both are plain
// decimal numbers, otherwise case-insensitively as text
func CompareCells(a, b string) int {
	fa, okA := decimal(a)
	fb, okB := decimal(b)
	if okA && okB {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// decimal parses cells such as "4.8", "-3" or "12.50". ParseFloat alone
// would also take "Inf", "NaN", exponents and hex.
func decimal(s string) (float64, bool) {
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
		case (r == '-' || r == '+') && i == 0:
		default:
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// ParseSort parses "column" or "column:asc|desc"
func ParseSort(spec string) (column string, descending bool, err error) {
	if spec == "" {
		return "", false, nil
	}

	parts := strings.Split(spec, ":")
	order := OrderAsc
	switch len(parts) {
	case 1:
		column = strings.TrimSpace(parts[0])
	case 2:
		column = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", false, fmt.Errorf("%w: %q", ErrInvalidSortFormat, spec)
	}

	if column == "" {
		return "", false, ErrEmptySortColumn
	}
	if order != OrderAsc && order != OrderDesc {
		return "", false, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return column, order == OrderDesc, nil
}
