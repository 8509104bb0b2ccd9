package pagination

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"dispatchdash/internal/config"
	"dispatchdash/internal/domain"
	"dispatchdash/internal/eventbus"
)

// Service handles page arithmetic for one table
type Service struct {
	state   *State
	bus     eventbus.EventBus
	table   domain.TableID
	options []int
	logger  zerolog.Logger
}

// NewService creates a pagination service starting on page 1 with no items
func NewService(bus eventbus.EventBus, table domain.TableID, pageSize int) (*Service, error) {
	if !slices.Contains(config.PageSizeOptions, pageSize) {
		return nil, fmt.Errorf("%w: got %d", config.ErrInvalidPageSize, pageSize)
	}
	if bus == nil {
		bus = eventbus.NullBus{}
	}

	return &Service{
		state: &State{
			PageSize:    pageSize,
			CurrentPage: 1,
		},
		bus:     bus,
		table:   table,
		options: slices.Clone(config.PageSizeOptions),
		logger:  config.ComponentLogger("pagination").With().Str("table", string(table)).Logger(),
	}, nil
}

// PageSize returns the number of rows per page
func (s *Service) PageSize() int {
	return s.state.PageSize
}

// CurrentPage returns the 1-indexed current page
func (s *Service) CurrentPage() int {
	return s.state.CurrentPage
}

// TotalItems returns the row count last supplied by SetTotalItems
func (s *Service) TotalItems() int {
	return s.state.TotalItems
}

// TotalPages returns ceil(totalItems / pageSize), 0 for an empty table
func (s *Service) TotalPages() int {
	if s.state.TotalItems == 0 {
		return 0
	}
	return (s.state.TotalItems + s.state.PageSize - 1) / s.state.PageSize
}

// StartIndex is the index of the first row on the current page
func (s *Service) StartIndex() int {
	return (s.state.CurrentPage - 1) * s.state.PageSize
}

// EndIndex is one past the last row on the current page
func (s *Service) EndIndex() int {
	return min(s.StartIndex()+s.state.PageSize, s.state.TotalItems)
}

// CurrentSlice returns the bounds of the current page
func (s *Service) CurrentSlice() (start, end int) {
	return s.StartIndex(), s.EndIndex()
}

// PageSizeOptions returns the allowed page sizes
func (s *Service) PageSizeOptions() []int {
	return slices.Clone(s.options)
}

// PageSequence returns the page buttons for the current state
func (s *Service) PageSequence() []PageMarker {
	return Sequence(s.state.CurrentPage, s.TotalPages())
}

// SetPage moves to page. Pages outside [1, TotalPages] are ignored.
func (s *Service) SetPage(page int) {
	if page < 1 || page > s.TotalPages() {
		s.logger.Debug().Int("page", page).Int("total_pages", s.TotalPages()).Msg("ignoring out of range page")
		return
	}
	if page == s.state.CurrentPage {
		return
	}

	old := s.state.CurrentPage
	s.state.CurrentPage = page

	s.bus.Publish(domain.PageChangedEvent{
		Table:   s.table,
		OldPage: old,
		NewPage: page,
	})
}

// NextPage moves forward one page if there is one
func (s *Service) NextPage() {
	s.SetPage(s.state.CurrentPage + 1)
}

// PrevPage moves back one page if there is one
func (s *Service) PrevPage() {
	s.SetPage(s.state.CurrentPage - 1)
}

// FirstPage moves to page 1
func (s *Service) FirstPage() {
	s.SetPage(1)
}

// LastPage moves to the last page
func (s *Service) LastPage() {
	s.SetPage(s.TotalPages())
}

// SetPageSize changes the page size and returns to page 1, even when the
// size is unchanged. Sizes outside PageSizeOptions are ignored.
func (s *Service) SetPageSize(size int) {
	if !slices.Contains(s.options, size) {
		s.logger.Debug().Int("page_size", size).Msg("ignoring unsupported page size")
		return
	}

	oldPage := s.state.CurrentPage
	s.state.PageSize = size
	s.state.CurrentPage = 1

	s.bus.Publish(domain.PageSizeChangedEvent{
		Table:    s.table,
		PageSize: size,
	})
	if oldPage != 1 {
		s.bus.Publish(domain.PageChangedEvent{
			Table:   s.table,
			OldPage: oldPage,
			NewPage: 1,
		})
	}
}

// SetTotalItems records the number of rows after filtering. The current
// page is pulled back onto the last page when the data shrinks.
func (s *Service) SetTotalItems(n int) {
	if n < 0 {
		return
	}
	s.state.TotalItems = n

	maxPage := max(s.TotalPages(), 1)
	if s.state.CurrentPage > maxPage {
		old := s.state.CurrentPage
		s.state.CurrentPage = maxPage
		s.bus.Publish(domain.PageChangedEvent{
			Table:   s.table,
			OldPage: old,
			NewPage: maxPage,
		})
	}
}

// Reset returns to page 1 without touching the page size
func (s *Service) Reset() {
	if s.state.CurrentPage == 1 {
		return
	}
	old := s.state.CurrentPage
	s.state.CurrentPage = 1
	s.bus.Publish(domain.PageChangedEvent{
		Table:   s.table,
		OldPage: old,
		NewPage: 1,
	})
}

// Meta returns a snapshot of the current state
func (s *Service) Meta() Meta {
	totalPages := s.TotalPages()
	return Meta{
		CurrentPage: s.state.CurrentPage,
		PageSize:    s.state.PageSize,
		TotalPages:  totalPages,
		TotalItems:  s.state.TotalItems,
		StartIndex:  s.StartIndex(),
		EndIndex:    s.EndIndex(),
		HasPrevious: s.state.CurrentPage > 1,
		HasNext:     s.state.CurrentPage < totalPages,
	}
}
