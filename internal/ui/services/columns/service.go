package columns

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"dispatchdash/internal/config"
	"dispatchdash/internal/domain"
	"dispatchdash/internal/eventbus"
)

// Service owns the column order of one table and the drag gesture that
// rearranges it. A gesture is DragStart, any number of DragOver, then
// exactly one of Drop, DropAfter or DragEnd.
type Service struct {
	state  *State
	bus    eventbus.EventBus
	table  domain.TableID
	known  map[string]bool
	logger zerolog.Logger
}

// NewService creates a column order service over the given ids
func NewService(bus eventbus.EventBus, table domain.TableID, ids []string) (*Service, error) {
	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" {
			return nil, ErrEmptyColumnID
		}
		if known[id] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, id)
		}
		known[id] = true
	}
	if bus == nil {
		bus = eventbus.NullBus{}
	}

	return &Service{
		state:  &State{Order: slices.Clone(ids)},
		bus:    bus,
		table:  table,
		known:  known,
		logger: config.ComponentLogger("columns").With().Str("table", string(table)).Logger(),
	}, nil
}

// Order returns a copy of the current column order
func (s *Service) Order() []string {
	return slices.Clone(s.state.Order)
}

// Dragging returns the id being dragged and whether a gesture is active
func (s *Service) Dragging() (string, bool) {
	return s.state.Dragged, s.state.Dragged != ""
}

// DropTarget returns the column last hovered during the active gesture
func (s *Service) DropTarget() string {
	return s.state.DropTarget
}

// Has reports whether id is one of the table's columns
func (s *Service) Has(id string) bool {
	return s.known[id]
}

// IndexOf returns the position of id in the current order, or -1
func (s *Service) IndexOf(id string) int {
	return slices.Index(s.state.Order, id)
}

// DragStart picks up a column. Unknown ids and a second start while a
// gesture is active are ignored.
func (s *Service) DragStart(id string) {
	if !s.known[id] {
		return
	}
	if s.state.Dragged != "" {
		s.logger.Debug().Str("column", id).Str("dragging", s.state.Dragged).Msg("drag already active")
		return
	}
	s.state.Dragged = id
	s.state.DropTarget = ""
}

// DragOver records the hovered column for highlighting. Order is untouched.
func (s *Service) DragOver(target string) {
	if s.state.Dragged == "" || !s.known[target] {
		return
	}
	s.state.DropTarget = target
}

// Drop moves the dragged column to immediately before target and ends
// the gesture. Dropping on itself or on an unknown id only ends it.
func (s *Service) Drop(target string) {
	s.drop(target, false)
}

// DropAfter moves the dragged column to immediately after target and ends
// the gesture.
func (s *Service) DropAfter(target string) {
	s.drop(target, true)
}

// DragEnd cancels the gesture without changing the order
func (s *Service) DragEnd() {
	s.clearDrag()
}

func (s *Service) drop(target string, after bool) {
	dragged := s.state.Dragged
	defer s.clearDrag()

	if dragged == "" || dragged == target || !s.known[target] {
		return
	}

	order := slices.DeleteFunc(slices.Clone(s.state.Order), func(id string) bool { return id == dragged })
	at := slices.Index(order, target)
	if after {
		at++
	}
	order = slices.Insert(order, at, dragged)

	if slices.Equal(order, s.state.Order) {
		return
	}
	s.state.Order = order

	s.logger.Debug().Str("moved", dragged).Str("target", target).Bool("after", after).Msg("columns reordered")
	s.bus.Publish(domain.ColumnsReorderedEvent{
		Table:  s.table,
		Moved:  dragged,
		Target: target,
		Order:  slices.Clone(order),
	})
}

func (s *Service) clearDrag() {
	s.state.Dragged = ""
	s.state.DropTarget = ""
}
