package search

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"dispatchdash/internal/config"
	"dispatchdash/internal/domain"
	"dispatchdash/internal/eventbus"
)

// Service debounces search input for one table. Each input cancels the
// previous pending dispatch. An input is scheduled only when it is empty
// or at least MinLength runes long, and it dispatches after Debounce of
// quiet. Dispatch publishes a SearchSettledEvent and calls the search
// function, both from the timer goroutine.
type Service struct {
	mu       sync.Mutex
	state    *State
	settings Settings
	bus      eventbus.EventBus
	table    domain.TableID
	searchFn func(string)
	schedule Scheduler
	timer    Timer
	logger   zerolog.Logger
}

// NewService creates a search debouncer
func NewService(bus eventbus.EventBus, table domain.TableID, settings Settings) (*Service, error) {
	if settings.MinLength < 0 {
		return nil, fmt.Errorf("%w: got %d", config.ErrInvalidMinSearchLength, settings.MinLength)
	}
	if settings.Debounce < 0 {
		return nil, fmt.Errorf("%w: got %s", config.ErrInvalidDebounce, settings.Debounce)
	}
	if bus == nil {
		bus = eventbus.NullBus{}
	}

	return &Service{
		state:    &State{},
		settings: settings,
		bus:      bus,
		table:    table,
		schedule: afterFunc,
		logger:   config.ComponentLogger("search").With().Str("table", string(table)).Logger(),
	}, nil
}

// SetSearchFunction sets the function called with each settled query
func (s *Service) SetSearchFunction(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchFn = fn
}

// SetScheduler replaces time.AfterFunc
func (s *Service) SetScheduler(fn Scheduler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule = fn
}

// Settings returns the debounce settings
func (s *Service) Settings() Settings {
	return s.settings
}

// OnInput records a new raw query
func (s *Service) OnInput(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Closed {
		return
	}

	s.state.Query = value
	s.cancelLocked()

	if value != "" && utf8.RuneCountInString(value) < s.settings.MinLength {
		return
	}

	gen := s.state.generation
	s.state.Pending = true
	s.timer = s.schedule(s.settings.Debounce, func() {
		s.fire(gen, value)
	})
}

// Cancel drops the pending dispatch, if any
func (s *Service) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

// Close cancels the pending dispatch and ignores all later input
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
	s.state.Closed = true
}

// Pending reports whether a dispatch is scheduled
func (s *Service) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Pending
}

// Query returns the latest raw input
func (s *Service) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Query
}

// Settled returns the last dispatched query
func (s *Service) Settled() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settled
}

func (s *Service) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state.generation++
	s.state.Pending = false
}

func (s *Service) fire(gen uint64, value string) {
	s.mu.Lock()
	if s.state.Closed || gen != s.state.generation {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.state.Pending = false
	s.state.Settled = value
	fn := s.searchFn
	s.mu.Unlock()

	s.logger.Debug().Str("query", value).Msg("search settled")
	if fn != nil {
		fn(value)
	}
	s.bus.Publish(domain.SearchSettledEvent{Table: s.table, Query: value})
}
