package search

import "time"

// Settings configure the debouncer
type Settings struct {
	MinLength int           // non-empty queries shorter than this never dispatch
	Debounce  time.Duration // quiet period before a query dispatches
}

// State holds search state
type State struct {
	Query      string // latest raw input
	Settled    string // last dispatched query
	Pending    bool
	Closed     bool
	generation uint64 // bumped on every cancel so a late timer can tell it is stale
}

// Timer is a pending dispatch that can be stopped
type Timer interface {
	Stop() bool
}

// Scheduler runs fn once after d
type Scheduler func(d time.Duration, fn func()) Timer

func afterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
