package handlers

import (
	"fmt"

	"dispatchdash/internal/domain"
	"dispatchdash/internal/eventbus"
	"dispatchdash/internal/ui/coordinator"
)

// TableLookup returns the coordinator of a table, or nil
type TableLookup func(domain.TableID) *coordinator.Coordinator

// EventHandler applies domain events delivered from the bus to the tables
type EventHandler struct {
	tables TableLookup
}

// NewEventHandler creates a new event handler
func NewEventHandler(tables TableLookup) *EventHandler {
	return &EventHandler{tables: tables}
}

// HandleEvent processes a domain event and returns the status message to
// show, or "" for none
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) string {
	switch e := event.(type) {
	case domain.SearchSettledEvent:
		c := h.tables(e.Table)
		if c == nil {
			return ""
		}
		// Deliveries can arrive out of order; only the latest settle applies
		if e.Query != c.Search.Settled() {
			return ""
		}
		c.ApplySearch(e.Query)
		if e.Query == "" {
			return ""
		}
		return fmt.Sprintf("%d matches for %q", len(c.Rows()), e.Query)

	case domain.ErrorEvent:
		if e.Err != nil {
			return fmt.Sprintf("Error: %s: %v", e.Message, e.Err)
		}
		return fmt.Sprintf("Error: %s", e.Message)
	}

	return ""
}
