package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchSettled     EventType = "SearchSettled"
	EventPageChanged       EventType = "PageChanged"
	EventPageSizeChanged   EventType = "PageSizeChanged"
	EventColumnsReordered  EventType = "ColumnsReordered"
	EventVisibilityChanged EventType = "VisibilityChanged"
	EventSortChanged       EventType = "SortChanged"
	EventDataLoaded        EventType = "DataLoaded"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchSettledEvent is emitted when a debounced search query settles
type SearchSettledEvent struct {
	Table TableID
	Query string
}

func (e SearchSettledEvent) Type() EventType { return EventSearchSettled }

// PageChangedEvent is emitted when the current page changes
type PageChangedEvent struct {
	Table   TableID
	OldPage int
	NewPage int
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// PageSizeChangedEvent is emitted when the page size is set
type PageSizeChangedEvent struct {
	Table    TableID
	PageSize int
}

func (e PageSizeChangedEvent) Type() EventType { return EventPageSizeChanged }

// ColumnsReorderedEvent is emitted when a drop commits a new column order
type ColumnsReorderedEvent struct {
	Table  TableID
	Moved  string
	Target string
	Order  []string
}

func (e ColumnsReorderedEvent) Type() EventType { return EventColumnsReordered }

// VisibilityChangedEvent is emitted when a column is shown or hidden
type VisibilityChangedEvent struct {
	Table   TableID
	Column  string
	Visible bool
}

func (e VisibilityChangedEvent) Type() EventType { return EventVisibilityChanged }

// SortChangedEvent is emitted when the sort column or direction changes
type SortChangedEvent struct {
	Table      TableID
	Column     string // "" when sorting is cleared
	Descending bool
}

func (e SortChangedEvent) Type() EventType { return EventSortChanged }

// DataLoadedEvent is emitted when a record store is (re)populated
type DataLoadedEvent struct {
	Table TableID
	Count int
}

func (e DataLoadedEvent) Type() EventType { return EventDataLoaded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
