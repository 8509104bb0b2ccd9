package columns

import (
	"slices"

	"dispatchdash/internal/domain"
	"dispatchdash/internal/eventbus"
)

// Visibility is the set of shown columns of one table. At least one
// column stays visible.
type Visibility struct {
	bus     eventbus.EventBus
	table   domain.TableID
	known   []string
	visible map[string]bool
}

// NewVisibility creates a visibility set over known ids with the given
// ids shown. Unknown ids in visible are dropped. If nothing known is
// visible, every column is shown.
func NewVisibility(bus eventbus.EventBus, table domain.TableID, known, visible []string) *Visibility {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	v := &Visibility{
		bus:     bus,
		table:   table,
		known:   slices.Clone(known),
		visible: make(map[string]bool, len(known)),
	}
	for _, id := range visible {
		if slices.Contains(known, id) {
			v.visible[id] = true
		}
	}
	if len(v.visible) == 0 {
		for _, id := range known {
			v.visible[id] = true
		}
	}
	return v
}

// IsVisible reports whether id is shown
func (v *Visibility) IsVisible(id string) bool {
	return v.visible[id]
}

// Visible returns the shown ids in the order they were declared
func (v *Visibility) Visible() []string {
	out := make([]string, 0, len(v.visible))
	for _, id := range v.known {
		if v.visible[id] {
			out = append(out, id)
		}
	}
	return out
}

// Set returns a copy of the shown ids as a set
func (v *Visibility) Set() map[string]bool {
	out := make(map[string]bool, len(v.visible))
	for id := range v.visible {
		out[id] = true
	}
	return out
}

// Count returns how many columns are shown
func (v *Visibility) Count() int {
	return len(v.visible)
}

// Show makes id visible
func (v *Visibility) Show(id string) {
	if !slices.Contains(v.known, id) || v.visible[id] {
		return
	}
	v.visible[id] = true
	v.bus.Publish(domain.VisibilityChangedEvent{Table: v.table, Column: id, Visible: true})
}

// Hide hides id unless it is the last visible column
func (v *Visibility) Hide(id string) {
	if !v.visible[id] || len(v.visible) == 1 {
		return
	}
	delete(v.visible, id)
	v.bus.Publish(domain.VisibilityChangedEvent{Table: v.table, Column: id, Visible: false})
}

// Toggle flips the visibility of id
func (v *Visibility) Toggle(id string) {
	if v.visible[id] {
		v.Hide(id)
	} else {
		v.Show(id)
	}
}

// ShowAll makes every known column visible
func (v *Visibility) ShowAll() {
	for _, id := range v.known {
		v.Show(id)
	}
}
