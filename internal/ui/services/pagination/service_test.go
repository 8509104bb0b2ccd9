package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatchdash/internal/config"
	"dispatchdash/internal/domain"
	"dispatchdash/internal/eventbus"
	"dispatchdash/internal/eventbus/eventbustest"
)

func newService(t *testing.T, pageSize, total int) (*Service, *eventbustest.Recorder) {
	t.Helper()
	bus := eventbustest.NewRecorder()
	s, err := NewService(bus, domain.TableOrders, pageSize)
	require.NoError(t, err)
	s.SetTotalItems(total)
	bus.Reset()
	return s, bus
}

func TestNewServiceRejectsUnsupportedPageSize(t *testing.T) {
	_, err := NewService(nil, domain.TableOrders, 15)
	require.ErrorIs(t, err, config.ErrInvalidPageSize)
}

func TestTotalPagesIsCeiling(t *testing.T) {
	for _, size := range []int{10, 20, 50, 100} {
		for _, total := range []int{0, 1, size - 1, size, size + 1, 3*size - 1, 3 * size, 997} {
			s, _ := newService(t, size, total)
			want := (total + size - 1) / size
			assert.Equal(t, want, s.TotalPages(), "size=%d total=%d", size, total)
		}
	}
}

func TestSliceBoundsForEveryPage(t *testing.T) {
	for _, size := range []int{10, 20, 50, 100} {
		total := 2*size + 7
		s, _ := newService(t, size, total)
		for page := 1; page <= s.TotalPages(); page++ {
			s.SetPage(page)
			start, end := s.CurrentSlice()
			assert.Equal(t, (page-1)*size, start)
			assert.Equal(t, min(start+size, total), end)
		}
	}
}

func TestSetPageOutOfRangeIsNoop(t *testing.T) {
	s, bus := newService(t, 10, 45)
	s.SetPage(3)
	bus.Reset()

	for _, p := range []int{0, -1, 6, 100} {
		s.SetPage(p)
		assert.Equal(t, 3, s.CurrentPage(), "page %d", p)
	}
	assert.Empty(t, bus.Events())
}

func TestSetPagePublishesChange(t *testing.T) {
	s, bus := newService(t, 10, 45)

	s.SetPage(2)

	events := bus.OfType(eventbus.EventPageChanged)
	require.Len(t, events, 1)
	assert.Equal(t, domain.PageChangedEvent{Table: domain.TableOrders, OldPage: 1, NewPage: 2}, events[0])
}

func TestSetPageSizeResetsToFirstPage(t *testing.T) {
	s, _ := newService(t, 10, 500)

	s.SetPage(7)
	s.SetPageSize(50)
	assert.Equal(t, 1, s.CurrentPage())
	assert.Equal(t, 50, s.PageSize())

	s.SetPage(4)
	s.SetPageSize(50)
	assert.Equal(t, 1, s.CurrentPage(), "same size still resets")
}

func TestSetPageSizeIgnoresUnsupportedSize(t *testing.T) {
	s, bus := newService(t, 20, 500)
	s.SetPage(3)
	bus.Reset()

	s.SetPageSize(30)

	assert.Equal(t, 20, s.PageSize())
	assert.Equal(t, 3, s.CurrentPage())
	assert.Empty(t, bus.Events())
}

func TestSetTotalItemsClampsCurrentPage(t *testing.T) {
	s, bus := newService(t, 10, 100)
	s.SetPage(10)
	bus.Reset()

	s.SetTotalItems(35)
	assert.Equal(t, 4, s.CurrentPage())
	require.Len(t, bus.OfType(eventbus.EventPageChanged), 1)

	s.SetTotalItems(0)
	assert.Equal(t, 1, s.CurrentPage())
	assert.Equal(t, 0, s.TotalPages())
	start, end := s.CurrentSlice()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)

	s.SetTotalItems(-4)
	assert.Equal(t, 0, s.TotalItems())
}

func TestEmptyTableStaysOnFirstPage(t *testing.T) {
	s, _ := newService(t, 10, 0)

	s.SetPage(1)
	s.NextPage()
	s.LastPage()

	assert.Equal(t, 1, s.CurrentPage())
	assert.Empty(t, s.PageSequence())
}

func TestNavigationHelpers(t *testing.T) {
	s, _ := newService(t, 10, 95)

	s.NextPage()
	assert.Equal(t, 2, s.CurrentPage())
	s.LastPage()
	assert.Equal(t, 10, s.CurrentPage())
	s.NextPage()
	assert.Equal(t, 10, s.CurrentPage())
	s.PrevPage()
	assert.Equal(t, 9, s.CurrentPage())
	s.FirstPage()
	assert.Equal(t, 1, s.CurrentPage())
	s.PrevPage()
	assert.Equal(t, 1, s.CurrentPage())
}

func TestMeta(t *testing.T) {
	s, _ := newService(t, 20, 45)
	s.SetPage(3)

	assert.Equal(t, Meta{
		CurrentPage: 3,
		PageSize:    20,
		TotalPages:  3,
		TotalItems:  45,
		StartIndex:  40,
		EndIndex:    45,
		HasPrevious: true,
		HasNext:     false,
	}, s.Meta())
}

func TestPageSizeOptionsIsACopy(t *testing.T) {
	s, _ := newService(t, 10, 0)
	opts := s.PageSizeOptions()
	opts[0] = 7

	assert.Equal(t, []int{10, 20, 50, 100}, s.PageSizeOptions())
}

func TestPageSequenceFollowsState(t *testing.T) {
	s, _ := newService(t, 10, 100)
	s.SetPage(5)

	assert.Equal(t, []PageMarker{1, L, 4, 5, 6, R, 10}, s.PageSequence())
}
