package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dispatchdash/internal/domain"
)

func sampleRecords() []domain.Record {
	return []domain.Record{
		&domain.Driver{ID: "D001", Name: "Ana Chen", Zone: "Harbor", Status: domain.DriverAvailable, Vehicle: domain.VehicleBike},
		&domain.Driver{ID: "D002", Name: "Ben Lopez", Zone: "Downtown", Status: domain.DriverOnDelivery, Vehicle: domain.VehicleVan},
		&domain.Driver{ID: "D003", Name: "Rosa Haddad", Zone: "Harborside", Status: domain.DriverOffline, Vehicle: domain.VehicleCar},
	}
}

func keysOf(records []domain.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Key()
	}
	return out
}

func TestFilterRecords(t *testing.T) {
	cols := domain.ColumnIDs(domain.DriverColumns())

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty matches all", query: "", want: []string{"D001", "D002", "D003"}},
		{name: "whitespace matches all", query: "   ", want: []string{"D001", "D002", "D003"}},
		{name: "case insensitive name", query: "LOPEZ", want: []string{"D002"}},
		{name: "substring of zone", query: "harb", want: []string{"D001", "D003"}},
		{name: "vehicle cell", query: "van", want: []string{"D002"}},
		{name: "no match", query: "zzz", want: []string{}},
		{name: "status filter", query: "status:available", want: []string{"D001"}},
		{name: "status prefix", query: "Status:off", want: []string{"D003"}},
		{name: "status with space", query: "status:on delivery", want: []string{"D002"}},
		{name: "busy alias", query: "status:busy", want: []string{"D002"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keysOf(FilterRecords(sampleRecords(), cols, tt.query)))
		})
	}
}

func TestFilterOnlySearchesGivenColumns(t *testing.T) {
	got := FilterRecords(sampleRecords(), []string{"name"}, "harbor")
	assert.Empty(t, got)
}

func TestUnassignedOrders(t *testing.T) {
	records := []domain.Record{
		&domain.Order{ID: "o1", Status: domain.OrderPending},
		&domain.Order{ID: "o2", Status: domain.OrderAssigned, DriverID: "D001"},
	}

	got := FilterRecords(records, domain.ColumnIDs(domain.OrderColumns()), "status:unassigned")

	assert.Equal(t, []string{"o1"}, keysOf(got))
}

func TestHighlightRange(t *testing.T) {
	start, end, ok := HighlightRange("Ana Chen", "CHE")
	assert.True(t, ok)
	assert.Equal(t, 4, start)
	assert.Equal(t, 7, end)

	_, _, ok = HighlightRange("Ana Chen", "status:available")
	assert.False(t, ok)
	_, _, ok = HighlightRange("Ana Chen", "")
	assert.False(t, ok)
	_, _, ok = HighlightRange("Ana Chen", "xyz")
	assert.False(t, ok)
}
