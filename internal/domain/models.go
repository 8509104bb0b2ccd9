package domain

import (
	"fmt"
	"strconv"
	"time"
)

// TableID identifies one of the dashboard tables
type TableID string

const (
	TableDrivers TableID = "drivers"
	TableOrders  TableID = "orders"
)

// Tables lists the dashboard tables in tab order
var Tables = []TableID{TableDrivers, TableOrders}

// Title returns the tab label for the table
func (t TableID) Title() string {
	switch t {
	case TableDrivers:
		return "Drivers"
	case TableOrders:
		return "Orders"
	default:
		return string(t)
	}
}

// Column describes one table column. Order is not stored here; it is held
// by the column order service as a sequence of ids.
type Column struct {
	ID    string
	Label string
	Width int // preferred cell width in the terminal renderer
}

// Record is a row the table can render, filter and sort
type Record interface {
	Key() string
	Cell(columnID string) string
	StatusText() string
}

// VehicleType is the kind of vehicle a driver uses
type VehicleType string

const (
	VehicleBike    VehicleType = "bike"
	VehicleScooter VehicleType = "scooter"
	VehicleCar     VehicleType = "car"
	VehicleVan     VehicleType = "van"
	VehicleTruck   VehicleType = "truck"
)

// Icon returns a single glyph for the vehicle
func (v VehicleType) Icon() string {
	switch v {
	case VehicleBike:
		return "🚲"
	case VehicleScooter:
		return "🛵"
	case VehicleCar:
		return "🚗"
	case VehicleVan:
		return "🚐"
	case VehicleTruck:
		return "🚚"
	default:
		return "?"
	}
}

// DriverStatus is the availability of a driver
type DriverStatus string

const (
	DriverAvailable  DriverStatus = "available"
	DriverOnDelivery DriverStatus = "on_delivery"
	DriverOffline    DriverStatus = "offline"
)

// Driver represents a courier
type Driver struct {
	ID         string
	Name       string
	Phone      string
	Vehicle    VehicleType
	Status     DriverStatus
	Zone       string
	Rating     float64
	Deliveries int
}

func (d *Driver) Key() string        { return d.ID }
func (d *Driver) StatusText() string { return string(d.Status) }

// Cell returns the display text for a driver column
func (d *Driver) Cell(columnID string) string {
	switch columnID {
	case "id":
		return d.ID
	case "name":
		return d.Name
	case "phone":
		return d.Phone
	case "vehicle":
		return string(d.Vehicle)
	case "status":
		return string(d.Status)
	case "zone":
		return d.Zone
	case "rating":
		return strconv.FormatFloat(d.Rating, 'f', 1, 64)
	case "deliveries":
		return strconv.Itoa(d.Deliveries)
	default:
		return ""
	}
}

// OrderStatus is the lifecycle stage of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAssigned  OrderStatus = "assigned"
	OrderPickedUp  OrderStatus = "picked_up"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Order represents a delivery order
type Order struct {
	ID          string
	Customer    string
	Pickup      string
	Dropoff     string
	DriverID    string // "" if unassigned
	Status      OrderStatus
	AmountCents int64
	CreatedAt   time.Time
}

func (o *Order) Key() string        { return o.ID }
func (o *Order) StatusText() string { return string(o.Status) }

// Cell returns the display text for an order column
func (o *Order) Cell(columnID string) string {
	switch columnID {
	case "id":
		if len(o.ID) > 8 {
			return o.ID[:8]
		}
		return o.ID
	case "customer":
		return o.Customer
	case "pickup":
		return o.Pickup
	case "dropoff":
		return o.Dropoff
	case "driver":
		if o.DriverID == "" {
			return "-"
		}
		return o.DriverID
	case "status":
		return string(o.Status)
	case "amount":
		return fmt.Sprintf("%d.%02d", o.AmountCents/100, o.AmountCents%100)
	case "created":
		return o.CreatedAt.Format("2006-01-02 15:04")
	default:
		return ""
	}
}

// DriverColumns returns the known driver columns in their default order
func DriverColumns() []Column {
	return []Column{
		{ID: "name", Label: "Name", Width: 18},
		{ID: "vehicle", Label: "Vehicle", Width: 9},
		{ID: "status", Label: "Status", Width: 12},
		{ID: "zone", Label: "Zone", Width: 12},
		{ID: "rating", Label: "Rating", Width: 6},
		{ID: "deliveries", Label: "Deliveries", Width: 10},
		{ID: "phone", Label: "Phone", Width: 14},
		{ID: "id", Label: "ID", Width: 6},
	}
}

// OrderColumns returns the known order columns in their default order
func OrderColumns() []Column {
	return []Column{
		{ID: "id", Label: "Order", Width: 8},
		{ID: "customer", Label: "Customer", Width: 16},
		{ID: "status", Label: "Status", Width: 10},
		{ID: "driver", Label: "Driver", Width: 6},
		{ID: "pickup", Label: "Pickup", Width: 16},
		{ID: "dropoff", Label: "Dropoff", Width: 16},
		{ID: "amount", Label: "Amount", Width: 8},
		{ID: "created", Label: "Created", Width: 16},
	}
}

// ColumnsFor returns the known columns of a table
func ColumnsFor(table TableID) []Column {
	switch table {
	case TableDrivers:
		return DriverColumns()
	case TableOrders:
		return OrderColumns()
	default:
		return nil
	}
}

// ColumnIDs extracts the ids of the given columns, preserving order
func ColumnIDs(columns []Column) []string {
	ids := make([]string, 0, len(columns))
	for _, c := range columns {
		ids = append(ids, c.ID)
	}
	return ids
}
