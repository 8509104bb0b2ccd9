// Package fixtures builds deterministic sample drivers and orders for the
// dashboard and its tests.
package fixtures

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"dispatchdash/internal/domain"
)

// Sample sizes used when the caller does not choose
const (
	DefaultSeed    = 7
	DefaultDrivers = 137
	DefaultOrders  = 412
)

var (
	orderNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("dispatchdash:orders"))
	epoch          = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	firstNames = []string{"Ana", "Ben", "Chloe", "Dario", "Elif", "Femi", "Greta", "Hiro", "Ines", "Jonas", "Kira", "Luca", "Mina", "Noor", "Oskar", "Priya", "Quinn", "Rosa", "Sami", "Tess"}
	lastNames  = []string{"Almeida", "Brandt", "Chen", "Dube", "Eriksen", "Fischer", "Garcia", "Haddad", "Ivanova", "Jensen", "Kowalski", "Lopez", "Moreau", "Nakamura", "Okafor", "Petrov"}
	zones      = []string{"Downtown", "Harbor", "Old Town", "Riverside", "Airport", "University", "Northgate", "Westend"}
	streets    = []string{"Main St", "Elm Ave", "Market Sq", "Harbor Rd", "Station Pl", "Mill Ln", "Park Blvd", "Bridge St", "Canal Way", "Hill Rd"}
	vehicles   = []domain.VehicleType{domain.VehicleBike, domain.VehicleScooter, domain.VehicleCar, domain.VehicleVan, domain.VehicleTruck}
	driverStat = []domain.DriverStatus{domain.DriverAvailable, domain.DriverOnDelivery, domain.DriverOffline}
	orderStat  = []domain.OrderStatus{domain.OrderPending, domain.OrderAssigned, domain.OrderPickedUp, domain.OrderDelivered, domain.OrderCancelled}
)

// Generate returns sample drivers and orders. The same seed and sizes
// always produce the same rows.
func Generate(seed int64, numDrivers, numOrders int) ([]domain.Driver, []domain.Order) {
	rng := rand.New(rand.NewSource(seed))

	drivers := make([]domain.Driver, 0, max(numDrivers, 0))
	for i := 0; i < numDrivers; i++ {
		drivers = append(drivers, domain.Driver{
			ID:         fmt.Sprintf("D%03d", i+1),
			Name:       personName(rng),
			Phone:      fmt.Sprintf("+1 555 %03d %04d", rng.Intn(1000), rng.Intn(10000)),
			Vehicle:    vehicles[rng.Intn(len(vehicles))],
			Status:     driverStat[rng.Intn(len(driverStat))],
			Zone:       zones[rng.Intn(len(zones))],
			Rating:     float64(30+rng.Intn(21)) / 10,
			Deliveries: rng.Intn(2500),
		})
	}

	orders := make([]domain.Order, 0, max(numOrders, 0))
	for i := 0; i < numOrders; i++ {
		status := orderStat[rng.Intn(len(orderStat))]
		var driverID string
		if len(drivers) > 0 && status != domain.OrderPending && status != domain.OrderCancelled {
			driverID = drivers[rng.Intn(len(drivers))].ID
		}
		orders = append(orders, domain.Order{
			ID:          uuid.NewSHA1(orderNamespace, []byte(fmt.Sprintf("%d:%d", seed, i))).String(),
			Customer:    personName(rng),
			Pickup:      address(rng),
			Dropoff:     address(rng),
			DriverID:    driverID,
			Status:      status,
			AmountCents: int64(450 + rng.Intn(15000)),
			CreatedAt:   epoch.Add(time.Duration(i*17+rng.Intn(17)) * time.Minute),
		})
	}

	return drivers, orders
}

func personName(rng *rand.Rand) string {
	return firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
}

func address(rng *rand.Rand) string {
	return fmt.Sprintf("%d %s", 1+rng.Intn(240), streets[rng.Intn(len(streets))])
}
