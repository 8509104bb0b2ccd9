package cli

import (
	"fmt"

	"dispatchdash/internal/config"
	"dispatchdash/internal/domain"
	"dispatchdash/internal/eventbus"
	"dispatchdash/internal/fixtures"
	"dispatchdash/internal/logic"
	"dispatchdash/internal/ui/coordinator"
)

// sampleStores generates the sample rows and wraps them in record stores
func sampleStores(data dataFlags) map[domain.TableID]logic.RecordStore {
	drivers, orders := fixtures.Generate(data.seed, data.drivers, data.orders)
	return map[domain.TableID]logic.RecordStore{
		domain.TableDrivers: logic.NewDriverStore(drivers),
		domain.TableOrders:  logic.NewOrderStore(orders),
	}
}

// buildTables creates one coordinator per table, in tab order
func buildTables(bus eventbus.EventBus, cfg *config.Config, stores map[domain.TableID]logic.RecordStore) ([]*coordinator.Coordinator, error) {
	tables := make([]*coordinator.Coordinator, 0, len(domain.Tables))
	for _, id := range domain.Tables {
		c, err := coordinator.NewFromConfig(bus, cfg, id, stores[id])
		if err != nil {
			for _, built := range tables {
				built.Close()
			}
			return nil, fmt.Errorf("failed to set up %s table: %w", id, err)
		}
		tables = append(tables, c)
	}
	return tables, nil
}
