package seeders

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Seeder struct {
	Name   string
	Seeder interface{}
}

func SeedersRegister() []Seeder {
	network := DemoNetwork()
	return []Seeder{
		{Name: "carriers", Seeder: &network.Carriers},
		{Name: "zone_rules", Seeder: &network.ZoneRules},
		{Name: "rate_cards", Seeder: &network.RateCards},
		{Name: "carrier_performance", Seeder: &network.Performance},
	}
}

// DBSeed inserts the demo network. Rows whose unique keys already exist are
// left untouched, so seeding twice is harmless.
func DBSeed(ctx context.Context, db *gorm.DB) error {
	for _, seeder := range SeedersRegister() {
		err := db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			CreateInBatches(seeder.Seeder, 100).Error
		if err != nil {
			return fmt.Errorf("seed %s: %w", seeder.Name, err)
		}
	}
	return nil
}
