package cmd

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-logistics/app/configs"
	"github.com/Rakhulsr/go-logistics/app/repositories"
	"github.com/Rakhulsr/go-logistics/app/services/exchange"
	"github.com/Rakhulsr/go-logistics/app/services/rating"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app carries what every command needs. db stays nil until openDB is called.
type app struct {
	env    configs.ENV
	tables configs.Tables
	logger *zap.Logger
	db     *gorm.DB
}

func loadApp() (*app, error) {
	env, err := configs.LoadEnv()
	if err != nil {
		return nil, err
	}

	logger, err := configs.NewLogger(env.LogLevel, env.IsProduction())
	if err != nil {
		return nil, err
	}

	tables, err := configs.LoadTables(env.TablesFile)
	if err != nil {
		return nil, err
	}

	return &app{env: env, tables: tables, logger: logger}, nil
}

func (a *app) openDB() (*gorm.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := configs.OpenConnection(a.env, a.logger)
	if err != nil {
		return nil, err
	}
	a.db = db
	return db, nil
}

func (a *app) close() {
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = a.logger.Sync()
}

// ratingEngine loads the active carrier catalog and wires the gorm-backed
// lookups into a new engine.
func (a *app) ratingEngine(ctx context.Context) (*rating.Engine, error) {
	db, err := a.openDB()
	if err != nil {
		return nil, err
	}

	catalog, err := repositories.NewCarrierRepository(db).Catalog(ctx)
	if err != nil {
		return nil, err
	}

	cfg := a.tables.Rating
	cfg.Carriers = catalog
	engine, err := rating.NewEngine(cfg,
		repositories.NewZoneRuleRepository(db),
		repositories.NewRateCardRepository(db),
		repositories.NewPerformanceRepository(db),
		a.logger)
	if err != nil {
		return nil, fmt.Errorf("build rating engine: %w", err)
	}
	return engine, nil
}

// valuator uses the remote pricing service when PRICING_API_URL is set and
// offline is false.
func (a *app) valuator(offline bool) (*exchange.Valuator, error) {
	var pricing exchange.PricingService
	if a.env.PricingAPIURL != "" && !offline {
		pricing = exchange.NewHTTPPricingClient(a.env.PricingAPIURL, a.env.PricingAPIKey, a.env.PricingAPITimeout)
	}
	return exchange.NewValuator(a.tables.Exchange, pricing, a.logger)
}
