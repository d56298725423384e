package configs

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func (e ENV) DSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		e.DBUser,
		e.DBPassword,
		e.DBHost,
		e.DBPort,
		e.DBName,
	)
}

func (e ENV) dialector() (gorm.Dialector, error) {
	switch e.DBDriver {
	case "", "mysql":
		return mysql.Open(e.DSN()), nil
	case "sqlite":
		return sqlite.Open(e.DBName), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", e.DBDriver)
	}
}

// OpenConnection dials the configured database, retrying DBMaxRetries times
// while the server is not reachable. DB_DRIVER=sqlite treats DB_NAME as the
// database file.
func OpenConnection(cfg ENV, logger *zap.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	dialector, err := cfg.dialector()
	if err != nil {
		return nil, err
	}
	maxRetries := max(cfg.DBMaxRetries, 1)
	gormConfig := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		logger.Info("connecting to database",
			zap.String("host", cfg.DBHost),
			zap.String("database", cfg.DBName),
			zap.Int("attempt", i+1),
			zap.Int("max_attempts", maxRetries))

		db, err := gorm.Open(dialector, gormConfig)
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					logger.Info("database connection established")
					return db, nil
				}
			}
			lastErr = pingErr
		} else {
			lastErr = err
		}

		logger.Warn("database not reachable", zap.Error(lastErr), zap.Duration("retry_in", cfg.DBRetryDelay))
		if i < maxRetries-1 {
			time.Sleep(cfg.DBRetryDelay)
		}
	}

	return nil, fmt.Errorf("connect to database after %d attempts: %w", maxRetries, lastErr)
}
