package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/KromaEnergia/api-empresas/internal/config"
	"github.com/KromaEnergia/api-empresas/internal/logger"
)

// ConnectDataBase abre o pool do Postgres com os parâmetros de cfg.
// O log do GORM sai pelo mesmo zap da aplicação.
func ConnectDataBase(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	gormLog := gormlogger.New(
		zap.NewStdLog(log.Desugar()),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.GormLevel(cfg.LogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  cfg.LogDev,
		},
	)

	database, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("conectar postgres %s:%d/%s: %w", cfg.DBHost, cfg.DBPort, cfg.DBName(), err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnLifetime)

	log.Infow("db_connected", "host", cfg.DBHost, "port", cfg.DBPort, "dbname", cfg.DBName())
	return database, nil
}
