package db

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/KromaEnergia/api-empresas/internal/config"
	"github.com/KromaEnergia/api-empresas/internal/logger"
	"github.com/KromaEnergia/api-empresas/internal/models"
)

// GetDB conecta e, se DB_AUTO_MIGRATE estiver ligado, cria/atualiza as tabelas.
func GetDB(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	database, err := ConnectDataBase(cfg, log)
	if err != nil {
		return nil, err
	}
	if cfg.DBAutoMigrate {
		if err := models.Migrate(database); err != nil {
			_ = Close(database)
			return nil, err
		}
		log.Infow("db_migrated")
	}
	return database, nil
}

// Ping é usado pelo /healthz.
func Ping(ctx context.Context, database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
