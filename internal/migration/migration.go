package migration

import (
	catalogdomain "github.com/smallbiznis/cotiza/internal/catalog/domain"
	clientdomain "github.com/smallbiznis/cotiza/internal/client/domain"
	quotedomain "github.com/smallbiznis/cotiza/internal/quote/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func migrate(db *gorm.DB, log *zap.Logger) error {
	err := db.AutoMigrate(
		&clientdomain.Client{},
		&catalogdomain.CatalogService{},
		&quotedomain.PackageSnapshot{},
	)
	if err != nil {
		return err
	}
	log.Info("database schema migrated")
	return nil
}

// Module runs schema migration at startup.
var Module = fx.Module("migration",
	fx.Invoke(migrate),
)
