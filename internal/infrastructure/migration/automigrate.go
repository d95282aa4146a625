package migration

import (
	"github.com/orris-inc/footprint/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists the models managed by the gorm_auto_migrate strategy.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AppUsageModel{},
		&models.ClipboardModel{},
	}
}
