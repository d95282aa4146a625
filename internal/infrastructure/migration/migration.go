package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/footprint/internal/shared/logger"
)

// Manager applies the schema with the configured strategy
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewStrategy resolves a store.migration_strategy value.
func NewStrategy(name string, log logger.Interface) (Strategy, error) {
	switch name {
	case StrategyGoose, "":
		return NewGooseStrategy(log), nil
	case StrategyGolangMigrate:
		return NewGolangMigrateStrategy(log), nil
	case StrategyGormAutoMigrate:
		return NewGormAutoMigrateStrategy(log), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", name)
	}
}

// NewManager creates a manager for the named strategy
func NewManager(strategyName string, log logger.Interface) (*Manager, error) {
	strategy, err := NewStrategy(strategyName, log)
	if err != nil {
		return nil, err
	}
	return NewManagerWithStrategy(strategy, log), nil
}

// NewManagerWithStrategy creates a manager around an explicit strategy
func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// GetStrategyInfo returns information about the current strategy
func (m *Manager) GetStrategyInfo() map[string]interface{} {
	return map[string]interface{}{
		"name":        m.strategy.GetName(),
		"description": getStrategyDescription(m.strategy.GetName()),
	}
}

func getStrategyDescription(strategyName string) string {
	switch strategyName {
	case StrategyGoose:
		return "Embedded goose SQL scripts with a goose_db_version table"
	case StrategyGolangMigrate:
		return "Embedded golang-migrate up/down scripts with a schema_migrations table"
	case StrategyGormAutoMigrate:
		return "Schema derived from gorm models, no version tracking"
	default:
		return "Unknown migration strategy"
	}
}
