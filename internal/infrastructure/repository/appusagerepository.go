package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/footprint/internal/domain/usage"
	"github.com/orris-inc/footprint/internal/infrastructure/persistence/mappers"
	apperrors "github.com/orris-inc/footprint/internal/shared/errors"
	"github.com/orris-inc/footprint/internal/shared/logger"
)

// AppUsageRepository implements usage.Repository
type AppUsageRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.UsageSessionMapper
}

func NewAppUsageRepository(db *gorm.DB, logger logger.Interface) *AppUsageRepository {
	return &AppUsageRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewUsageSessionMapper(),
	}
}

// Save appends a closed session. Failures are returned, not logged; the
// caller owns the error report.
func (r *AppUsageRepository) Save(ctx context.Context, s *usage.Session) error {
	model := r.mapper.ToModel(s)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.NewWriteFailedError("insert app_usage", err,
			fmt.Sprintf("app=%s start_time=%d", s.AppName(), s.StartTime()))
	}

	s.SetID(model.ID)
	r.logger.Debugw("usage session stored", "id", model.ID, "app", s.AppName(), "duration", s.Duration())
	return nil
}
