package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/footprint/internal/domain/clipboard"
	"github.com/orris-inc/footprint/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/footprint/internal/infrastructure/persistence/models"
	apperrors "github.com/orris-inc/footprint/internal/shared/errors"
	"github.com/orris-inc/footprint/internal/shared/logger"
)

// ClipboardRepository implements clipboard.Repository
type ClipboardRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.ClipboardEntryMapper
}

func NewClipboardRepository(db *gorm.DB, logger logger.Interface) *ClipboardRepository {
	return &ClipboardRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewClipboardEntryMapper(),
	}
}

// Save appends an entry
func (r *ClipboardRepository) Save(ctx context.Context, e *clipboard.Entry) error {
	model := r.mapper.ToModel(e)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.NewWriteFailedError("insert clipboard", err,
			fmt.Sprintf("timestamp=%d", e.Timestamp()))
	}

	e.SetID(model.ID)
	r.logger.Debugw("clipboard entry stored", "id", model.ID, "timestamp", e.Timestamp())
	return nil
}

// LastContent returns the content of the newest entry by insertion order
func (r *ClipboardRepository) LastContent(ctx context.Context) (*string, error) {
	var model models.ClipboardModel

	err := r.db.WithContext(ctx).
		Select("content").
		Order("id DESC").
		Limit(1).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last clipboard content: %w", err)
	}

	return &model.Content, nil
}
