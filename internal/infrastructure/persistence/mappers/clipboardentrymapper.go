package mappers

import (
	"github.com/orris-inc/footprint/internal/domain/clipboard"
	"github.com/orris-inc/footprint/internal/infrastructure/persistence/models"
)

// ClipboardEntryMapper converts between clipboard entries and clipboard rows
type ClipboardEntryMapper interface {
	ToDomain(model *models.ClipboardModel) *clipboard.Entry
	ToModel(domain *clipboard.Entry) *models.ClipboardModel
}

type clipboardEntryMapper struct{}

func NewClipboardEntryMapper() ClipboardEntryMapper {
	return &clipboardEntryMapper{}
}

func (m *clipboardEntryMapper) ToDomain(model *models.ClipboardModel) *clipboard.Entry {
	if model == nil {
		return nil
	}
	return clipboard.ReconstructEntry(model.ID, model.Content, model.Timestamp, model.AppName)
}

func (m *clipboardEntryMapper) ToModel(domain *clipboard.Entry) *models.ClipboardModel {
	if domain == nil {
		return nil
	}
	return &models.ClipboardModel{
		ID:        domain.ID(),
		Content:   domain.Content(),
		Timestamp: domain.Timestamp(),
		AppName:   domain.AppName(),
	}
}
