package mappers

import (
	"github.com/orris-inc/footprint/internal/domain/usage"
	"github.com/orris-inc/footprint/internal/infrastructure/persistence/models"
)

// UsageSessionMapper converts between usage sessions and app_usage rows
type UsageSessionMapper interface {
	ToDomain(model *models.AppUsageModel) *usage.Session
	ToModel(domain *usage.Session) *models.AppUsageModel
}

type usageSessionMapper struct{}

func NewUsageSessionMapper() UsageSessionMapper {
	return &usageSessionMapper{}
}

func (m *usageSessionMapper) ToDomain(model *models.AppUsageModel) *usage.Session {
	if model == nil {
		return nil
	}
	return usage.ReconstructSession(model.ID, model.AppName, model.WindowTitle, model.StartTime, model.Duration)
}

func (m *usageSessionMapper) ToModel(domain *usage.Session) *models.AppUsageModel {
	if domain == nil {
		return nil
	}
	return &models.AppUsageModel{
		ID:          domain.ID(),
		AppName:     domain.AppName(),
		WindowTitle: domain.WindowTitle(),
		StartTime:   domain.StartTime(),
		Duration:    domain.Duration(),
	}
}
