package models

import "github.com/orris-inc/footprint/internal/shared/constants"

// AppUsageModel is the GORM model for app_usage table
type AppUsageModel struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement"`
	AppName     string  `gorm:"column:app_name;type:text;not null"`
	WindowTitle *string `gorm:"column:window_title;type:text"`
	StartTime   int64   `gorm:"column:start_time;type:integer;not null;index:idx_app_start"`
	Duration    int64   `gorm:"column:duration;type:integer;not null"`
}

// TableName returns the table name for GORM
func (AppUsageModel) TableName() string {
	return constants.TableAppUsage
}
