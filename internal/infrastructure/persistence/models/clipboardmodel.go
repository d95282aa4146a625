package models

import "github.com/orris-inc/footprint/internal/shared/constants"

// ClipboardModel is the GORM model for clipboard table
type ClipboardModel struct {
	ID        uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Content   string  `gorm:"column:content;type:text;not null"`
	Timestamp int64   `gorm:"column:timestamp;type:integer;not null;index:idx_timestamp"`
	AppName   *string `gorm:"column:app_name;type:text"`
}

// TableName returns the table name for GORM
func (ClipboardModel) TableName() string {
	return constants.TableClipboard
}
