// Package model holds the GORM persistence models, kept separate from the
// pure domain entities so database tags never leak into the domain layer.
package model

import "time"

// AccountModel mirrors the 'accounts' table. The unique index on handle is
// the authoritative guard against duplicate registrations.
type AccountModel struct {
	ID           uint   `gorm:"primaryKey"`
	Handle       string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	City         string `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
