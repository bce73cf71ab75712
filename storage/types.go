package storage

import "time"

// SaveRecord is one row of save history
type SaveRecord struct {
	ID           uint      `gorm:"primaryKey"`
	ConfigPath   string    `gorm:"index;not null"`
	BackupPath   string
	BindingCount int       `gorm:"not null"`
	SavedAt      time.Time `gorm:"index;not null"`
}
