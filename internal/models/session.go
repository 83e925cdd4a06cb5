package models

import "time"

// AdminSession persists the admin API bearer token for one browser session.
// It is the only thing the dashboard ever stores.
type AdminSession struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Token     string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AdminSession) TableName() string { return "admin_sessions" }
