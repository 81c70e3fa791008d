package models

import "time"

// Alert is a stored, user-visible notification (e.g. a high flare-risk
// warning) also broadcast over the realtime hub.
type Alert struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"` // uuid
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
