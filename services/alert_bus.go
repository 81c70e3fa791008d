package services

import (
	"time"

	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub) {
	_alert = alertDeps{db: db, rt: rt}
}

// EmitAlert stores an alert and broadcasts it to the user's connected
// clients. Safe to call anywhere; a no-op before InitAlertDeps.
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return // not initialized
	}
	a := &models.Alert{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		Message:   message,
		CreatedAt: time.Now(),
	}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
}
