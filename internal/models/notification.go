package models

import (
	"time"
)

// DeviceToken links a user to an FCM registration token.
type DeviceToken struct {
	UserID    int       `json:"user_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}
