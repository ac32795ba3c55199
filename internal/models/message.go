package models

import (
	"time"
)

type Message struct {
	ID        int       `json:"id"`
	MissionID int       `json:"mission_id"`
	SenderID  int       `json:"sender_id"`
	Contenu   string    `json:"contenu"`
	CreatedAt time.Time `json:"created_at"`

	SenderNom    string  `json:"sender_nom,omitempty"`
	SenderAvatar *string `json:"sender_avatar,omitempty"`
}
