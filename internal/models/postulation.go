package models

import (
	"time"
)

type Postulation struct {
	ID          int       `json:"id"`
	MissionID   int       `json:"mission_id"`
	FreelanceID int       `json:"freelance_id"`
	Statut      string    `json:"statut"`
	Message     string    `json:"message,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	// Joined for the entreprise review screen.
	FreelanceNom    string   `json:"freelance_nom,omitempty"`
	FreelanceAvatar *string  `json:"freelance_avatar,omitempty"`
	FreelanceNote   float64  `json:"freelance_note,omitempty"`
	Competences     []string `json:"freelance_competences,omitempty"`
	MissionTitre    string   `json:"mission_titre,omitempty"`
	MissionStatut   string   `json:"mission_statut,omitempty"`
}
