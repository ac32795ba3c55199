package models

import (
	"time"
)

type Avis struct {
	ID           int       `json:"id"`
	MissionID    int       `json:"mission_id"`
	FreelanceID  int       `json:"freelance_id"`
	EntrepriseID int       `json:"entreprise_id"`
	Note         int       `json:"note"`
	Commentaire  string    `json:"commentaire,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	EntrepriseNom string `json:"entreprise_nom,omitempty"`
	MissionTitre  string `json:"mission_titre,omitempty"`
}

// ConfirmRequest carries the completion confirmation of a mission owner.
type ConfirmRequest struct {
	MissionID   int    `json:"mission_id"`
	Note        int    `json:"note"`
	Commentaire string `json:"commentaire"`
}
