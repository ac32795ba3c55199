package models

import (
	"time"
)

type Mission struct {
	ID           int        `json:"id"`
	Titre        string     `json:"titre"`
	Description  string     `json:"description"`
	Competences  []string   `json:"competences"`
	Duree        string     `json:"duree"`
	Budget       float64    `json:"budget"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	Localisation string     `json:"localisation,omitempty"`
	Niveau       string     `json:"niveau,omitempty"`
	TypeContrat  string     `json:"type_contrat,omitempty"`
	EntrepriseID int        `json:"entreprise_id"`
	Statut       string     `json:"statut"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`

	// Joined for listing screens.
	EntrepriseNom    string  `json:"entreprise_nom,omitempty"`
	EntrepriseAvatar *string `json:"entreprise_avatar,omitempty"`
	NbPostulations   int     `json:"nb_postulations,omitempty"`
}

type MissionFilter struct {
	Statut     string  `json:"statut"`
	Competence string  `json:"competence"`
	BudgetMin  float64 `json:"budget_min"`
	BudgetMax  float64 `json:"budget_max"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
}

// MissionEvent is pushed over the websocket hub when a mission changes state.
type MissionEvent struct {
	Type      string    `json:"type"`
	MissionID int       `json:"mission_id"`
	Statut    string    `json:"statut,omitempty"`
	UserID    int       `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
