package models

import (
	"time"
)

type Post struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Contenu   string    `json:"contenu"`
	ImagePath *string   `json:"image_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	AuteurNom    string  `json:"auteur_nom,omitempty"`
	AuteurAvatar *string `json:"auteur_avatar,omitempty"`
	AuteurRole   int     `json:"auteur_role,omitempty"`
}
