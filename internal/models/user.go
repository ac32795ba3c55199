package models

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Role values stored on utilisateurs.role.
const (
	RoleFreelance  = 1
	RoleEntreprise = 2
	RoleAdmin      = 3
)

type User struct {
	ID          int        `json:"id"`
	Nom         string     `json:"nom"`
	Email       string     `json:"email,omitempty"`
	Password    string     `json:"password,omitempty"`
	Role        int        `json:"role"`
	Bio         string     `json:"bio,omitempty"`
	Competences []string   `json:"competences,omitempty"`
	Ville       string     `json:"ville,omitempty"`
	AvatarPath  *string    `json:"avatar_path,omitempty"`
	CVPath      *string    `json:"cv_path,omitempty"`
	SiteWeb     string     `json:"site_web,omitempty"`
	Linkedin    string     `json:"linkedin,omitempty"`
	NoteMoyenne float64    `json:"note_moyenne"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type Claims struct {
	UserID uint `json:"user_id"`
	Role   int  `json:"role"`
	jwt.StandardClaims
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Session struct {
	UserID       int       `json:"user_id"`
	Role         int       `json:"role"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type SignUpRequest struct {
	Nom      string `json:"nom"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     int    `json:"role"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdatePasswordRequest struct {
	UserID      int    `json:"user_id"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// TalentFilter narrows the freelance search on the talents page.
type TalentFilter struct {
	Competence string  `json:"competence"`
	Ville      string  `json:"ville"`
	NoteMin    float64 `json:"note_min"`
}
