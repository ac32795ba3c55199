package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"miraBack/internal/models"
	"miraBack/internal/repositories"
	"miraBack/utils"
)

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
	Storage      *utils.Storage
	SigningKey   string
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	if req.Role != models.RoleFreelance && req.Role != models.RoleEntreprise {
		return models.User{}, models.ErrForbidden
	}

	existing, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return models.User{}, err
	}
	if existing.Email != "" {
		return models.User{}, models.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Nom:      req.Nom,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     req.Role,
	}
	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	created.Password = ""
	return created, nil
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (models.Tokens, models.User, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return models.Tokens{}, models.User{}, err
	}
	if user.Email == "" {
		return models.Tokens{}, models.User{}, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("Invalid password for user: %s", email)
		return models.Tokens{}, models.User{}, models.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID: uint(user.ID),
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(accessTokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	})
	accessToken, err := token.SignedString([]byte(s.SigningKey))
	if err != nil {
		return models.Tokens{}, models.User{}, err
	}

	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.Tokens{}, models.User{}, err
	}

	session := models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err := s.UserRepo.CreateSession(ctx, session); err != nil {
		return models.Tokens{}, models.User{}, err
	}

	user.Password = ""
	return models.Tokens{AccessToken: accessToken, RefreshToken: refreshToken}, user, nil
}

func (s *UserService) SignOut(ctx context.Context, userID int) error {
	return s.UserRepo.DeleteSession(ctx, userID)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	updated, err := s.UserRepo.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	updated.Password = ""
	return updated, nil
}

func (s *UserService) UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error {
	user, err := s.UserRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return models.ErrInvalidPassword
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(ctx, req.UserID, string(hashedPassword))
}

// UploadAvatar stores the image on S3 and records the public URL.
func (s *UserService) UploadAvatar(ctx context.Context, userID int, file []byte, originalName string) (string, error) {
	filename := fmt.Sprintf("avatar_%s%s", uuid.New().String(), filepath.Ext(originalName))
	url, err := s.Storage.UploadFile(file, filename, "avatars")
	if err != nil {
		return "", err
	}
	if err := s.UserRepo.UpdateAvatarPath(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}

// UploadCV stores the freelance CV on S3 and records the public URL.
func (s *UserService) UploadCV(ctx context.Context, userID int, file []byte, originalName string) (string, error) {
	filename := fmt.Sprintf("cv_%s%s", uuid.New().String(), filepath.Ext(originalName))
	url, err := s.Storage.UploadFile(file, filename, "cv")
	if err != nil {
		return "", err
	}
	if err := s.UserRepo.UpdateCVPath(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *UserService) SearchTalents(ctx context.Context, filter models.TalentFilter) ([]models.User, error) {
	return s.UserRepo.SearchTalents(ctx, filter)
}
