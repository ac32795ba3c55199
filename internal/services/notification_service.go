package services

import (
	"context"
	"log"
	"strings"

	"firebase.google.com/go/messaging"

	"miraBack/internal/models"
	"miraBack/internal/repositories"
)

// NotificationService pushes FCM notifications to every registered device of a
// user. Delivery is best effort: failures are logged and stale tokens dropped.
type NotificationService struct {
	Client    *messaging.Client
	TokenRepo *repositories.DeviceTokenRepository
}

func (s *NotificationService) RegisterToken(ctx context.Context, token models.DeviceToken) error {
	return s.TokenRepo.SaveToken(ctx, token)
}

func (s *NotificationService) NotifyUser(ctx context.Context, userID int, title, body string) {
	if s == nil || s.Client == nil {
		return
	}
	tokens, err := s.TokenRepo.GetTokensByUser(ctx, userID)
	if err != nil {
		log.Printf("fcm: load tokens for user %d: %v", userID, err)
		return
	}

	for _, token := range tokens {
		message := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Android: &messaging.AndroidConfig{
				Priority: "high",
			},
		}
		if _, err := s.Client.Send(ctx, message); err != nil {
			log.Printf("fcm: send to user %d: %v", userID, err)
			if strings.Contains(err.Error(), "registration-token-not-registered") {
				_ = s.TokenRepo.DeleteToken(ctx, userID, token)
			}
		}
	}
}
