package services

import (
	"context"
	"errors"
	"strings"

	"miraBack/internal/models"
	"miraBack/internal/repositories"
)

type MessageService struct {
	MessageRepo     *repositories.MessageRepository
	MissionRepo     MissionStore
	PostulationRepo PostulationStore
	Notifier        Notifier
}

// CreateMessage persists a chat message after checking the sender belongs to
// the mission conversation (owner or applicant).
func (s *MessageService) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	if strings.TrimSpace(message.Contenu) == "" {
		return models.Message{}, models.ErrNoRecord
	}

	mission, err := s.MissionRepo.GetMissionByID(ctx, message.MissionID)
	if err != nil {
		return models.Message{}, err
	}
	receiverID, err := s.resolveReceiver(ctx, mission, message.SenderID)
	if err != nil {
		return models.Message{}, err
	}

	created, err := s.MessageRepo.CreateMessage(ctx, message)
	if err != nil {
		return models.Message{}, err
	}

	if s.Notifier != nil && receiverID != 0 {
		s.Notifier.NotifyUser(ctx, receiverID, "Nouveau message",
			"Vous avez reçu un message sur la mission « "+mission.Titre+" »")
	}
	return created, nil
}

func (s *MessageService) GetMessagesForMission(ctx context.Context, missionID, callerID, page, pageSize int) ([]models.Message, error) {
	mission, err := s.MissionRepo.GetMissionByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolveReceiver(ctx, mission, callerID); err != nil {
		return nil, err
	}
	return s.MessageRepo.GetMessagesForMission(ctx, missionID, page, pageSize)
}

// Receiver returns the other side of the mission conversation for a sender,
// or models.ErrForbidden when the sender does not belong to it.
func (s *MessageService) Receiver(ctx context.Context, missionID, senderID int) (int, error) {
	mission, err := s.MissionRepo.GetMissionByID(ctx, missionID)
	if err != nil {
		return 0, err
	}
	return s.resolveReceiver(ctx, mission, senderID)
}

// resolveReceiver checks conversation membership and returns the other side.
// The conversation is between the mission owner and the accepted freelance;
// before acceptance any applicant may message the owner.
func (s *MessageService) resolveReceiver(ctx context.Context, mission models.Mission, senderID int) (int, error) {
	if senderID == mission.EntrepriseID {
		accepted, err := s.PostulationRepo.GetAcceptedByMission(ctx, mission.ID)
		if err != nil {
			if errors.Is(err, models.ErrNoAcceptedPostulation) {
				return 0, nil
			}
			return 0, err
		}
		return accepted.FreelanceID, nil
	}

	posts, err := s.PostulationRepo.GetByFreelance(ctx, senderID)
	if err != nil {
		return 0, err
	}
	for _, p := range posts {
		if p.MissionID == mission.ID {
			return mission.EntrepriseID, nil
		}
	}
	return 0, models.ErrForbidden
}
