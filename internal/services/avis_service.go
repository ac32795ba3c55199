package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"miraBack/internal/lifecycle"
	"miraBack/internal/models"
)

type AvisService struct {
	AvisRepo        AvisStore
	MissionRepo     MissionStore
	PostulationRepo PostulationStore
	Events          EventBroadcaster
	Notifier        Notifier
}

// Confirm closes a mission: the owning entreprise confirms completion and
// rates the accepted freelance. The avis insert and the statut move to
// terminée commit together or not at all.
func (s *AvisService) Confirm(ctx context.Context, req models.ConfirmRequest, callerID int) (models.Avis, error) {
	if err := lifecycle.ValidateNote(req.Note); err != nil {
		return models.Avis{}, err
	}

	mission, err := s.MissionRepo.GetMissionByID(ctx, req.MissionID)
	if err != nil {
		return models.Avis{}, err
	}

	var acceptedPtr *models.Postulation
	accepted, err := s.PostulationRepo.GetAcceptedByMission(ctx, req.MissionID)
	if err == nil {
		acceptedPtr = &accepted
	} else if !errors.Is(err, models.ErrNoAcceptedPostulation) {
		return models.Avis{}, err
	}

	if err := lifecycle.CanConfirm(mission, acceptedPtr, callerID); err != nil {
		return models.Avis{}, err
	}

	avis := models.Avis{
		MissionID:    mission.ID,
		FreelanceID:  accepted.FreelanceID,
		EntrepriseID: callerID,
		Note:         req.Note,
		Commentaire:  req.Commentaire,
	}
	created, err := s.AvisRepo.ConfirmAndRate(ctx, avis)
	if err != nil {
		return models.Avis{}, err
	}

	if s.Events != nil {
		s.Events.BroadcastMissionEvent(models.MissionEvent{
			Type:      "mission_statut",
			MissionID: mission.ID,
			Statut:    lifecycle.StatusTerminee,
			UserID:    accepted.FreelanceID,
			CreatedAt: time.Now(),
		})
	}
	if s.Notifier != nil {
		s.Notifier.NotifyUser(ctx, accepted.FreelanceID, "Mission terminée",
			fmt.Sprintf("La mission « %s » est terminée, vous avez reçu une note de %d/5", mission.Titre, req.Note))
	}
	return created, nil
}

func (s *AvisService) GetByFreelance(ctx context.Context, freelanceID int) ([]models.Avis, error) {
	return s.AvisRepo.GetByFreelance(ctx, freelanceID)
}

func (s *AvisService) GetByMission(ctx context.Context, missionID int) (models.Avis, error) {
	return s.AvisRepo.GetByMission(ctx, missionID)
}
