package services

import (
	"context"
	"fmt"
	"time"

	"miraBack/internal/lifecycle"
	"miraBack/internal/models"
)

type PostulationService struct {
	PostulationRepo PostulationStore
	MissionRepo     MissionStore
	Events          EventBroadcaster
	Notifier        Notifier
}

// Apply submits a freelance application. The unique constraint on
// (mission_id, freelance_id) is the only duplicate check.
func (s *PostulationService) Apply(ctx context.Context, p models.Postulation) (models.Postulation, error) {
	mission, err := s.MissionRepo.GetMissionByID(ctx, p.MissionID)
	if err != nil {
		return models.Postulation{}, err
	}
	if mission.EntrepriseID == p.FreelanceID {
		return models.Postulation{}, models.ErrForbidden
	}

	created, err := s.PostulationRepo.CreatePostulation(ctx, p)
	if err != nil {
		return models.Postulation{}, err
	}

	if s.Events != nil {
		s.Events.BroadcastMissionEvent(models.MissionEvent{
			Type:      "nouvelle_postulation",
			MissionID: mission.ID,
			UserID:    created.FreelanceID,
			CreatedAt: created.CreatedAt,
		})
	}
	if s.Notifier != nil {
		s.Notifier.NotifyUser(ctx, mission.EntrepriseID, "Nouvelle postulation",
			fmt.Sprintf("Un freelance a postulé à votre mission « %s »", mission.Titre))
	}
	return created, nil
}

func (s *PostulationService) GetByMission(ctx context.Context, missionID, callerID int) ([]models.Postulation, error) {
	mission, err := s.MissionRepo.GetMissionByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if mission.EntrepriseID != callerID {
		return nil, models.ErrForbidden
	}
	return s.PostulationRepo.GetByMission(ctx, missionID)
}

func (s *PostulationService) GetByFreelance(ctx context.Context, freelanceID int) ([]models.Postulation, error) {
	return s.PostulationRepo.GetByFreelance(ctx, freelanceID)
}

// Accept moves the chosen postulation to acceptée and the mission to ouverte.
// Remaining pending postulations are left en_attente; the client surfaces them
// as still waiting.
func (s *PostulationService) Accept(ctx context.Context, postulationID, callerID int) error {
	post, err := s.PostulationRepo.GetByID(ctx, postulationID)
	if err != nil {
		return err
	}
	mission, err := s.MissionRepo.GetMissionByID(ctx, post.MissionID)
	if err != nil {
		return err
	}
	if err := lifecycle.CanAccept(mission, post, callerID); err != nil {
		return err
	}

	if err := s.PostulationRepo.Accept(ctx, mission.ID, post.ID); err != nil {
		return err
	}

	if s.Events != nil {
		s.Events.BroadcastMissionEvent(models.MissionEvent{
			Type:      "mission_statut",
			MissionID: mission.ID,
			Statut:    lifecycle.StatusOuverte,
			UserID:    post.FreelanceID,
			CreatedAt: time.Now(),
		})
	}
	if s.Notifier != nil {
		s.Notifier.NotifyUser(ctx, post.FreelanceID, "Postulation acceptée",
			fmt.Sprintf("Votre postulation à la mission « %s » a été acceptée", mission.Titre))
	}
	return nil
}

// Reject moves a single postulation to refusée; the mission statut is untouched.
func (s *PostulationService) Reject(ctx context.Context, postulationID, callerID int) error {
	post, err := s.PostulationRepo.GetByID(ctx, postulationID)
	if err != nil {
		return err
	}
	mission, err := s.MissionRepo.GetMissionByID(ctx, post.MissionID)
	if err != nil {
		return err
	}
	if err := lifecycle.CanReject(mission, post, callerID); err != nil {
		return err
	}

	if err := s.PostulationRepo.Reject(ctx, post.ID); err != nil {
		return err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyUser(ctx, post.FreelanceID, "Postulation refusée",
			fmt.Sprintf("Votre postulation à la mission « %s » a été refusée", mission.Titre))
	}
	return nil
}
