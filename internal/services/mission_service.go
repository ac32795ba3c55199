package services

import (
	"context"

	"miraBack/internal/lifecycle"
	"miraBack/internal/models"
	"miraBack/internal/repositories"
)

type MissionService struct {
	MissionRepo *repositories.MissionRepository
	Events      EventBroadcaster
}

// CreateMission re-validates the multi-step form input server side; clients
// cannot bypass the bounds by skipping the form.
func (s *MissionService) CreateMission(ctx context.Context, m models.Mission) (models.Mission, error) {
	if err := lifecycle.ValidateMission(m); err != nil {
		return models.Mission{}, err
	}

	created, err := s.MissionRepo.CreateMission(ctx, m)
	if err != nil {
		return models.Mission{}, err
	}

	if s.Events != nil {
		s.Events.BroadcastMissionEvent(models.MissionEvent{
			Type:      "mission_created",
			MissionID: created.ID,
			Statut:    created.Statut,
			CreatedAt: created.CreatedAt,
		})
	}
	return created, nil
}

func (s *MissionService) GetMissionByID(ctx context.Context, id int) (models.Mission, error) {
	return s.MissionRepo.GetMissionByID(ctx, id)
}

func (s *MissionService) GetMissions(ctx context.Context, filter models.MissionFilter) ([]models.Mission, error) {
	return s.MissionRepo.GetMissions(ctx, filter)
}

func (s *MissionService) GetMissionsByEntreprise(ctx context.Context, entrepriseID int) ([]models.Mission, error) {
	return s.MissionRepo.GetMissionsByEntreprise(ctx, entrepriseID)
}

func (s *MissionService) GetMissionsByFreelance(ctx context.Context, freelanceID int) ([]models.Mission, error) {
	return s.MissionRepo.GetMissionsByFreelance(ctx, freelanceID)
}

func (s *MissionService) SearchMissions(ctx context.Context, term string) ([]models.Mission, error) {
	return s.MissionRepo.SearchMissions(ctx, term)
}
