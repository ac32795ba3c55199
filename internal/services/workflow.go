package services

import (
	"context"

	"miraBack/internal/models"
)

// Store interfaces for the lifecycle workflow, narrowed so the accept and
// confirm orchestration can be exercised with stubs.

type MissionStore interface {
	GetMissionByID(ctx context.Context, id int) (models.Mission, error)
}

type PostulationStore interface {
	CreatePostulation(ctx context.Context, p models.Postulation) (models.Postulation, error)
	GetByID(ctx context.Context, id int) (models.Postulation, error)
	GetByMission(ctx context.Context, missionID int) ([]models.Postulation, error)
	GetByFreelance(ctx context.Context, freelanceID int) ([]models.Postulation, error)
	GetAcceptedByMission(ctx context.Context, missionID int) (models.Postulation, error)
	Accept(ctx context.Context, missionID, postulationID int) error
	Reject(ctx context.Context, postulationID int) error
}

type AvisStore interface {
	ConfirmAndRate(ctx context.Context, avis models.Avis) (models.Avis, error)
	GetByFreelance(ctx context.Context, freelanceID int) ([]models.Avis, error)
	GetByMission(ctx context.Context, missionID int) (models.Avis, error)
}

// EventBroadcaster pushes mission events to connected websocket clients.
type EventBroadcaster interface {
	BroadcastMissionEvent(event models.MissionEvent)
}

// Notifier delivers best-effort push notifications; failures are logged, never
// surfaced to the caller.
type Notifier interface {
	NotifyUser(ctx context.Context, userID int, title, body string)
}
