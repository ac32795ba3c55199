package lifecycle

import (
	"strings"

	"miraBack/internal/models"
)

// Server-side bounds for mission creation. The web client validates the same
// rules across its multi-step form, but the service re-checks everything here.
const (
	MinTitreLen       = 5
	MinDescriptionLen = 20
)

// ValidateMission checks the creation input of a mission before it is persisted.
func ValidateMission(m models.Mission) error {
	if len(strings.TrimSpace(m.Titre)) < MinTitreLen {
		return ErrTitreTooShort
	}
	if len(strings.TrimSpace(m.Description)) < MinDescriptionLen {
		return ErrDescriptionTooShort
	}
	if strings.TrimSpace(m.Duree) == "" {
		return ErrDureeMissing
	}
	if m.Budget <= 0 {
		return ErrBudgetInvalid
	}
	if len(m.Competences) == 0 {
		return ErrCompetencesMissing
	}
	return nil
}

// CanAccept guards the accept operation: only the owning entreprise may accept,
// the mission must still be in candidature and the postulation still pending.
func CanAccept(mission models.Mission, post models.Postulation, callerID int) error {
	if mission.EntrepriseID != callerID {
		return models.ErrForbidden
	}
	if post.MissionID != mission.ID {
		return models.ErrPostulationNotFound
	}
	if post.Statut != PostulationEnAttente {
		return ErrInvalidTransition
	}
	if !CanTransitionMission(mission.Statut, StatusOuverte) {
		return ErrInvalidTransition
	}
	return nil
}

// CanReject guards the reject operation. Rejection never touches the mission
// statut, so only the postulation state matters.
func CanReject(mission models.Mission, post models.Postulation, callerID int) error {
	if mission.EntrepriseID != callerID {
		return models.ErrForbidden
	}
	if post.MissionID != mission.ID {
		return models.ErrPostulationNotFound
	}
	if post.Statut != PostulationEnAttente {
		return ErrInvalidTransition
	}
	return nil
}

// CanConfirm guards completion confirmation: caller owns the mission, the
// mission is not already terminée, and an accepted postulation exists. The
// accepted postulation identifies the freelance the avis is tied to.
func CanConfirm(mission models.Mission, accepted *models.Postulation, callerID int) error {
	if mission.EntrepriseID != callerID {
		return models.ErrForbidden
	}
	if mission.Statut == StatusTerminee {
		return models.ErrMissionAlreadyFinished
	}
	if accepted == nil || accepted.Statut != PostulationAcceptee {
		return models.ErrNoAcceptedPostulation
	}
	if !CanTransitionMission(mission.Statut, StatusTerminee) {
		return ErrInvalidTransition
	}
	return nil
}

// ValidateNote bounds the rating score.
func ValidateNote(note int) error {
	if note < 1 || note > 5 {
		return ErrNoteOutOfRange
	}
	return nil
}
