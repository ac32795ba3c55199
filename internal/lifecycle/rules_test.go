package lifecycle

import (
	"errors"
	"testing"

	"miraBack/internal/models"
)

func validMission() models.Mission {
	return models.Mission{
		Titre:        "Refonte site web",
		Description:  "Refonte complète du site vitrine avec nouvelle charte graphique",
		Duree:        "2 mois",
		Budget:       3000,
		Competences:  []string{"React", "Figma"},
		EntrepriseID: 7,
	}
}

func TestValidateMission(t *testing.T) {
	if err := ValidateMission(validMission()); err != nil {
		t.Fatalf("valid mission rejected: %v", err)
	}

	m := validMission()
	m.Titre = "Web"
	if err := ValidateMission(m); !errors.Is(err, ErrTitreTooShort) {
		t.Fatalf("expected ErrTitreTooShort, got %v", err)
	}

	m = validMission()
	m.Description = "trop court"
	if err := ValidateMission(m); !errors.Is(err, ErrDescriptionTooShort) {
		t.Fatalf("expected ErrDescriptionTooShort, got %v", err)
	}

	m = validMission()
	m.Budget = 0
	if err := ValidateMission(m); !errors.Is(err, ErrBudgetInvalid) {
		t.Fatalf("expected ErrBudgetInvalid, got %v", err)
	}

	m = validMission()
	m.Competences = nil
	if err := ValidateMission(m); !errors.Is(err, ErrCompetencesMissing) {
		t.Fatalf("expected ErrCompetencesMissing, got %v", err)
	}

	m = validMission()
	m.Duree = "  "
	if err := ValidateMission(m); !errors.Is(err, ErrDureeMissing) {
		t.Fatalf("expected ErrDureeMissing, got %v", err)
	}
}

func TestCanAccept(t *testing.T) {
	mission := validMission()
	mission.ID = 1
	mission.Statut = StatusCandidature
	post := models.Postulation{ID: 10, MissionID: 1, FreelanceID: 3, Statut: PostulationEnAttente}

	if err := CanAccept(mission, post, 7); err != nil {
		t.Fatalf("accept rejected on happy path: %v", err)
	}
	if err := CanAccept(mission, post, 99); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	// Once the mission is ouverte, further accepts are illegal even though
	// remaining postulations stay en_attente.
	mission.Statut = StatusOuverte
	if err := CanAccept(mission, post, 7); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on ouverte mission, got %v", err)
	}

	mission.Statut = StatusCandidature
	post.Statut = PostulationRefusee
	if err := CanAccept(mission, post, 7); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on refused postulation, got %v", err)
	}
}

func TestCanConfirm(t *testing.T) {
	mission := validMission()
	mission.ID = 1
	mission.Statut = StatusOuverte
	accepted := &models.Postulation{ID: 10, MissionID: 1, FreelanceID: 3, Statut: PostulationAcceptee}

	if err := CanConfirm(mission, accepted, 7); err != nil {
		t.Fatalf("confirm rejected on happy path: %v", err)
	}
	if err := CanConfirm(mission, nil, 7); !errors.Is(err, models.ErrNoAcceptedPostulation) {
		t.Fatalf("expected ErrNoAcceptedPostulation, got %v", err)
	}
	if err := CanConfirm(mission, accepted, 99); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	mission.Statut = StatusTerminee
	if err := CanConfirm(mission, accepted, 7); !errors.Is(err, models.ErrMissionAlreadyFinished) {
		t.Fatalf("expected ErrMissionAlreadyFinished, got %v", err)
	}
}

func TestValidateNote(t *testing.T) {
	for _, note := range []int{1, 3, 5} {
		if err := ValidateNote(note); err != nil {
			t.Fatalf("note %d rejected: %v", note, err)
		}
	}
	for _, note := range []int{0, 6, -1} {
		if err := ValidateNote(note); !errors.Is(err, ErrNoteOutOfRange) {
			t.Fatalf("expected ErrNoteOutOfRange for %d, got %v", note, err)
		}
	}
}
