package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"miraBack/internal/lifecycle"
	"miraBack/internal/models"
)

type stubMissions struct {
	missions map[int]*models.Mission
}

func (s *stubMissions) GetMissionByID(ctx context.Context, id int) (models.Mission, error) {
	m, ok := s.missions[id]
	if !ok {
		return models.Mission{}, models.ErrMissionNotFound
	}
	return *m, nil
}

type stubPostulations struct {
	missions *stubMissions
	byID     map[int]*models.Postulation
	nextID   int
}

func (s *stubPostulations) CreatePostulation(ctx context.Context, p models.Postulation) (models.Postulation, error) {
	for _, existing := range s.byID {
		if existing.MissionID == p.MissionID && existing.FreelanceID == p.FreelanceID {
			return models.Postulation{}, models.ErrAlreadyApplied
		}
	}
	s.nextID++
	p.ID = s.nextID
	p.Statut = lifecycle.PostulationEnAttente
	p.CreatedAt = time.Now()
	s.byID[p.ID] = &p
	return p, nil
}

func (s *stubPostulations) GetByID(ctx context.Context, id int) (models.Postulation, error) {
	p, ok := s.byID[id]
	if !ok {
		return models.Postulation{}, models.ErrPostulationNotFound
	}
	return *p, nil
}

func (s *stubPostulations) GetByMission(ctx context.Context, missionID int) ([]models.Postulation, error) {
	out := []models.Postulation{}
	for _, p := range s.byID {
		if p.MissionID == missionID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubPostulations) GetByFreelance(ctx context.Context, freelanceID int) ([]models.Postulation, error) {
	out := []models.Postulation{}
	for _, p := range s.byID {
		if p.FreelanceID == freelanceID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubPostulations) GetAcceptedByMission(ctx context.Context, missionID int) (models.Postulation, error) {
	for _, p := range s.byID {
		if p.MissionID == missionID && p.Statut == lifecycle.PostulationAcceptee {
			return *p, nil
		}
	}
	return models.Postulation{}, models.ErrNoAcceptedPostulation
}

// Accept mirrors the conditional transactional update of the real repository:
// both statuts move or neither does.
func (s *stubPostulations) Accept(ctx context.Context, missionID, postulationID int) error {
	p, ok := s.byID[postulationID]
	if !ok || p.Statut != lifecycle.PostulationEnAttente {
		return models.ErrStatusConflict
	}
	m, ok := s.missions.missions[missionID]
	if !ok || m.Statut != lifecycle.StatusCandidature {
		return models.ErrStatusConflict
	}
	p.Statut = lifecycle.PostulationAcceptee
	m.Statut = lifecycle.StatusOuverte
	return nil
}

func (s *stubPostulations) Reject(ctx context.Context, postulationID int) error {
	p, ok := s.byID[postulationID]
	if !ok || p.Statut != lifecycle.PostulationEnAttente {
		return models.ErrStatusConflict
	}
	p.Statut = lifecycle.PostulationRefusee
	return nil
}

type stubAvis struct {
	missions  *stubMissions
	byMission map[int]models.Avis
	nextID    int
}

func (s *stubAvis) ConfirmAndRate(ctx context.Context, avis models.Avis) (models.Avis, error) {
	if _, ok := s.byMission[avis.MissionID]; ok {
		return models.Avis{}, models.ErrAlreadyRated
	}
	m, ok := s.missions.missions[avis.MissionID]
	if !ok || m.Statut != lifecycle.StatusOuverte {
		return models.Avis{}, models.ErrStatusConflict
	}
	s.nextID++
	avis.ID = s.nextID
	avis.CreatedAt = time.Now()
	s.byMission[avis.MissionID] = avis
	m.Statut = lifecycle.StatusTerminee
	return avis, nil
}

func (s *stubAvis) GetByFreelance(ctx context.Context, freelanceID int) ([]models.Avis, error) {
	out := []models.Avis{}
	for _, a := range s.byMission {
		if a.FreelanceID == freelanceID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubAvis) GetByMission(ctx context.Context, missionID int) (models.Avis, error) {
	a, ok := s.byMission[missionID]
	if !ok {
		return models.Avis{}, models.ErrNoRecord
	}
	return a, nil
}

type stubEvents struct {
	events []models.MissionEvent
}

func (s *stubEvents) BroadcastMissionEvent(event models.MissionEvent) {
	s.events = append(s.events, event)
}

type stubNotifier struct {
	notified []int
}

func (s *stubNotifier) NotifyUser(ctx context.Context, userID int, title, body string) {
	s.notified = append(s.notified, userID)
}

const (
	entrepriseID = 7
	freelanceA   = 3
	freelanceB   = 4
)

func newWorkflowFixture() (*stubMissions, *stubPostulations, *stubAvis, *PostulationService, *AvisService) {
	missions := &stubMissions{missions: map[int]*models.Mission{
		1: {
			ID:           1,
			Titre:        "Refonte site web",
			Description:  "Refonte complète du site vitrine avec nouvelle charte graphique",
			Duree:        "2 mois",
			Budget:       3000,
			Competences:  []string{"React", "Figma"},
			EntrepriseID: entrepriseID,
			Statut:       lifecycle.StatusCandidature,
		},
	}}
	postulations := &stubPostulations{missions: missions, byID: map[int]*models.Postulation{}}
	avisStore := &stubAvis{missions: missions, byMission: map[int]models.Avis{}}

	postulationService := &PostulationService{
		PostulationRepo: postulations,
		MissionRepo:     missions,
		Events:          &stubEvents{},
		Notifier:        &stubNotifier{},
	}
	avisService := &AvisService{
		AvisRepo:        avisStore,
		MissionRepo:     missions,
		PostulationRepo: postulations,
		Events:          &stubEvents{},
		Notifier:        &stubNotifier{},
	}
	return missions, postulations, avisStore, postulationService, avisService
}

func TestWorkflowHappyPath(t *testing.T) {
	ctx := context.Background()
	missions, postulations, avisStore, postulationService, avisService := newWorkflowFixture()

	postA, err := postulationService.Apply(ctx, models.Postulation{MissionID: 1, FreelanceID: freelanceA})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if postA.Statut != lifecycle.PostulationEnAttente {
		t.Fatalf("expected en_attente after apply, got %s", postA.Statut)
	}

	if err := postulationService.Accept(ctx, postA.ID, entrepriseID); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	accepted, err := postulations.GetByID(ctx, postA.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if accepted.Statut != lifecycle.PostulationAcceptee {
		t.Fatalf("expected acceptée, got %s", accepted.Statut)
	}
	if missions.missions[1].Statut != lifecycle.StatusOuverte {
		t.Fatalf("expected mission ouverte, got %s", missions.missions[1].Statut)
	}

	avis, err := avisService.Confirm(ctx, models.ConfirmRequest{MissionID: 1, Note: 5}, entrepriseID)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if avis.FreelanceID != freelanceA || avis.Note != 5 {
		t.Fatalf("avis tied to wrong freelance or note: %+v", avis)
	}
	if missions.missions[1].Statut != lifecycle.StatusTerminee {
		t.Fatalf("expected mission terminée, got %s", missions.missions[1].Statut)
	}
	if len(avisStore.byMission) != 1 {
		t.Fatalf("expected exactly one avis, got %d", len(avisStore.byMission))
	}
}

func TestDuplicateApplyRejected(t *testing.T) {
	ctx := context.Background()
	_, postulations, _, postulationService, _ := newWorkflowFixture()

	if _, err := postulationService.Apply(ctx, models.Postulation{MissionID: 1, FreelanceID: freelanceA}); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if _, err := postulationService.Apply(ctx, models.Postulation{MissionID: 1, FreelanceID: freelanceA}); !errors.Is(err, models.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
	if len(postulations.byID) != 1 {
		t.Fatalf("duplicate apply produced a second record: %d", len(postulations.byID))
	}
}

func TestConfirmWithoutAcceptedPostulation(t *testing.T) {
	ctx := context.Background()
	missions, _, avisStore, postulationService, avisService := newWorkflowFixture()

	if _, err := postulationService.Apply(ctx, models.Postulation{MissionID: 1, FreelanceID: freelanceA}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	_, err := avisService.Confirm(ctx, models.ConfirmRequest{MissionID: 1, Note: 4}, entrepriseID)
	if !errors.Is(err, models.ErrNoAcceptedPostulation) {
		t.Fatalf("expected ErrNoAcceptedPostulation, got %v", err)
	}
	if missions.missions[1].Statut != lifecycle.StatusCandidature {
		t.Fatalf("mission statut altered: %s", missions.missions[1].Statut)
	}
	if len(avisStore.byMission) != 0 {
		t.Fatalf("avis created despite failed precondition")
	}
}

// A second applicant after acceptance is neither rejected nor promoted; their
// postulation stays en_attente for good.
func TestLateApplicantStaysPending(t *testing.T) {
	ctx := context.Background()
	_, postulations, _, postulationService, avisService := newWorkflowFixture()

	postA, err := postulationService.Apply(ctx, models.Postulation{MissionID: 1, FreelanceID: freelanceA})
	if err != nil {
		t.Fatalf("apply A: %v", err)
	}
	if err := postulationService.Accept(ctx, postA.ID, entrepriseID); err != nil {
		t.Fatalf("accept A: %v", err)
	}

	postB, err := postulationService.Apply(ctx, models.Postulation{MissionID: 1, FreelanceID: freelanceB})
	if err != nil {
		t.Fatalf("apply B: %v", err)
	}

	// Accepting B now must fail, the mission already left candidature.
	if err := postulationService.Accept(ctx, postB.ID, entrepriseID); err == nil {
		t.Fatal("expected accept of B to fail on ouverte mission")
	}

	if _, err := avisService.Confirm(ctx, models.ConfirmRequest{MissionID: 1, Note: 5}, entrepriseID); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	final, err := postulations.GetByID(ctx, postB.ID)
	if err != nil {
		t.Fatalf("GetByID B: %v", err)
	}
	if final.Statut != lifecycle.PostulationEnAttente {
		t.Fatalf("expected B to stay en_attente, got %s", final.Statut)
	}
}

func TestAcceptByNonOwnerForbidden(t *testing.T) {
	ctx := context.Background()
	_, _, _, postulationService, _ := newWorkflowFixture()

	postA, err := postulationService.Apply(ctx, models.Postulation{MissionID: 1, FreelanceID: freelanceA})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := postulationService.Accept(ctx, postA.ID, 999); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestConfirmTwiceRejected(t *testing.T) {
	ctx := context.Background()
	_, _, _, postulationService, avisService := newWorkflowFixture()

	postA, err := postulationService.Apply(ctx, models.Postulation{MissionID: 1, FreelanceID: freelanceA})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := postulationService.Accept(ctx, postA.ID, entrepriseID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := avisService.Confirm(ctx, models.ConfirmRequest{MissionID: 1, Note: 5}, entrepriseID); err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	if _, err := avisService.Confirm(ctx, models.ConfirmRequest{MissionID: 1, Note: 3}, entrepriseID); !errors.Is(err, models.ErrMissionAlreadyFinished) {
		t.Fatalf("expected ErrMissionAlreadyFinished, got %v", err)
	}
}
