package lifecycle

import "testing"

func TestCanTransitionMission(t *testing.T) {
	if !CanTransitionMission(StatusCandidature, StatusOuverte) {
		t.Fatal("expected candidature -> ouverte to be allowed")
	}
	if !CanTransitionMission(StatusOuverte, StatusTerminee) {
		t.Fatal("expected ouverte -> terminée to be allowed")
	}
	if CanTransitionMission(StatusCandidature, StatusTerminee) {
		t.Fatal("unexpected candidature -> terminée allowed")
	}
	if CanTransitionMission(StatusTerminee, StatusOuverte) {
		t.Fatal("unexpected backward transition terminée -> ouverte allowed")
	}
	if CanTransitionMission(StatusOuverte, StatusCandidature) {
		t.Fatal("unexpected backward transition ouverte -> candidature allowed")
	}
}

func TestCanTransitionPostulation(t *testing.T) {
	if !CanTransitionPostulation(PostulationEnAttente, PostulationAcceptee) {
		t.Fatal("expected en_attente -> acceptée to be allowed")
	}
	if !CanTransitionPostulation(PostulationEnAttente, PostulationRefusee) {
		t.Fatal("expected en_attente -> refusée to be allowed")
	}
	if CanTransitionPostulation(PostulationAcceptee, PostulationEnAttente) {
		t.Fatal("unexpected revert acceptée -> en_attente allowed")
	}
	if CanTransitionPostulation(PostulationRefusee, PostulationEnAttente) {
		t.Fatal("unexpected revert refusée -> en_attente allowed")
	}
	if CanTransitionPostulation(PostulationAcceptee, PostulationRefusee) {
		t.Fatal("unexpected acceptée -> refusée allowed")
	}
}
