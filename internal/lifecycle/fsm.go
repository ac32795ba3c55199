package lifecycle

import (
	"context"
	"database/sql"
	"errors"
)

// Status constants used by the mission state machine.
const (
	StatusCandidature = "candidature"
	StatusOuverte     = "ouverte"
	StatusTerminee    = "terminée"
)

// Status constants used by postulations, independent per mission/freelance pair.
const (
	PostulationEnAttente = "en_attente"
	PostulationAcceptee  = "acceptée"
	PostulationRefusee   = "refusée"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// Missions only move forward: candidature -> ouverte -> terminée.
var missionTransitions = map[string]map[string]struct{}{
	StatusCandidature: {StatusOuverte: {}},
	StatusOuverte:     {StatusTerminee: {}},
	StatusTerminee:    {},
}

// Accepted and refused are terminal.
var postulationTransitions = map[string]map[string]struct{}{
	PostulationEnAttente: {PostulationAcceptee: {}, PostulationRefusee: {}},
	PostulationAcceptee:  {},
	PostulationRefusee:   {},
}

// CanTransitionMission returns whether a mission may move from one statut to another.
func CanTransitionMission(from, to string) bool {
	if from == to {
		return true
	}
	allowed, ok := missionTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// CanTransitionPostulation returns whether a postulation may move from one statut to another.
func CanTransitionPostulation(from, to string) bool {
	if from == to {
		return true
	}
	allowed, ok := postulationTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// ApplyMission updates a mission statut using optimistic validation. The
// conditional WHERE closes the window between reading the statut and writing
// it: zero affected rows means someone else moved the mission first.
func ApplyMission(ctx context.Context, tx *sql.Tx, missionID int, fromStatut, toStatut string) error {
	if !CanTransitionMission(fromStatut, toStatut) {
		return ErrInvalidTransition
	}
	res, err := tx.ExecContext(ctx, `UPDATE missions SET statut = ? WHERE id = ? AND statut = ?`, toStatut, missionID, fromStatut)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ApplyPostulation updates a postulation statut using optimistic validation.
func ApplyPostulation(ctx context.Context, tx *sql.Tx, postulationID int, fromStatut, toStatut string) error {
	if !CanTransitionPostulation(fromStatut, toStatut) {
		return ErrInvalidTransition
	}
	res, err := tx.ExecContext(ctx, `UPDATE postulations SET statut = ? WHERE id = ? AND statut = ?`, toStatut, postulationID, fromStatut)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
