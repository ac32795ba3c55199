package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"miraBack/internal/lifecycle"
	"miraBack/internal/models"
)

type PostulationRepository struct {
	DB *sql.DB
}

// CreatePostulation inserts a pending postulation. Duplicates are rejected by
// the UNIQUE(mission_id, freelance_id) constraint, so concurrent double
// submissions cannot produce two records.
func (r *PostulationRepository) CreatePostulation(ctx context.Context, p models.Postulation) (models.Postulation, error) {
	query := `
		INSERT INTO postulations (mission_id, freelance_id, statut, message, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	p.Statut = lifecycle.PostulationEnAttente
	p.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query, p.MissionID, p.FreelanceID, p.Statut, p.Message, p.CreatedAt)
	if err != nil {
		if isDuplicateEntryError(err) {
			return models.Postulation{}, models.ErrAlreadyApplied
		}
		return models.Postulation{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Postulation{}, err
	}
	p.ID = int(id)
	return p, nil
}

func (r *PostulationRepository) GetByID(ctx context.Context, id int) (models.Postulation, error) {
	query := `
		SELECT p.id, p.mission_id, p.freelance_id, p.statut, p.message, p.created_at,
		       u.nom, u.avatar_path
		FROM postulations p
		JOIN utilisateurs u ON p.freelance_id = u.id
		WHERE p.id = ?
	`
	var p models.Postulation
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.MissionID, &p.FreelanceID, &p.Statut, &p.Message, &p.CreatedAt,
		&p.FreelanceNom, &p.FreelanceAvatar,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Postulation{}, models.ErrPostulationNotFound
	}
	if err != nil {
		return models.Postulation{}, err
	}
	return p, nil
}

func (r *PostulationRepository) GetByMission(ctx context.Context, missionID int) ([]models.Postulation, error) {
	query := `
		SELECT p.id, p.mission_id, p.freelance_id, p.statut, p.message, p.created_at,
		       u.nom, u.avatar_path, u.competences,
		       (SELECT COALESCE(AVG(a.note), 0) FROM avis a WHERE a.freelance_id = u.id)
		FROM postulations p
		JOIN utilisateurs u ON p.freelance_id = u.id
		WHERE p.mission_id = ?
		ORDER BY p.created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, missionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	postulations := []models.Postulation{}
	for rows.Next() {
		var p models.Postulation
		var competences string
		err := rows.Scan(
			&p.ID, &p.MissionID, &p.FreelanceID, &p.Statut, &p.Message, &p.CreatedAt,
			&p.FreelanceNom, &p.FreelanceAvatar, &competences, &p.FreelanceNote,
		)
		if err != nil {
			return nil, err
		}
		p.Competences = unmarshalCompetences(competences)
		postulations = append(postulations, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return postulations, nil
}

func (r *PostulationRepository) GetByFreelance(ctx context.Context, freelanceID int) ([]models.Postulation, error) {
	query := `
		SELECT p.id, p.mission_id, p.freelance_id, p.statut, p.message, p.created_at,
		       m.titre, m.statut
		FROM postulations p
		JOIN missions m ON p.mission_id = m.id
		WHERE p.freelance_id = ?
		ORDER BY p.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, freelanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	postulations := []models.Postulation{}
	for rows.Next() {
		var p models.Postulation
		err := rows.Scan(
			&p.ID, &p.MissionID, &p.FreelanceID, &p.Statut, &p.Message, &p.CreatedAt,
			&p.MissionTitre, &p.MissionStatut,
		)
		if err != nil {
			return nil, err
		}
		postulations = append(postulations, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return postulations, nil
}

// GetAcceptedByMission returns the single accepted postulation of a mission.
func (r *PostulationRepository) GetAcceptedByMission(ctx context.Context, missionID int) (models.Postulation, error) {
	query := `
		SELECT id, mission_id, freelance_id, statut, message, created_at
		FROM postulations
		WHERE mission_id = ? AND statut = ?
		LIMIT 1
	`
	var p models.Postulation
	err := r.DB.QueryRowContext(ctx, query, missionID, lifecycle.PostulationAcceptee).Scan(
		&p.ID, &p.MissionID, &p.FreelanceID, &p.Statut, &p.Message, &p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Postulation{}, models.ErrNoAcceptedPostulation
	}
	if err != nil {
		return models.Postulation{}, err
	}
	return p, nil
}

// Accept moves one postulation to acceptée and its mission to ouverte inside a
// single transaction. Either both statuts advance or neither does; a lost race
// on either conditional update rolls back and surfaces as ErrStatusConflict.
func (r *PostulationRepository) Accept(ctx context.Context, missionID, postulationID int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lifecycle.ApplyPostulation(ctx, tx, postulationID, lifecycle.PostulationEnAttente, lifecycle.PostulationAcceptee); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrStatusConflict
		}
		return err
	}
	if err := lifecycle.ApplyMission(ctx, tx, missionID, lifecycle.StatusCandidature, lifecycle.StatusOuverte); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrStatusConflict
		}
		return err
	}

	return tx.Commit()
}

// Reject moves one postulation to refusée. The mission statut is untouched.
func (r *PostulationRepository) Reject(ctx context.Context, postulationID int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lifecycle.ApplyPostulation(ctx, tx, postulationID, lifecycle.PostulationEnAttente, lifecycle.PostulationRefusee); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrStatusConflict
		}
		return err
	}

	return tx.Commit()
}
