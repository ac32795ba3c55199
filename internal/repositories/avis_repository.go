package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"miraBack/internal/lifecycle"
	"miraBack/internal/models"
)

type AvisRepository struct {
	DB *sql.DB
}

// ConfirmAndRate inserts the avis and closes the mission in one transaction.
// A UNIQUE constraint on avis.mission_id keeps the rating one-per-mission even
// when two confirmation requests race.
func (r *AvisRepository) ConfirmAndRate(ctx context.Context, avis models.Avis) (models.Avis, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Avis{}, err
	}
	defer tx.Rollback()

	avis.CreatedAt = time.Now()
	result, err := tx.ExecContext(ctx, `
		INSERT INTO avis (mission_id, freelance_id, entreprise_id, note, commentaire, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, avis.MissionID, avis.FreelanceID, avis.EntrepriseID, avis.Note, avis.Commentaire, avis.CreatedAt)
	if err != nil {
		if isDuplicateEntryError(err) {
			return models.Avis{}, models.ErrAlreadyRated
		}
		return models.Avis{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Avis{}, err
	}
	avis.ID = int(id)

	if err := lifecycle.ApplyMission(ctx, tx, avis.MissionID, lifecycle.StatusOuverte, lifecycle.StatusTerminee); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Avis{}, models.ErrStatusConflict
		}
		return models.Avis{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Avis{}, err
	}
	return avis, nil
}

func (r *AvisRepository) GetByFreelance(ctx context.Context, freelanceID int) ([]models.Avis, error) {
	query := `
		SELECT a.id, a.mission_id, a.freelance_id, a.entreprise_id, a.note, a.commentaire,
		       u.nom, m.titre, a.created_at
		FROM avis a
		JOIN utilisateurs u ON a.entreprise_id = u.id
		JOIN missions m ON a.mission_id = m.id
		WHERE a.freelance_id = ?
		ORDER BY a.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, freelanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	avisList := []models.Avis{}
	for rows.Next() {
		var a models.Avis
		err := rows.Scan(&a.ID, &a.MissionID, &a.FreelanceID, &a.EntrepriseID, &a.Note, &a.Commentaire,
			&a.EntrepriseNom, &a.MissionTitre, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		avisList = append(avisList, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return avisList, nil
}

func (r *AvisRepository) GetByMission(ctx context.Context, missionID int) (models.Avis, error) {
	query := `
		SELECT id, mission_id, freelance_id, entreprise_id, note, commentaire, created_at
		FROM avis
		WHERE mission_id = ?
	`
	var a models.Avis
	err := r.DB.QueryRowContext(ctx, query, missionID).Scan(
		&a.ID, &a.MissionID, &a.FreelanceID, &a.EntrepriseID, &a.Note, &a.Commentaire, &a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Avis{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Avis{}, err
	}
	return a, nil
}
