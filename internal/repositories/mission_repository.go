package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"miraBack/internal/lifecycle"
	"miraBack/internal/models"
)

type MissionRepository struct {
	DB *sql.DB
}

func (r *MissionRepository) CreateMission(ctx context.Context, m models.Mission) (models.Mission, error) {
	competences, err := marshalCompetences(m.Competences)
	if err != nil {
		return models.Mission{}, err
	}

	query := `
		INSERT INTO missions
			(titre, description, competences, duree, budget, deadline, localisation, niveau, type_contrat, entreprise_id, statut, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`
	m.Statut = lifecycle.StatusCandidature
	result, err := r.DB.ExecContext(ctx, query,
		m.Titre, m.Description, competences, m.Duree, m.Budget,
		m.Deadline, m.Localisation, m.Niveau, m.TypeContrat,
		m.EntrepriseID, m.Statut,
	)
	if err != nil {
		return models.Mission{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Mission{}, err
	}
	m.ID = int(id)
	m.CreatedAt = time.Now()
	return m, nil
}

func (r *MissionRepository) GetMissionByID(ctx context.Context, id int) (models.Mission, error) {
	query := `
		SELECT m.id, m.titre, m.description, m.competences, m.duree, m.budget,
		       m.deadline, m.localisation, m.niveau, m.type_contrat,
		       m.entreprise_id, u.nom, u.avatar_path, m.statut,
		       (SELECT COUNT(*) FROM postulations p WHERE p.mission_id = m.id),
		       m.created_at, m.updated_at
		FROM missions m
		JOIN utilisateurs u ON m.entreprise_id = u.id
		WHERE m.id = ?
	`
	var m models.Mission
	var competences string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Titre, &m.Description, &competences, &m.Duree, &m.Budget,
		&m.Deadline, &m.Localisation, &m.Niveau, &m.TypeContrat,
		&m.EntrepriseID, &m.EntrepriseNom, &m.EntrepriseAvatar, &m.Statut,
		&m.NbPostulations,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Mission{}, models.ErrMissionNotFound
	}
	if err != nil {
		return models.Mission{}, err
	}
	m.Competences = unmarshalCompetences(competences)
	return m, nil
}

func (r *MissionRepository) GetMissions(ctx context.Context, filter models.MissionFilter) ([]models.Mission, error) {
	query := `
		SELECT m.id, m.titre, m.description, m.competences, m.duree, m.budget,
		       m.deadline, m.localisation, m.niveau, m.type_contrat,
		       m.entreprise_id, u.nom, u.avatar_path, m.statut,
		       (SELECT COUNT(*) FROM postulations p WHERE p.mission_id = m.id),
		       m.created_at, m.updated_at
		FROM missions m
		JOIN utilisateurs u ON m.entreprise_id = u.id
		WHERE 1=1
	`
	args := []interface{}{}
	if filter.Statut != "" {
		query += " AND m.statut = ?"
		args = append(args, filter.Statut)
	}
	if filter.Competence != "" {
		query += " AND m.competences LIKE ?"
		args = append(args, "%"+filter.Competence+"%")
	}
	if filter.BudgetMin > 0 {
		query += " AND m.budget >= ?"
		args = append(args, filter.BudgetMin)
	}
	if filter.BudgetMax > 0 {
		query += " AND m.budget <= ?"
		args = append(args, filter.BudgetMax)
	}
	query += " ORDER BY m.created_at DESC"

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMissions(rows)
}

func (r *MissionRepository) GetMissionsByEntreprise(ctx context.Context, entrepriseID int) ([]models.Mission, error) {
	query := `
		SELECT m.id, m.titre, m.description, m.competences, m.duree, m.budget,
		       m.deadline, m.localisation, m.niveau, m.type_contrat,
		       m.entreprise_id, u.nom, u.avatar_path, m.statut,
		       (SELECT COUNT(*) FROM postulations p WHERE p.mission_id = m.id),
		       m.created_at, m.updated_at
		FROM missions m
		JOIN utilisateurs u ON m.entreprise_id = u.id
		WHERE m.entreprise_id = ?
		ORDER BY m.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, entrepriseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMissions(rows)
}

// GetMissionsByFreelance lists the missions a freelance has applied to,
// with the statut of their own postulation attached.
func (r *MissionRepository) GetMissionsByFreelance(ctx context.Context, freelanceID int) ([]models.Mission, error) {
	query := `
		SELECT m.id, m.titre, m.description, m.competences, m.duree, m.budget,
		       m.deadline, m.localisation, m.niveau, m.type_contrat,
		       m.entreprise_id, u.nom, u.avatar_path, m.statut,
		       (SELECT COUNT(*) FROM postulations pc WHERE pc.mission_id = m.id),
		       m.created_at, m.updated_at
		FROM missions m
		JOIN utilisateurs u ON m.entreprise_id = u.id
		JOIN postulations p ON p.mission_id = m.id
		WHERE p.freelance_id = ?
		ORDER BY p.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, freelanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMissions(rows)
}

func scanMissions(rows *sql.Rows) ([]models.Mission, error) {
	missions := []models.Mission{}
	for rows.Next() {
		var m models.Mission
		var competences string
		err := rows.Scan(
			&m.ID, &m.Titre, &m.Description, &competences, &m.Duree, &m.Budget,
			&m.Deadline, &m.Localisation, &m.Niveau, &m.TypeContrat,
			&m.EntrepriseID, &m.EntrepriseNom, &m.EntrepriseAvatar, &m.Statut,
			&m.NbPostulations,
			&m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		m.Competences = unmarshalCompetences(competences)
		missions = append(missions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return missions, nil
}

// SearchMissions is used by the global search box; matches titre or description.
func (r *MissionRepository) SearchMissions(ctx context.Context, term string) ([]models.Mission, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.Mission{}, nil
	}
	query := `
		SELECT m.id, m.titre, m.description, m.competences, m.duree, m.budget,
		       m.deadline, m.localisation, m.niveau, m.type_contrat,
		       m.entreprise_id, u.nom, u.avatar_path, m.statut,
		       (SELECT COUNT(*) FROM postulations p WHERE p.mission_id = m.id),
		       m.created_at, m.updated_at
		FROM missions m
		JOIN utilisateurs u ON m.entreprise_id = u.id
		WHERE m.titre LIKE ? OR m.description LIKE ?
		ORDER BY m.created_at DESC
		LIMIT 50
	`
	like := "%" + term + "%"
	rows, err := r.DB.QueryContext(ctx, query, like, like)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMissions(rows)
}
