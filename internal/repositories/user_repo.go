package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"miraBack/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	competences, err := marshalCompetences(user.Competences)
	if err != nil {
		return models.User{}, err
	}

	query := `
		INSERT INTO utilisateurs (nom, email, password, role, bio, competences, ville, site_web, linkedin, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	user.CreatedAt = time.Now()
	user.UpdatedAt = &user.CreatedAt
	result, err := r.DB.ExecContext(ctx, query,
		user.Nom, user.Email, user.Password, user.Role, user.Bio, competences,
		user.Ville, user.SiteWeb, user.Linkedin,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return models.User{}, models.ErrDuplicateEmail
		}
		return models.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	var user models.User
	var competences string
	query := `
		SELECT id, nom, email, password, role, bio, competences, ville, avatar_path, cv_path, site_web, linkedin, created_at, updated_at
		FROM utilisateurs
		WHERE id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Nom, &user.Email, &user.Password, &user.Role, &user.Bio, &competences,
		&user.Ville, &user.AvatarPath, &user.CVPath, &user.SiteWeb, &user.Linkedin,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	user.Competences = unmarshalCompetences(competences)
	user.NoteMoyenne = getAverageNote(ctx, r.DB, user.ID)
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	var competences string
	query := `
		SELECT id, nom, email, password, role, bio, competences, ville, avatar_path, cv_path, site_web, linkedin, created_at, updated_at
		FROM utilisateurs
		WHERE email = ?
	`
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Nom, &user.Email, &user.Password, &user.Role, &user.Bio, &competences,
		&user.Ville, &user.AvatarPath, &user.CVPath, &user.SiteWeb, &user.Linkedin,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, nil
	}
	if err != nil {
		return models.User{}, err
	}
	user.Competences = unmarshalCompetences(competences)
	return user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	competences, err := marshalCompetences(user.Competences)
	if err != nil {
		return models.User{}, err
	}

	query := `
		UPDATE utilisateurs
		SET nom = ?, bio = ?, competences = ?, ville = ?, site_web = ?, linkedin = ?, updated_at = ?
		WHERE id = ?
	`
	updatedAt := time.Now()
	user.UpdatedAt = &updatedAt
	result, err := r.DB.ExecContext(ctx, query,
		user.Nom, user.Bio, competences, user.Ville, user.SiteWeb, user.Linkedin,
		user.UpdatedAt, user.ID,
	)
	if err != nil {
		return models.User{}, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if rowsAffected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return r.GetUserByID(ctx, user.ID)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int, hashedPassword string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE utilisateurs SET password = ?, updated_at = NOW() WHERE id = ?`, hashedPassword, userID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateAvatarPath(ctx context.Context, userID int, avatarURL string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE utilisateurs SET avatar_path = ?, updated_at = NOW() WHERE id = ?`, avatarURL, userID)
	return err
}

func (r *UserRepository) UpdateCVPath(ctx context.Context, userID int, cvURL string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE utilisateurs SET cv_path = ?, updated_at = NOW() WHERE id = ?`, cvURL, userID)
	return err
}

// SearchTalents filters freelances for the talents page.
func (r *UserRepository) SearchTalents(ctx context.Context, filter models.TalentFilter) ([]models.User, error) {
	query := `
		SELECT u.id, u.nom, u.role, u.bio, u.competences, u.ville, u.avatar_path, u.site_web, u.linkedin,
		       (SELECT COALESCE(AVG(a.note), 0) FROM avis a WHERE a.freelance_id = u.id) AS note_moyenne,
		       u.created_at
		FROM utilisateurs u
		WHERE u.role = ?
	`
	args := []interface{}{models.RoleFreelance}
	if filter.Competence != "" {
		query += " AND u.competences LIKE ?"
		args = append(args, "%"+filter.Competence+"%")
	}
	if filter.Ville != "" {
		query += " AND u.ville = ?"
		args = append(args, filter.Ville)
	}
	if filter.NoteMin > 0 {
		query += " HAVING note_moyenne >= ?"
		args = append(args, filter.NoteMin)
	}
	query += " ORDER BY note_moyenne DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		var competences string
		err := rows.Scan(
			&user.ID, &user.Nom, &user.Role, &user.Bio, &competences, &user.Ville,
			&user.AvatarPath, &user.SiteWeb, &user.Linkedin, &user.NoteMoyenne,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		user.Competences = unmarshalCompetences(competences)
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// Sessions hold refresh tokens for the sliding re-auth in the JWT middleware.

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	query := `
		INSERT INTO sessions (user_id, role, refresh_token, expires_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE refresh_token = VALUES(refresh_token), expires_at = VALUES(expires_at)
	`
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.Role, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session
	query := `SELECT user_id, role, refresh_token, expires_at FROM sessions WHERE refresh_token = ?`
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *UserRepository) DeleteSession(ctx context.Context, userID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}
