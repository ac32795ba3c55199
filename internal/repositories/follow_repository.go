package repositories

import (
	"context"
	"database/sql"
	"time"

	"miraBack/internal/models"
)

type FollowRepository struct {
	DB *sql.DB
}

func (r *FollowRepository) Follow(ctx context.Context, followerID, followedID int) error {
	query := `INSERT INTO follows (follower_id, followed_id, created_at) VALUES (?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, followerID, followedID, time.Now())
	if err != nil {
		if isDuplicateEntryError(err) {
			return models.ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (r *FollowRepository) Unfollow(ctx context.Context, followerID, followedID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM follows WHERE follower_id = ? AND followed_id = ?`, followerID, followedID)
	return err
}

func (r *FollowRepository) IsFollowing(ctx context.Context, followerID, followedID int) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM follows WHERE follower_id = ? AND followed_id = ?`, followerID, followedID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FollowRepository) GetFollowers(ctx context.Context, userID int) ([]models.User, error) {
	query := `
		SELECT u.id, u.nom, u.role, u.ville, u.avatar_path
		FROM follows f
		JOIN utilisateurs u ON f.follower_id = u.id
		WHERE f.followed_id = ?
		ORDER BY f.created_at DESC
	`
	return r.queryFollowUsers(ctx, query, userID)
}

func (r *FollowRepository) GetFollowing(ctx context.Context, userID int) ([]models.User, error) {
	query := `
		SELECT u.id, u.nom, u.role, u.ville, u.avatar_path
		FROM follows f
		JOIN utilisateurs u ON f.followed_id = u.id
		WHERE f.follower_id = ?
		ORDER BY f.created_at DESC
	`
	return r.queryFollowUsers(ctx, query, userID)
}

func (r *FollowRepository) GetCounts(ctx context.Context, userID int) (models.FollowCounts, error) {
	var counts models.FollowCounts
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM follows WHERE followed_id = ?`, userID).Scan(&counts.Followers)
	if err != nil {
		return models.FollowCounts{}, err
	}
	err = r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM follows WHERE follower_id = ?`, userID).Scan(&counts.Following)
	if err != nil {
		return models.FollowCounts{}, err
	}
	return counts, nil
}

func (r *FollowRepository) queryFollowUsers(ctx context.Context, query string, userID int) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Nom, &user.Role, &user.Ville, &user.AvatarPath); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
