package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"miraBack/internal/models"
)

type PostRepository struct {
	DB *sql.DB
}

func (r *PostRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	post.CreatedAt = time.Now()
	query := `
		INSERT INTO posts (user_id, contenu, image_path, created_at)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query, post.UserID, post.Contenu, post.ImagePath, post.CreatedAt)
	if err != nil {
		return models.Post{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Post{}, err
	}
	post.ID = int(id)
	return post, nil
}

// GetFeed lists the newest posts of the user and everyone they follow.
func (r *PostRepository) GetFeed(ctx context.Context, userID, page, pageSize int) ([]models.Post, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * pageSize
	query := `
		SELECT p.id, p.user_id, p.contenu, p.image_path, p.created_at,
		       u.nom, u.avatar_path, u.role
		FROM posts p
		JOIN utilisateurs u ON p.user_id = u.id
		WHERE p.user_id = ?
		   OR p.user_id IN (SELECT followed_id FROM follows WHERE follower_id = ?)
		ORDER BY p.created_at DESC
		LIMIT ? OFFSET ?
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, userID, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *PostRepository) GetPostsByUser(ctx context.Context, userID int) ([]models.Post, error) {
	query := `
		SELECT p.id, p.user_id, p.contenu, p.image_path, p.created_at,
		       u.nom, u.avatar_path, u.role
		FROM posts p
		JOIN utilisateurs u ON p.user_id = u.id
		WHERE p.user_id = ?
		ORDER BY p.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *PostRepository) GetPostByID(ctx context.Context, id int) (models.Post, error) {
	var post models.Post
	query := `SELECT id, user_id, contenu, image_path, created_at FROM posts WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&post.ID, &post.UserID, &post.Contenu, &post.ImagePath, &post.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, models.ErrPostNotFound
	}
	if err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (r *PostRepository) DeletePost(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrPostNotFound
	}
	return nil
}

func scanPosts(rows *sql.Rows) ([]models.Post, error) {
	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		err := rows.Scan(&post.ID, &post.UserID, &post.Contenu, &post.ImagePath, &post.CreatedAt,
			&post.AuteurNom, &post.AuteurAvatar, &post.AuteurRole)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}
