package repositories

import (
	"context"
	"database/sql"
	"time"

	"miraBack/internal/models"
)

type DeviceTokenRepository struct {
	DB *sql.DB
}

func (r *DeviceTokenRepository) SaveToken(ctx context.Context, token models.DeviceToken) error {
	query := `
		INSERT INTO device_tokens (user_id, token, created_at)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE token = VALUES(token), created_at = VALUES(created_at)
	`
	_, err := r.DB.ExecContext(ctx, query, token.UserID, token.Token, time.Now())
	return err
}

func (r *DeviceTokenRepository) GetTokensByUser(ctx context.Context, userID int) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT token FROM device_tokens WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := []string{}
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *DeviceTokenRepository) DeleteToken(ctx context.Context, userID int, token string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM device_tokens WHERE user_id = ? AND token = ?`, userID, token)
	return err
}
