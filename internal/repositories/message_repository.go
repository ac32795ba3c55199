package repositories

import (
	"context"
	"database/sql"
	"time"

	"miraBack/internal/models"
)

type MessageRepository struct {
	Db *sql.DB
}

// CreateMessage appends a message to the mission conversation.
func (r *MessageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	message.CreatedAt = time.Now()
	query := `
		INSERT INTO messages (mission_id, sender_id, contenu, created_at)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.Db.ExecContext(ctx, query, message.MissionID, message.SenderID, message.Contenu, message.CreatedAt)
	if err != nil {
		return models.Message{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Message{}, err
	}
	message.ID = int(id)
	return message, nil
}

// GetMessagesForMission returns the conversation in arrival order, paginated.
func (r *MessageRepository) GetMessagesForMission(ctx context.Context, missionID, page, pageSize int) ([]models.Message, error) {
	if pageSize <= 0 {
		pageSize = 50
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * pageSize
	query := `
		SELECT msg.id, msg.mission_id, msg.sender_id, msg.contenu, msg.created_at,
		       u.nom, u.avatar_path
		FROM messages msg
		JOIN utilisateurs u ON msg.sender_id = u.id
		WHERE msg.mission_id = ?
		ORDER BY msg.created_at ASC
		LIMIT ? OFFSET ?
	`
	rows, err := r.Db.QueryContext(ctx, query, missionID, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var message models.Message
		err := rows.Scan(&message.ID, &message.MissionID, &message.SenderID, &message.Contenu, &message.CreatedAt,
			&message.SenderNom, &message.SenderAvatar)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}
