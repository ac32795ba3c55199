package repositories

import (
	"context"
	"database/sql"
)

// getAverageNote computes the mean avis note for a freelance.
func getAverageNote(ctx context.Context, db *sql.DB, freelanceID int) float64 {
	var avg sql.NullFloat64
	if err := db.QueryRowContext(ctx, `SELECT COALESCE(AVG(note),0) FROM avis WHERE freelance_id = ?`, freelanceID).Scan(&avg); err != nil {
		return 0
	}
	if avg.Valid {
		return avg.Float64
	}
	return 0
}
