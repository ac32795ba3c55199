package repositories

import (
	"encoding/json"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// Competence lists are stored as JSON arrays in TEXT columns.
func marshalCompetences(competences []string) (string, error) {
	if competences == nil {
		competences = []string{}
	}
	data, err := json.Marshal(competences)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalCompetences(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var competences []string
	if err := json.Unmarshal([]byte(raw), &competences); err != nil {
		return []string{}
	}
	return competences
}

// isDuplicateEntryError reports a MySQL/MariaDB unique constraint violation.
// Duplicate postulations and avis are detected through the constraint itself
// instead of a separate pre-check round trip.
func isDuplicateEntryError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
