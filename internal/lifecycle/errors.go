package lifecycle

import (
	"errors"
)

var (
	ErrTitreTooShort       = errors.New("titre must be at least 5 characters")
	ErrDescriptionTooShort = errors.New("description must be at least 20 characters")
	ErrDureeMissing        = errors.New("duree is required")
	ErrBudgetInvalid       = errors.New("budget must be greater than zero")
	ErrCompetencesMissing  = errors.New("at least one competence is required")
	ErrNoteOutOfRange      = errors.New("note must be between 1 and 5")
)
