package handlers

import (
	"errors"
	"net/http"

	"miraBack/internal/lifecycle"
	"miraBack/internal/models"
)

// writeError maps domain sentinel errors to HTTP statuses in one place.
// Anything unrecognized is a 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrMissionNotFound),
		errors.Is(err, models.ErrPostulationNotFound),
		errors.Is(err, models.ErrPostNotFound),
		errors.Is(err, models.ErrNoRecord):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrForbidden):
		http.Error(w, "access denied", http.StatusForbidden)
	case errors.Is(err, models.ErrAlreadyApplied),
		errors.Is(err, models.ErrAlreadyRated),
		errors.Is(err, models.ErrAlreadyFollowing),
		errors.Is(err, models.ErrStatusConflict),
		errors.Is(err, models.ErrMissionAlreadyFinished):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, models.ErrNoAcceptedPostulation),
		errors.Is(err, lifecycle.ErrInvalidTransition),
		errors.Is(err, lifecycle.ErrTitreTooShort),
		errors.Is(err, lifecycle.ErrDescriptionTooShort),
		errors.Is(err, lifecycle.ErrDureeMissing),
		errors.Is(err, lifecycle.ErrBudgetInvalid),
		errors.Is(err, lifecycle.ErrCompetencesMissing),
		errors.Is(err, lifecycle.ErrNoteOutOfRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
