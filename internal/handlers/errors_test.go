package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"miraBack/internal/lifecycle"
	"miraBack/internal/models"
)

func TestWriteErrorStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"mission not found", models.ErrMissionNotFound, http.StatusNotFound},
		{"forbidden", models.ErrForbidden, http.StatusForbidden},
		{"already applied", models.ErrAlreadyApplied, http.StatusConflict},
		{"already rated", models.ErrAlreadyRated, http.StatusConflict},
		{"status conflict", models.ErrStatusConflict, http.StatusConflict},
		{"no accepted postulation", models.ErrNoAcceptedPostulation, http.StatusBadRequest},
		{"titre too short", lifecycle.ErrTitreTooShort, http.StatusBadRequest},
		{"note out of range", lifecycle.ErrNoteOutOfRange, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tc.err)
			if rec.Code != tc.want {
				t.Errorf("writeError(%v) status = %d, want %d", tc.err, rec.Code, tc.want)
			}
		})
	}
}

func TestWriteErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.New("dial tcp 10.0.0.5:3306: connection refused"))
	if body := rec.Body.String(); body != "internal server error\n" {
		t.Errorf("unexpected body %q", body)
	}
}
