package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"miraBack/internal/models"
	"miraBack/internal/services"
)

type AvisHandler struct {
	Service *services.AvisService
}

func (h *AvisHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req models.ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if id, err := strconv.Atoi(getParam(r, "id")); err == nil {
		req.MissionID = id
	}

	avis, err := h.Service.Confirm(r.Context(), req, callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(avis)
}

func (h *AvisHandler) GetByFreelance(w http.ResponseWriter, r *http.Request) {
	freelanceID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid freelance ID", http.StatusBadRequest)
		return
	}

	avis, err := h.Service.GetByFreelance(r.Context(), freelanceID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(avis)
}

func (h *AvisHandler) GetByMission(w http.ResponseWriter, r *http.Request) {
	missionID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid mission ID", http.StatusBadRequest)
		return
	}

	avis, err := h.Service.GetByMission(r.Context(), missionID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(avis)
}
