package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"miraBack/internal/models"
	"miraBack/internal/services"
)

type PostulationHandler struct {
	Service *services.PostulationService
}

func (h *PostulationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var post models.Postulation
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	post.FreelanceID = callerID(r)

	created, err := h.Service.Apply(r.Context(), post)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *PostulationHandler) GetByMission(w http.ResponseWriter, r *http.Request) {
	missionID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid mission ID", http.StatusBadRequest)
		return
	}

	posts, err := h.Service.GetByMission(r.Context(), missionID, callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(posts)
}

func (h *PostulationHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Service.GetByFreelance(r.Context(), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(posts)
}

func (h *PostulationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid postulation ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.Accept(r.Context(), id, callerID(r)); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "postulation acceptée"})
}

func (h *PostulationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid postulation ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.Reject(r.Context(), id, callerID(r)); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "postulation refusée"})
}
