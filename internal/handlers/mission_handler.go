package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"miraBack/internal/models"
	"miraBack/internal/services"
)

type MissionHandler struct {
	Service *services.MissionService
}

func (h *MissionHandler) CreateMission(w http.ResponseWriter, r *http.Request) {
	var mission models.Mission
	if err := json.NewDecoder(r.Body).Decode(&mission); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	mission.EntrepriseID = callerID(r)

	created, err := h.Service.CreateMission(r.Context(), mission)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *MissionHandler) GetMissionByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid mission ID", http.StatusBadRequest)
		return
	}

	mission, err := h.Service.GetMissionByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mission)
}

func (h *MissionHandler) GetMissions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.MissionFilter{
		Statut:     q.Get("statut"),
		Competence: q.Get("competence"),
	}
	if v := q.Get("budget_min"); v != "" {
		filter.BudgetMin, _ = strconv.ParseFloat(v, 64)
	}
	if v := q.Get("budget_max"); v != "" {
		filter.BudgetMax, _ = strconv.ParseFloat(v, 64)
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.PageSize, _ = strconv.Atoi(q.Get("page_size"))

	missions, err := h.Service.GetMissions(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(missions)
}

func (h *MissionHandler) GetMyMissions(w http.ResponseWriter, r *http.Request) {
	var (
		missions []models.Mission
		err      error
	)
	if callerRole(r) == models.RoleEntreprise {
		missions, err = h.Service.GetMissionsByEntreprise(r.Context(), callerID(r))
	} else {
		missions, err = h.Service.GetMissionsByFreelance(r.Context(), callerID(r))
	}
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(missions)
}

func (h *MissionHandler) SearchMissions(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		http.Error(w, "Missing search term", http.StatusBadRequest)
		return
	}

	missions, err := h.Service.SearchMissions(r.Context(), term)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(missions)
}
