package handlers

import (
	"encoding/json"
	"net/http"

	"miraBack/internal/models"
	"miraBack/internal/services"
)

type NotificationHandler struct {
	Service *services.NotificationService
}

func (h *NotificationHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	var token models.DeviceToken
	if err := json.NewDecoder(r.Body).Decode(&token); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if token.Token == "" {
		http.Error(w, "Missing token", http.StatusBadRequest)
		return
	}
	token.UserID = callerID(r)

	if err := h.Service.RegisterToken(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "token registered"})
}
