package handler

import (
	"encoding/json"
	"net/http"

	"batepapo/internal/api/middleware"
	"batepapo/internal/api/request"
	"batepapo/internal/api/response"
	"batepapo/internal/services/presence"
)

// ParticipantHandler handles participant registration and presence endpoints
type ParticipantHandler struct {
	presenceService *presence.Service
}

// NewParticipantHandler creates a new participant handler
func NewParticipantHandler(presenceService *presence.Service) *ParticipantHandler {
	return &ParticipantHandler{
		presenceService: presenceService,
	}
}

// Join handles POST /participants
func (h *ParticipantHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req request.JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := request.Validate(req); err != nil {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	participant, err := h.presenceService.Join(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ParticipantFromModel(participant))
}

// List handles GET /participants
func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	participants, err := h.presenceService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ParticipantsFromModel(participants))
}

// Heartbeat handles POST /status
func (h *ParticipantHandler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	requester := middleware.MustGetRequester(r.Context())

	if err := h.presenceService.Heartbeat(r.Context(), requester); err != nil {
		WriteError(w, err)
		return
	}

	response.Status(w, http.StatusOK)
}
