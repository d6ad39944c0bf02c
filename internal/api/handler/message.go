package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"batepapo/internal/api/middleware"
	"batepapo/internal/api/request"
	"batepapo/internal/api/response"
	"batepapo/internal/model"
	"batepapo/internal/services/chat"
)

// MessageHandler handles message endpoints
type MessageHandler struct {
	chatService *chat.Service
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(chatService *chat.Service) *MessageHandler {
	return &MessageHandler{
		chatService: chatService,
	}
}

// Post handles POST /messages
func (h *MessageHandler) Post(w http.ResponseWriter, r *http.Request) {
	requester := middleware.MustGetRequester(r.Context())

	var req request.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := request.Validate(req); err != nil {
		WriteError(w, NewInvalidRequestError("to, text, and a valid type are required"))
		return
	}

	msg, err := h.chatService.Post(r.Context(), requester, req.To, req.Text, model.MessageType(req.Type))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MessageFromModel(msg))
}

// List handles GET /messages
//
// The limit query parameter is optional. When present it must parse as
// an integer; the service rejects non-positive values.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	requester := middleware.MustGetRequester(r.Context())

	var limit *int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, model.ErrInvalidLimit)
			return
		}
		limit = &n
	}

	messages, err := h.chatService.ListFor(r.Context(), requester, limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessagesFromModel(messages))
}

// Update handles PUT /messages/{id}
func (h *MessageHandler) Update(w http.ResponseWriter, r *http.Request) {
	requester := middleware.MustGetRequester(r.Context())
	id := mux.Vars(r)["id"]

	var req request.EditMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := request.Validate(req); err != nil {
		WriteError(w, NewInvalidRequestError("to, text, and a valid type are required"))
		return
	}

	msg, err := h.chatService.Update(r.Context(), id, requester, req.To, req.Text, model.MessageType(req.Type))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageFromModel(msg))
}

// Delete handles DELETE /messages/{id}
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requester := middleware.MustGetRequester(r.Context())
	id := mux.Vars(r)["id"]

	if err := h.chatService.Delete(r.Context(), id, requester); err != nil {
		WriteError(w, err)
		return
	}

	response.Status(w, http.StatusOK)
}
