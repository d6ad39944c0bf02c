package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"batepapo/internal/api/handler"
	"batepapo/internal/api/middleware"
	"batepapo/internal/services/chat"
	"batepapo/internal/services/presence"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	PresenceService *presence.Service
	ChatService     *chat.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	participantHandler := handler.NewParticipantHandler(cfg.PresenceService)
	messageHandler := handler.NewMessageHandler(cfg.ChatService)

	// Create middleware
	identityMiddleware := middleware.Identity()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Participant routes carry no identity: joining is how a name comes
	// to exist, and the roster is public
	r.HandleFunc("/participants", participantHandler.Join).Methods(http.MethodPost)
	r.HandleFunc("/participants", participantHandler.List).Methods(http.MethodGet)

	// Message routes require the User header
	messages := r.PathPrefix("/messages").Subrouter()
	messages.Use(identityMiddleware)
	messages.HandleFunc("", messageHandler.Post).Methods(http.MethodPost)
	messages.HandleFunc("", messageHandler.List).Methods(http.MethodGet)
	messages.HandleFunc("/{id}", messageHandler.Update).Methods(http.MethodPut)
	messages.HandleFunc("/{id}", messageHandler.Delete).Methods(http.MethodDelete)

	// Heartbeat requires the User header
	status := r.PathPrefix("/status").Subrouter()
	status.Use(identityMiddleware)
	status.HandleFunc("", participantHandler.Heartbeat).Methods(http.MethodPost)

	// Health check endpoint
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
