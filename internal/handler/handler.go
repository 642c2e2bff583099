package handler

import (
	"encoding/json"
	"net/http"

	"github.com/suraksha-dev/suraksha/internal/render"
	"github.com/suraksha-dev/suraksha/internal/service"
	"github.com/suraksha-dev/suraksha/shared/config"
	"github.com/suraksha-dev/suraksha/shared/logger"
)

type Handler struct {
	auth          service.AuthService
	forum         service.ForumService
	post          service.PostService
	vote          service.VoteService
	notifications service.NotificationService
	assistant     service.AssistantService
	renderer      *render.Renderer
	cfg           *config.Config
}

func New(
	auth service.AuthService,
	forum service.ForumService,
	post service.PostService,
	vote service.VoteService,
	notifications service.NotificationService,
	assistant service.AssistantService,
	renderer *render.Renderer,
	cfg *config.Config,
) *Handler {
	return &Handler{auth, forum, post, vote, notifications, assistant, renderer, cfg}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
