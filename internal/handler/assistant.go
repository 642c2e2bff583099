package handler

import (
	"errors"
	"net/http"

	"github.com/suraksha-dev/suraksha/internal/aiclient"
	"github.com/suraksha-dev/suraksha/shared/api"
	"github.com/suraksha-dev/suraksha/shared/logger"
	"github.com/suraksha-dev/suraksha/shared/utils"
)

func (h *Handler) AssistantChat(w http.ResponseWriter, r *http.Request) {
	if requireUser(w, r) == nil {
		return
	}

	var body api.ChatRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	messages := make([]aiclient.Message, len(body.Messages))
	for i, m := range body.Messages {
		messages[i] = aiclient.Message{Role: m.Role, Content: m.Content}
	}

	text, err := h.assistant.Chat(r.Context(), messages)
	if err != nil {
		writeAssistantError(w, err)
		return
	}
	writeJSON(w, api.AssistantResponse{Text: text})
}

func (h *Handler) AssistantSchemes(w http.ResponseWriter, r *http.Request) {
	if requireUser(w, r) == nil {
		return
	}

	var body api.SchemesRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	text, err := h.assistant.SearchSchemes(r.Context(), body.Query)
	if err != nil {
		writeAssistantError(w, err)
		return
	}
	writeJSON(w, api.AssistantResponse{Text: text})
}

// writeAssistantError maps client failure kinds onto user-facing
// messages and statuses.
func writeAssistantError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, aiclient.ErrTimeout):
		http.Error(w, "Response took too long. Please try again.", http.StatusGatewayTimeout)
	case errors.Is(err, aiclient.ErrMissingKey):
		http.Error(w, "Assistant is not configured.", http.StatusServiceUnavailable)
	case errors.Is(err, aiclient.ErrQuota):
		http.Error(w, "Assistant is busy. Please try again later.", http.StatusTooManyRequests)
	case errors.Is(err, aiclient.ErrEmpty):
		http.Error(w, "Assistant returned nothing. Please rephrase.", http.StatusBadGateway)
	default:
		logger.Log.Error("assistant request failed", "error", err)
		http.Error(w, "Failed to generate response. Please try again.", http.StatusBadGateway)
	}
}
