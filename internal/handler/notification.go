package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suraksha-dev/suraksha/shared/api"
	"github.com/suraksha-dev/suraksha/shared/utils"
)

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	notifications := h.notifications.For(user.Id)
	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}
	writeJSON(w, api.NotificationListResponse{Notifications: notifications, Unread: unread})
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	if err := h.notifications.MarkRead(user.Id, chi.URLParam(r, "notification")); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	h.notifications.MarkAllRead(user.Id)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	h.notifications.Clear(user.Id)
	w.WriteHeader(http.StatusOK)
}
