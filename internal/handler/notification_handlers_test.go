package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraksha-dev/suraksha/shared/api"
	"github.com/suraksha-dev/suraksha/shared/domain"
)

func TestGetNotificationsHandler(t *testing.T) {
	h := newTestHandler()
	router := newTestRouter(h)

	ref := domain.PostRef{Kind: domain.KindDiscussion, Id: "d1"}
	h.notifications.Notify("u1", "Bina replied to your discussion", ref)
	h.notifications.Notify("u1", "Chitra replied to your discussion", ref)
	h.notifications.Notify("someone-else", "not yours", ref)

	req := asUser(httptest.NewRequest(http.MethodGet, "/v1/notifications", nil), testUser)
	rr := serve(router, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp api.NotificationListResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, 2, resp.Unread)
	// Newest first.
	assert.Equal(t, "Chitra replied to your discussion", resp.Notifications[0].Message)
}

func TestMarkNotificationReadHandler(t *testing.T) {
	h := newTestHandler()
	router := newTestRouter(h)

	h.notifications.Notify("u1", "hello", domain.PostRef{Kind: domain.KindNote, Id: "n1"})
	id := h.notifications.For("u1")[0].Id

	t.Run("existing notification", func(t *testing.T) {
		req := asUser(httptest.NewRequest(http.MethodPost, "/v1/notifications/"+id+"/read", nil), testUser)
		rr := serve(router, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, h.notifications.For("u1")[0].IsRead)
	})

	t.Run("unknown notification", func(t *testing.T) {
		req := asUser(httptest.NewRequest(http.MethodPost, "/v1/notifications/nope/read", nil), testUser)
		rr := serve(router, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestMarkAllAndClearNotificationsHandler(t *testing.T) {
	h := newTestHandler()
	router := newTestRouter(h)

	ref := domain.PostRef{Kind: domain.KindNote, Id: "n1"}
	h.notifications.Notify("u1", "one", ref)
	h.notifications.Notify("u1", "two", ref)

	req := asUser(httptest.NewRequest(http.MethodPost, "/v1/notifications/read", nil), testUser)
	rr := serve(router, req)
	require.Equal(t, http.StatusOK, rr.Code)
	for _, n := range h.notifications.For("u1") {
		assert.True(t, n.IsRead)
	}

	req = asUser(httptest.NewRequest(http.MethodDelete, "/v1/notifications", nil), testUser)
	rr = serve(router, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, h.notifications.For("u1"))
}

func TestNotificationsRequireAuth(t *testing.T) {
	h := newTestHandler()
	router := newTestRouter(h)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/v1/notifications", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
