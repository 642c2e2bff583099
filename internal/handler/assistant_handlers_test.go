package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraksha-dev/suraksha/internal/aiclient"
	"github.com/suraksha-dev/suraksha/shared/api"
)

func TestAssistantChatHandler(t *testing.T) {
	h := newTestHandler()
	router := newTestRouter(h)

	t.Run("returns the assistant text", func(t *testing.T) {
		h.assistant = &MockAssistantService{
			MockChat: func(ctx context.Context, messages []aiclient.Message) (string, error) {
				require.Len(t, messages, 2)
				assert.Equal(t, "assistant", messages[0].Role)
				return "Stay on well-lit streets.", nil
			},
		}

		body := bytes.NewBufferString(`{"messages": [{"role": "assistant", "content": "Hi"}, {"role": "user", "content": "Any tips for walking home late?"}]}`)
		req := asUser(httptest.NewRequest(http.MethodPost, "/v1/assistant/chat", body), testUser)
		rr := serve(router, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.AssistantResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Stay on well-lit streets.", resp.Text)
	})

	t.Run("empty message list", func(t *testing.T) {
		body := bytes.NewBufferString(`{"messages": []}`)
		req := asUser(httptest.NewRequest(http.MethodPost, "/v1/assistant/chat", body), testUser)
		rr := serve(router, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("failure statuses", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
		}{
			{"timeout", aiclient.ErrTimeout, http.StatusGatewayTimeout},
			{"missing key", aiclient.ErrMissingKey, http.StatusServiceUnavailable},
			{"quota", aiclient.ErrQuota, http.StatusTooManyRequests},
			{"empty reply", aiclient.ErrEmpty, http.StatusBadGateway},
			{"upstream", aiclient.ErrUpstream, http.StatusBadGateway},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				h.assistant = &MockAssistantService{
					MockChat: func(ctx context.Context, messages []aiclient.Message) (string, error) {
						return "", tc.err
					},
				}

				body := bytes.NewBufferString(`{"messages": [{"role": "user", "content": "hello"}]}`)
				req := asUser(httptest.NewRequest(http.MethodPost, "/v1/assistant/chat", body), testUser)
				rr := serve(router, req)

				assert.Equal(t, tc.want, rr.Code)
			})
		}
	})
}

func TestAssistantSchemesHandler(t *testing.T) {
	h := newTestHandler()
	router := newTestRouter(h)

	t.Run("passes the query through", func(t *testing.T) {
		h.assistant = &MockAssistantService{
			MockSchemes: func(ctx context.Context, query string) (string, error) {
				assert.Equal(t, "widow pension", query)
				return "Here are the schemes...", nil
			},
		}

		body := bytes.NewBufferString(`{"query": "widow pension"}`)
		req := asUser(httptest.NewRequest(http.MethodPost, "/v1/assistant/schemes", body), testUser)
		rr := serve(router, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.AssistantResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Here are the schemes...", resp.Text)
	})

	t.Run("missing query", func(t *testing.T) {
		body := bytes.NewBufferString(`{}`)
		req := asUser(httptest.NewRequest(http.MethodPost, "/v1/assistant/schemes", body), testUser)
		rr := serve(router, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		body := bytes.NewBufferString(`{"query": "widow pension"}`)
		rr := serve(router, httptest.NewRequest(http.MethodPost, "/v1/assistant/schemes", body))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
