package service

import (
	"context"

	"github.com/suraksha-dev/suraksha/internal/aiclient"
)

// to mock service in tests
type AssistantService interface {
	Chat(ctx context.Context, messages []aiclient.Message) (string, error)
	SearchSchemes(ctx context.Context, query string) (string, error)
}

type Assistant struct {
	client AssistantClient
}

type AssistantClient interface {
	Chat(ctx context.Context, messages []aiclient.Message) (string, error)
	SearchSchemes(ctx context.Context, query string) (string, error)
}

func NewAssistant(client AssistantClient) AssistantService {
	return &Assistant{client}
}

func (a *Assistant) Chat(ctx context.Context, messages []aiclient.Message) (string, error) {
	return a.client.Chat(ctx, messages)
}

func (a *Assistant) SearchSchemes(ctx context.Context, query string) (string, error) {
	return a.client.SearchSchemes(ctx, query)
}
