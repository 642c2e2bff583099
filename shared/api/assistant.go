package api

// Request DTOs

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

type SchemesRequest struct {
	Query string `json:"query" validate:"required"`
}

// Response DTOs

type AssistantResponse struct {
	Text string `json:"text"`
}
