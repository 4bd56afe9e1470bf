package service

import (
	"context"

	"github.com/azpdscc/website-api/internal/ai"
	"github.com/rs/zerolog"
)

// chatService is the concrete implementation of ChatService
type chatService struct {
	aiClient ai.Client
	log      zerolog.Logger
}

// newChatService creates a new ChatService
func newChatService(aiClient ai.Client, log zerolog.Logger) *chatService {
	return &chatService{
		aiClient: aiClient,
		log:      log.With().Str("service", "chat").Logger(),
	}
}

// Reply answers a visitor question. A missing model provider or a
// failed generation both degrade to the static fallback reply; the
// chatbot never errors toward the visitor.
func (s *chatService) Reply(ctx context.Context, message string) (*ai.ChatOutput, error) {
	out := ai.GenerateChatReply(ctx, s.aiClient, ai.ChatInput{Message: message})
	if out.Fallback {
		s.log.Warn().Msg("Chat reply using fallback copy")
	}
	return out, nil
}
