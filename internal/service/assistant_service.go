package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agrodat/property360/internal/assistant"
	"github.com/agrodat/property360/internal/model"
)

// FallbackReply is appended in place of the model turn when the assistant
// call fails for any reason; the transcript only ever carries text.
const FallbackReply = "Desculpe, não consegui processar sua solicitação no momento. Tente novamente mais tarde."

// AssistantService keeps the chat transcript and the single in-flight slot
// for the external generative-text call. The transcript lives in process
// memory only; it is not one of the persisted documents.
type AssistantService struct {
	client assistant.Client
	log    zerolog.Logger

	mu         sync.Mutex
	busy       bool
	transcript []model.ChatMessage
}

func NewAssistantService(client assistant.Client, log zerolog.Logger) *AssistantService {
	return &AssistantService{client: client, log: log}
}

func (s *AssistantService) Transcript() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	transcript := make([]model.ChatMessage, len(s.transcript))
	copy(transcript, s.transcript)
	return transcript
}

// Ask forwards the question plus the prior turns to the assistant. A second
// question while one is outstanding is rejected, not queued. Both turns are
// appended once the call resolves, fallback included.
func (s *AssistantService) Ask(ctx context.Context, prompt string) (model.ChatMessage, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return model.ChatMessage{}, fmt.Errorf("%w: empty message", ErrInvalidInput)
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return model.ChatMessage{}, ErrAssistantBusy
	}
	s.busy = true
	history := make([]model.ChatMessage, len(s.transcript))
	copy(history, s.transcript)
	s.mu.Unlock()

	text, err := s.client.Reply(ctx, history, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			s.log.Warn().Err(err).Msg("assistant call failed, answering with fallback")
		}
		text = FallbackReply
	}
	reply := model.ChatMessage{Role: model.ChatRoleModel, Text: text}

	s.mu.Lock()
	s.busy = false
	s.transcript = append(s.transcript,
		model.ChatMessage{Role: model.ChatRoleUser, Text: prompt},
		reply,
	)
	s.mu.Unlock()

	return reply, nil
}
