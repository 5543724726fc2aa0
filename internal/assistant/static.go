package assistant

import (
	"context"

	"github.com/agrodat/property360/internal/model"
)

// Static replies without a network dependency. Wired in when no API key is
// configured so the chat panel keeps working in development.
type Static struct{}

func NewStatic() *Static { return &Static{} }

func (Static) Reply(_ context.Context, _ []model.ChatMessage, _ string) (string, error) {
	return "Analista IA em modo offline: configure ASSISTANT_API_KEY para ativar as respostas. " +
		"Enquanto isso, os painéis de produtividade e financeiro seguem disponíveis.", nil
}
