package assistant

import (
	"context"

	"github.com/agrodat/property360/internal/model"
)

// Client produces the model turn of the analyst chat. Implementations
// return plain text or an error; the caller owns the fallback wording.
type Client interface {
	Reply(ctx context.Context, history []model.ChatMessage, prompt string) (string, error)
}
