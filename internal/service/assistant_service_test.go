package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agrodat/property360/internal/model"
)

type scriptedClient struct {
	reply string
	err   error

	started     chan struct{}
	startedOnce sync.Once
	release     chan struct{}

	gotHistory []model.ChatMessage
	gotPrompt  string
}

func (c *scriptedClient) Reply(_ context.Context, history []model.ChatMessage, prompt string) (string, error) {
	c.gotHistory = history
	c.gotPrompt = prompt
	if c.started != nil {
		c.startedOnce.Do(func() { close(c.started) })
	}
	if c.release != nil {
		<-c.release
	}
	return c.reply, c.err
}

func TestAskAppendsBothTurns(t *testing.T) {
	client := &scriptedClient{reply: "Plante soja em outubro."}
	svc := NewAssistantService(client, zerolog.Nop())

	reply, err := svc.Ask(context.Background(), "Quando plantar soja?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if reply.Role != model.ChatRoleModel || reply.Text != "Plante soja em outubro." {
		t.Fatalf("reply = %+v", reply)
	}

	transcript := svc.Transcript()
	if len(transcript) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(transcript))
	}
	if transcript[0].Role != model.ChatRoleUser || transcript[0].Text != "Quando plantar soja?" {
		t.Fatalf("user turn = %+v", transcript[0])
	}
}

func TestAskPassesPriorTurnsAsHistory(t *testing.T) {
	client := &scriptedClient{reply: "ok"}
	svc := NewAssistantService(client, zerolog.Nop())

	if _, err := svc.Ask(context.Background(), "primeira"); err != nil {
		t.Fatalf("first ask: %v", err)
	}
	if _, err := svc.Ask(context.Background(), "segunda"); err != nil {
		t.Fatalf("second ask: %v", err)
	}

	if len(client.gotHistory) != 2 {
		t.Fatalf("history length = %d, want the two prior turns", len(client.gotHistory))
	}
	if client.gotPrompt != "segunda" {
		t.Fatalf("prompt = %q", client.gotPrompt)
	}
}

func TestAskFallbackOnClientError(t *testing.T) {
	client := &scriptedClient{err: errors.New("upstream down")}
	svc := NewAssistantService(client, zerolog.Nop())

	reply, err := svc.Ask(context.Background(), "oi")
	if err != nil {
		t.Fatalf("ask must not surface the client error, got %v", err)
	}
	if reply.Text != FallbackReply {
		t.Fatalf("reply = %q, want fallback", reply.Text)
	}

	transcript := svc.Transcript()
	if len(transcript) != 2 || transcript[1].Text != FallbackReply {
		t.Fatalf("transcript = %+v", transcript)
	}
}

func TestAskFallbackOnEmptyReply(t *testing.T) {
	client := &scriptedClient{reply: "   "}
	svc := NewAssistantService(client, zerolog.Nop())

	reply, err := svc.Ask(context.Background(), "oi")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if reply.Text != FallbackReply {
		t.Fatalf("reply = %q, want fallback", reply.Text)
	}
}

func TestAskRejectsEmptyPrompt(t *testing.T) {
	svc := NewAssistantService(&scriptedClient{}, zerolog.Nop())

	if _, err := svc.Ask(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestAskRejectsSecondCallWhileBusy(t *testing.T) {
	client := &scriptedClient{
		reply:   "ok",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewAssistantService(client, zerolog.Nop())

	done := make(chan error, 1)
	go func() {
		_, err := svc.Ask(context.Background(), "primeira")
		done <- err
	}()

	<-client.started
	if _, err := svc.Ask(context.Background(), "segunda"); !errors.Is(err, ErrAssistantBusy) {
		t.Fatalf("err = %v, want ErrAssistantBusy", err)
	}

	close(client.release)
	if err := <-done; err != nil {
		t.Fatalf("first ask: %v", err)
	}

	// rejected question must leave no trace
	transcript := svc.Transcript()
	if len(transcript) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(transcript))
	}

	// and the slot frees up afterwards
	if _, err := svc.Ask(context.Background(), "terceira"); err != nil {
		t.Fatalf("ask after release: %v", err)
	}
}
