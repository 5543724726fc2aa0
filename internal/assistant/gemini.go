package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/agrodat/property360/internal/model"
)

// Gemini calls the generateContent REST endpoint of the generative language
// API. The whole conversation travels as a single rendered prompt.
type Gemini struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

func NewGemini(endpoint, key, modelName string) *Gemini {
	return &Gemini{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		model:    modelName,
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

func (c *Gemini) Reply(ctx context.Context, history []model.ChatMessage, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": renderPrompt(history, prompt)}}},
		},
	}
	payload, _ := json.Marshal(reqBody)

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.key)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant service returned %s", resp.Status)
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("assistant returned no candidates")
	}
	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text), nil
}

func renderPrompt(history []model.ChatMessage, prompt string) string {
	var turns strings.Builder
	for _, msg := range history {
		turns.WriteString(string(msg.Role))
		turns.WriteString(": ")
		turns.WriteString(msg.Text)
		turns.WriteString("\n")
	}

	return fmt.Sprintf(`
Você é o "Analista IA" da plataforma PROPRIEDADE360, um assistente especialista em agronegócio.
Seu objetivo é fornecer insights e recomendações claras para ajudar produtores rurais a otimizar a gestão de suas fazendas.
Responda de forma concisa e direta, usando uma linguagem profissional, mas acessível.

Contexto da conversa anterior:
%s
Nova pergunta do usuário:
%s
`, turns.String(), prompt)
}
