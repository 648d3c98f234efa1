package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"alphaflow-backend/models"

	"github.com/rs/zerolog/log"
)

// Assistant call results are tri-state from the caller's point of view:
// pending while in flight, then success or failed. A failed call carries the
// fixed fallback text instead of an error so the console stays usable with
// the collaborator degraded or absent.
type AssistantStatus string

const (
	AssistantSuccess AssistantStatus = "success"
	AssistantFailed  AssistantStatus = "failed"
)

const (
	assistantFallback      = "service unavailable"
	assistantNotConfigured = "assistant is not configured"
)

type AssistantResult struct {
	Status AssistantStatus `json:"status"`
	Text   string          `json:"text"`
}

// AssistantClient talks to the external text-completion service over a simple
// request/response call with an explicit timeout.
type AssistantClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewAssistantClient(baseURL, apiKey string, timeout time.Duration) *AssistantClient {
	return &AssistantClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type completionRequest struct {
	Prompt string `json:"prompt"`
}

type completionResponse struct {
	Text string `json:"text"`
}

func (c *AssistantClient) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(completionRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("assistant: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/complete", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("assistant: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant: unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant: returned %d", resp.StatusCode)
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("assistant: decode response: %w", err)
	}
	return result.Text, nil
}

func (c *AssistantClient) run(ctx context.Context, prompt string) AssistantResult {
	if c.baseURL == "" || c.apiKey == "" {
		return AssistantResult{Status: AssistantFailed, Text: assistantNotConfigured}
	}
	text, err := c.complete(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Msg("assistant call failed")
		return AssistantResult{Status: AssistantFailed, Text: assistantFallback}
	}
	return AssistantResult{Status: AssistantSuccess, Text: text}
}

// AnalyzeFinancials asks for a short cash-flow summary over a ledger snapshot.
func (c *AssistantClient) AnalyzeFinancials(ctx context.Context, records []models.FinancialRecord) AssistantResult {
	snapshot, _ := json.Marshal(records)
	prompt := fmt.Sprintf(`Analyze the following financial records of a barbershop/clinic business.
JSON data: %s

Please provide:
1. A short cash-flow summary.
2. Any abnormal spikes or drops.
3. One actionable suggestion to improve profit.

Answer in short, direct plain text using Markdown formatting.`, snapshot)
	return c.run(ctx, prompt)
}

// SuggestScheduling asks for the best free slot on a day plus a short
// fill-the-gaps client message.
func (c *AssistantClient) SuggestScheduling(ctx context.Context, appts []models.Appointment, date string) AssistantResult {
	snapshot, _ := json.Marshal(appts)
	prompt := fmt.Sprintf(`Act as a smart scheduling assistant.
Here are the appointments for %s: %s

Suggest:
1. The best free slot to fit a new 45-minute client.
2. A short message inviting regular clients to fill the empty slots.`, date, snapshot)
	return c.run(ctx, prompt)
}

// Chat answers a free-form question with system context attached.
func (c *AssistantClient) Chat(ctx context.Context, message, contextText string) AssistantResult {
	prompt := fmt.Sprintf(`You are a virtual assistant specialized in barbershop and clinic management.
System context: %s

User question: %s

Answer in a professional, helpful tone.`, contextText, message)
	return c.run(ctx, prompt)
}
