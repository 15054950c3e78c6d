package aigateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tripgo_gateway/internal/adapters/observability"
	"tripgo_gateway/internal/domain"
)

// Client calls an OpenAI-compatible chat-completions gateway in JSON
// mode. 429 and 402 are distinguished from generic upstream failures so
// the handler can surface them with matching statuses and a usable
// explanation instead of a blanket 500.
type Client struct {
	url   string
	key   string
	model string
	hc    *http.Client
}

func New(url, key, model string) *Client {
	return &Client{
		url:   url,
		key:   key,
		model: model,
		hc:    &http.Client{Timeout: 60 * time.Second},
	}
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []domain.ChatTurn `json:"messages"`
	ResponseFormat responseFormat    `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) Complete(ctx context.Context, system string, turns []domain.ChatTurn) (string, error) {
	if c.key == "" {
		return "", fmt.Errorf("ai-gateway: %w: AI_GATEWAY_KEY missing", domain.ErrNotConfigured)
	}

	msgs := make([]domain.ChatTurn, 0, len(turns)+1)
	msgs = append(msgs, domain.ChatTurn{Role: "system", Content: system})
	msgs = append(msgs, turns...)

	body, err := json.Marshal(chatRequest{
		Model:          c.model,
		Messages:       msgs,
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("ai-gateway", "/chat/completions", 0, time.Since(start))
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("ai-gateway", "/chat/completions", resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", domain.ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", domain.ErrQuotaExceeded
	case resp.StatusCode >= 400:
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", &domain.UpstreamStatusError{Service: "ai-gateway", Status: resp.StatusCode}
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("ai-gateway: decode response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("ai-gateway: response has no choices")
	}
	return cr.Choices[0].Message.Content, nil
}
