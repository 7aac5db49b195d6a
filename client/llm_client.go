package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ThilankaPerera/AI-Bill-Explanator/dto"
)

// LLMClient generates bill explanations through an Ollama-style HTTP API.
// Every failure is returned to the caller, which substitutes the deterministic
// fallback text; nothing here retries or blocks indefinitely.
type LLMClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewLLMClient(baseURL, model string) *LLMClient {
	return &LLMClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Explain asks the model for a consumer-friendly explanation of the charges.
func (c *LLMClient) Explain(ctx context.Context, charges dto.ChargeSet, fields dto.StructuredFields) (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("explanation generator is not configured")
	}

	reqBody := map[string]any{
		"model":  c.model,
		"prompt": buildExplanationPrompt(charges, fields),
		"stream": false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("generate returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if strings.TrimSpace(result.Response) == "" {
		return "", fmt.Errorf("model returned an empty explanation")
	}

	return result.Response, nil
}

func buildExplanationPrompt(charges dto.ChargeSet, fields dto.StructuredFields) string {
	var b strings.Builder

	b.WriteString("You are helping a consumer understand a utility bill.\n")
	if fields.BillType != dto.BillTypeUnknown {
		b.WriteString(fmt.Sprintf("Bill type: %s\n", fields.BillType))
	}
	b.WriteString(fmt.Sprintf("Total amount: %.2f\n", charges.TotalAmount))
	b.WriteString("Charges by category:\n")
	for _, category := range dto.AllCategories {
		total, ok := charges.CategoryTotals[category]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("- %s: %.2f\n", category, total))
	}
	b.WriteString("\nExplain this bill in plain language, in under 200 words. ")
	b.WriteString("Point out the largest charge category and anything a consumer should double-check.")

	return b.String()
}
