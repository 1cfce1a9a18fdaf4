package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// InferenceConfig configures an InferenceProvider.
type InferenceConfig struct {
	URL         string
	Token       string
	MaxTokens   int
	Temperature float64
	HTTPClient  *http.Client
}

// InferenceProvider calls a text-generation endpoint that accepts
// {inputs, parameters} and answers [{generated_text}].
type InferenceProvider struct {
	httpClient  *http.Client
	url         string
	token       string
	maxTokens   int
	temperature float64
}

// NewInferenceProvider creates a provider for cfg.URL.
func NewInferenceProvider(cfg InferenceConfig) (*InferenceProvider, error) {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		return nil, fmt.Errorf("inference url is required")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 200
	}
	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = 0.7
	}

	return &InferenceProvider{
		httpClient:  client,
		url:         url,
		token:       strings.TrimSpace(cfg.Token),
		maxTokens:   maxTokens,
		temperature: temperature,
	}, nil
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	DoSample       bool    `json:"do_sample"`
	ReturnFullText bool    `json:"return_full_text"`
}

type inferenceResult struct {
	GeneratedText string `json:"generated_text"`
}

// Complete implements Provider.
func (p *InferenceProvider) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	payload, err := json.Marshal(inferenceRequest{
		Inputs: buildInputs(systemPrompt, userMessage),
		Parameters: inferenceParameters{
			MaxNewTokens:   p.maxTokens,
			Temperature:    p.temperature,
			DoSample:       true,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("inference api status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var results []inferenceResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", fmt.Errorf("decode inference response: %w", err)
	}
	if len(results) == 0 || strings.TrimSpace(results[0].GeneratedText) == "" {
		return "", ErrEmptyCompletion
	}

	return results[0].GeneratedText, nil
}

func buildInputs(systemPrompt, userMessage string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(systemPrompt))
	b.WriteString("\n\nUser: ")
	b.WriteString(strings.TrimSpace(userMessage))
	b.WriteString("\nAssistant:")
	return b.String()
}
