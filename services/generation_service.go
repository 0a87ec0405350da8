package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"restaurant_finder/config"
	"restaurant_finder/logger"
)

// NewTextGenerator picks the generation backend from the configuration: the
// HuggingFace inference API when a key is present, otherwise the disabled
// generator that always defers to the template path.
func NewTextGenerator(cfg *config.Config) TextGenerator {
	if cfg.HuggingFace.APIKey == "" {
		logger.Info("No HuggingFace API key configured, concierge runs on the template path")
		return NoopGenerator{}
	}
	return &HuggingFaceGenerator{
		apiKey:  cfg.HuggingFace.APIKey,
		model:   cfg.HuggingFace.Model,
		baseURL: cfg.HuggingFace.BaseURL,
		client: &http.Client{
			Timeout: time.Duration(cfg.HuggingFace.TimeoutSec) * time.Second,
		},
	}
}

// NoopGenerator is the offline default: generation is never available.
type NoopGenerator struct{}

func (NoopGenerator) Generate(context.Context, string) (string, bool) {
	return "", false
}

// HuggingFaceGenerator calls the HuggingFace text-generation inference API.
// One attempt with a bounded timeout; every failure mode (transport error,
// non-2xx status, malformed body, empty generation) resolves to ok=false so
// the synthesizer can fall back without caring why.
type HuggingFaceGenerator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type generationRequest struct {
	Inputs string `json:"inputs"`
}

type generationChoice struct {
	GeneratedText string `json:"generated_text"`
}

func (g *HuggingFaceGenerator) Generate(ctx context.Context, prompt string) (string, bool) {
	body, err := json.Marshal(generationRequest{Inputs: prompt})
	if err != nil {
		logger.Warn("Failed to encode generation request", "error", err)
		return "", false
	}

	url := fmt.Sprintf("%s/models/%s", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logger.Warn("Failed to build generation request", "error", err)
		return "", false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		logger.Warn("Generation request failed, falling back to template",
			"error", err, "duration_ms", time.Since(start).Milliseconds())
		return "", false
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn("Failed to read generation response", "error", err)
		return "", false
	}

	if resp.StatusCode != http.StatusOK {
		preview := string(payload)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		logger.Warn("Generation API returned non-success status",
			"status", resp.StatusCode, "response", preview)
		return "", false
	}

	var choices []generationChoice
	if err := json.Unmarshal(payload, &choices); err != nil {
		logger.Warn("Failed to decode generation response", "error", err)
		return "", false
	}

	if len(choices) == 0 || choices[0].GeneratedText == "" {
		logger.Warn("Generation response contained no text")
		return "", false
	}

	logger.Info("External generation succeeded",
		"model", g.model,
		"chars", len(choices[0].GeneratedText),
		"duration_ms", time.Since(start).Milliseconds())
	return choices[0].GeneratedText, true
}
