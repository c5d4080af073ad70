package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/leslie0605/mock-interview-platform/internal/provider"
)

const openAIEndpoint = "https://api.openai.com/v1/audio/speech"

type speechRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

// OpenAIClient synthesizes speech through the OpenAI audio endpoint.
type OpenAIClient struct {
	HTTPClient   *http.Client
	APIKey       string
	DefaultModel string
	DefaultVoice string
}

func NewOpenAIClient(apiKey, model, voice string) *OpenAIClient {
	if model == "" {
		model = "tts-1"
	}
	if voice == "" {
		voice = "echo"
	}
	return &OpenAIClient{
		HTTPClient:   &http.Client{Timeout: 60 * time.Second},
		APIKey:       apiKey,
		DefaultModel: model,
		DefaultVoice: voice,
	}
}

func (c *OpenAIClient) Synthesize(ctx context.Context, text, model, voice string) ([]byte, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if c.APIKey == "" {
		return nil, fmt.Errorf("tts: api key missing")
	}
	if model == "" {
		model = c.DefaultModel
	}
	if voice == "" {
		voice = c.DefaultVoice
	}

	reqBody, _ := json.Marshal(speechRequest{Model: model, Input: text, Voice: voice, ResponseFormat: "mp3"})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIEndpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status=%d body=%s", provider.ClassifyStatus(resp.StatusCode), resp.StatusCode, string(b))
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty audio body", provider.ErrMalformedResponse)
	}
	return b, nil
}
