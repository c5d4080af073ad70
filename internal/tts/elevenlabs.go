package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/leslie0605/mock-interview-platform/internal/provider"
)

// ElevenLabsClient synthesizes speech through the ElevenLabs HTTP endpoint.
// The voice argument (or the configured default) is an ElevenLabs voice ID,
// and the model argument maps onto model_id.
type ElevenLabsClient struct {
	HTTPClient *http.Client
	APIKey     string
	VoiceID    string
}

func NewElevenLabsClient(apiKey, voiceID string) *ElevenLabsClient {
	return &ElevenLabsClient{
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
		APIKey:     apiKey,
		VoiceID:    voiceID,
	}
}

func (e *ElevenLabsClient) Synthesize(ctx context.Context, text, model, voice string) ([]byte, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if voice == "" {
		voice = e.VoiceID
	}
	if e.APIKey == "" || voice == "" {
		return nil, fmt.Errorf("tts: elevenlabs api key or voice id missing")
	}
	if model == "" {
		model = "eleven_flash_v2_5"
	}

	u := url.URL{
		Scheme: "https",
		Host:   "api.elevenlabs.io",
		Path:   "/v1/text-to-speech/" + voice,
	}
	q := u.Query()
	q.Set("output_format", "mp3_44100_128")
	u.RawQuery = q.Encode()

	body := map[string]any{
		"model_id": model,
		"text":     text,
		"voice_settings": map[string]any{
			"stability":        0.4,
			"similarity_boost": 0.7,
		},
	}
	buf, _ := json.Marshal(body)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", e.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.HTTPClient.Do(req)
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
