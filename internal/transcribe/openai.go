// Package transcribe sends audio to the OpenAI transcription endpoint.
package transcribe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/leslie0605/mock-interview-platform/internal/provider"
)

const endpoint = "https://api.openai.com/v1/audio/transcriptions"

// ErrEmptyAudio is returned before any network call when no audio was provided.
var ErrEmptyAudio = errors.New("transcribe: empty audio")

// Client transcribes one complete audio buffer per call.
type Client struct {
	HTTPClient *http.Client
	APIKey     string
	Model      string
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = "whisper-1"
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
		APIKey:     apiKey,
		Model:      model,
	}
}

// Transcribe sends the audio buffer to the provider and returns the transcript.
// The content-type sniff is diagnostic only; an unrecognized type is still sent
// and the provider decides whether it can decode it.
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if len(audio) == 0 {
		return "", ErrEmptyAudio
	}
	if c.APIKey == "" {
		return "", fmt.Errorf("transcribe: api key missing")
	}
	if filename == "" {
		filename = "audio.webm"
	}

	log.Printf("transcribe: audio sniffed as %s (%d bytes)", mimetype.Detect(audio), len(audio))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(audio); err != nil {
		return "", err
	}
	_ = mw.WriteField("model", c.Model)
	_ = mw.WriteField("response_format", "text")
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", provider.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", provider.ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status=%d body=%s", provider.ClassifyStatus(resp.StatusCode), resp.StatusCode, string(b))
	}
	return strings.TrimSpace(string(b)), nil
}
