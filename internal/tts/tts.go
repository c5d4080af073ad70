// Package tts turns text into a complete audio artifact.
package tts

import (
	"context"
	"errors"
)

// ErrEmptyText is returned before any network call when no text was provided.
var ErrEmptyText = errors.New("tts: empty text")

// Synthesizer produces one complete mp3 buffer for the given text. Empty
// model or voice fall back to the backend's defaults.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, model, voice string) ([]byte, error)
}
