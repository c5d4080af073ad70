// Package interview sequences transcription, question generation and history
// updates for the single active interview.
package interview

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/leslie0605/mock-interview-platform/internal/llm"
	"github.com/leslie0605/mock-interview-platform/internal/session"
)

// Transcriber converts one complete audio buffer to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// Engine produces the interviewer's next utterance from the assembled context.
type Engine interface {
	NextQuestion(ctx context.Context, systemPrompt string, history []llm.Message, userUtterance string) (string, error)
}

// Extractor turns an uploaded document into plain text.
type Extractor interface {
	ExtractText(data []byte) (string, error)
}

// TurnResult is what a completed exchange returns to the client.
type TurnResult struct {
	Transcript   string `json:"transcript"`
	NextQuestion string `json:"nextQuestion"`
}

// SetupDetails carries the role context fields from the setup request.
type SetupDetails struct {
	CompanyName       string
	RoleName          string
	JobDescription    string
	InterviewDuration string
}

// Orchestrator runs one exchange at a time against the session store.
type Orchestrator struct {
	store       session.Store
	extractor   Extractor
	transcriber Transcriber
	engine      Engine

	// turnMu serializes turns so concurrent transcribe calls cannot
	// interleave their read-generate-append cycles.
	turnMu sync.Mutex
}

func NewOrchestrator(store session.Store, ex Extractor, t Transcriber, e Engine) *Orchestrator {
	return &Orchestrator{store: store, extractor: ex, transcriber: t, engine: e}
}

// Setup extracts the resume text and replaces the session wholesale. The
// extractor runs fully before Replace, so a failed extraction leaves the
// previous session untouched.
func (o *Orchestrator) Setup(details SetupDetails, resumeDoc []byte) error {
	text, err := o.extractor.ExtractText(resumeDoc)
	if err != nil {
		return fmt.Errorf("extract resume: %w", err)
	}
	o.store.Replace(session.Session{
		CompanyName:       details.CompanyName,
		RoleName:          details.RoleName,
		JobDescription:    details.JobDescription,
		InterviewDuration: details.InterviewDuration,
		ResumeText:        text,
	})
	return nil
}

// RunTurn executes one exchange: audio in, transcript and next question out.
// The (user, assistant) pair is appended only after both provider calls
// succeed, so a failed generation never leaves a dangling user turn.
func (o *Orchestrator) RunTurn(ctx context.Context, audio []byte, filename string) (TurnResult, error) {
	o.turnMu.Lock()
	defer o.turnMu.Unlock()

	snap := o.store.Snapshot()

	transcript, err := o.transcriber.Transcribe(ctx, audio, filename)
	if err != nil {
		return TurnResult{}, fmt.Errorf("transcribe: %w", err)
	}
	transcript = strings.TrimSpace(transcript)

	history := make([]llm.Message, 0, len(snap.History))
	for _, t := range snap.History {
		history = append(history, llm.Message{Role: string(t.Role), Content: t.Content})
	}
	question, err := o.engine.NextQuestion(ctx, SystemPrompt(snap), history, transcript)
	if err != nil {
		return TurnResult{}, fmt.Errorf("generate question: %w", err)
	}

	o.store.AppendExchange(transcript, question)
	return TurnResult{Transcript: transcript, NextQuestion: question}, nil
}
