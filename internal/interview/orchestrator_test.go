package interview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/leslie0605/mock-interview-platform/internal/llm"
	"github.com/leslie0605/mock-interview-platform/internal/session"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f fakeExtractor) ExtractText(data []byte) (string, error) { return f.text, f.err }

type fakeTranscriber struct {
	text string
	err  error
}

func (f fakeTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	return f.text, f.err
}

type fakeEngine struct {
	reply      string
	err        error
	gotPrompt  string
	gotHistory []llm.Message
	gotUser    string
}

func (f *fakeEngine) NextQuestion(ctx context.Context, systemPrompt string, history []llm.Message, userUtterance string) (string, error) {
	f.gotPrompt = systemPrompt
	f.gotHistory = history
	f.gotUser = userUtterance
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestRunTurn_HappyPath(t *testing.T) {
	store := session.NewMemoryStore()
	store.Replace(session.Session{CompanyName: "Acme", RoleName: "SWE"})
	engine := &fakeEngine{reply: "Tell me about a challenging project."}
	o := NewOrchestrator(store, fakeExtractor{}, fakeTranscriber{text: "I have 5 years of experience.\n"}, engine)

	res, err := o.RunTurn(context.Background(), []byte{1}, "answer.webm")
	if err != nil {
		t.Fatalf("run turn: %v", err)
	}
	if res.Transcript != "I have 5 years of experience." {
		t.Fatalf("unexpected transcript %q", res.Transcript)
	}
	if res.NextQuestion != "Tell me about a challenging project." {
		t.Fatalf("unexpected question %q", res.NextQuestion)
	}
	hist := store.Snapshot().History
	if len(hist) != 2 {
		t.Fatalf("expected 2 history turns, got %d", len(hist))
	}
	if hist[0].Role != session.RoleUser || hist[0].Content != res.Transcript {
		t.Fatalf("unexpected user turn %+v", hist[0])
	}
	if hist[1].Role != session.RoleAssistant || hist[1].Content != res.NextQuestion {
		t.Fatalf("unexpected assistant turn %+v", hist[1])
	}
	if !strings.Contains(engine.gotPrompt, "the company Acme") || !strings.Contains(engine.gotPrompt, "the position SWE") {
		t.Fatalf("prompt not built from session fields: %q", engine.gotPrompt)
	}
}

func TestRunTurn_NoAppendOnEngineError(t *testing.T) {
	store := session.NewMemoryStore()
	o := NewOrchestrator(store, fakeExtractor{}, fakeTranscriber{text: "hello"}, &fakeEngine{err: errors.New("boom")})
	if _, err := o.RunTurn(context.Background(), []byte{1}, ""); err == nil {
		t.Fatalf("expected error from engine")
	}
	if n := len(store.Snapshot().History); n != 0 {
		t.Fatalf("expected history unchanged on engine error, got %d turns", n)
	}
}

func TestRunTurn_NoAppendOnTranscribeError(t *testing.T) {
	store := session.NewMemoryStore()
	engine := &fakeEngine{reply: "q"}
	o := NewOrchestrator(store, fakeExtractor{}, fakeTranscriber{err: errors.New("bad audio")}, engine)
	if _, err := o.RunTurn(context.Background(), []byte{1}, ""); err == nil {
		t.Fatalf("expected error from transcriber")
	}
	if n := len(store.Snapshot().History); n != 0 {
		t.Fatalf("expected history unchanged on transcribe error, got %d turns", n)
	}
	if engine.gotUser != "" {
		t.Fatalf("engine must not be called when transcription fails")
	}
}

func TestRunTurn_HistoryForwardedInOrder(t *testing.T) {
	store := session.NewMemoryStore()
	store.AppendExchange("first answer", "first question")
	engine := &fakeEngine{reply: "second question"}
	o := NewOrchestrator(store, fakeExtractor{}, fakeTranscriber{text: "second answer"}, engine)
	if _, err := o.RunTurn(context.Background(), []byte{1}, ""); err != nil {
		t.Fatalf("run turn: %v", err)
	}
	want := []llm.Message{
		{Role: "user", Content: "first answer"},
		{Role: "assistant", Content: "first question"},
	}
	if len(engine.gotHistory) != len(want) {
		t.Fatalf("expected %d history messages, got %d", len(want), len(engine.gotHistory))
	}
	for i := range want {
		if engine.gotHistory[i] != want[i] {
			t.Fatalf("history %d: got %+v want %+v", i, engine.gotHistory[i], want[i])
		}
	}
	if engine.gotUser != "second answer" {
		t.Fatalf("expected latest utterance forwarded, got %q", engine.gotUser)
	}
}

func TestSetup_ReplacesSessionWholesale(t *testing.T) {
	store := session.NewMemoryStore()
	o := NewOrchestrator(store, fakeExtractor{text: "resume text"}, fakeTranscriber{}, &fakeEngine{})
	if err := o.Setup(SetupDetails{CompanyName: "Acme", RoleName: "SWE"}, []byte{1}); err != nil {
		t.Fatalf("setup: %v", err)
	}
	store.AppendExchange("a", "b")

	o2 := NewOrchestrator(store, fakeExtractor{text: "other resume"}, fakeTranscriber{}, &fakeEngine{})
	if err := o2.Setup(SetupDetails{CompanyName: "Globex", RoleName: "PM", JobDescription: "jd", InterviewDuration: "30"}, []byte{1}); err != nil {
		t.Fatalf("second setup: %v", err)
	}
	snap := store.Snapshot()
	if snap.CompanyName != "Globex" || snap.RoleName != "PM" || snap.JobDescription != "jd" || snap.InterviewDuration != "30" {
		t.Fatalf("expected second setup's fields, got %+v", snap)
	}
	if snap.ResumeText != "other resume" {
		t.Fatalf("expected second resume, got %q", snap.ResumeText)
	}
	if len(snap.History) != 0 {
		t.Fatalf("expected empty history after setup, got %d", len(snap.History))
	}
}

func TestSetup_KeepsSessionOnExtractionFailure(t *testing.T) {
	store := session.NewMemoryStore()
	store.Replace(session.Session{CompanyName: "Acme", ResumeText: "old"})
	o := NewOrchestrator(store, fakeExtractor{err: errors.New("not a pdf")}, fakeTranscriber{}, &fakeEngine{})
	if err := o.Setup(SetupDetails{CompanyName: "Globex"}, []byte{1}); err == nil {
		t.Fatalf("expected extraction error")
	}
	snap := store.Snapshot()
	if snap.CompanyName != "Acme" || snap.ResumeText != "old" {
		t.Fatalf("previous session must be untouched on failure, got %+v", snap)
	}
}

func TestSystemPrompt_Deterministic(t *testing.T) {
	s := session.Session{
		CompanyName:    "Acme",
		RoleName:       "SWE",
		JobDescription: "build things",
		ResumeText:     "ten years of Go",
	}
	a, b := SystemPrompt(s), SystemPrompt(s)
	if a != b {
		t.Fatalf("prompt must be a pure function of session fields")
	}
	for _, want := range []string{
		"You are an interviewer from the company Acme.",
		"interviewing for the position SWE.",
		"Here is the job description: build things.",
		"The candidate's resume is as follows: ten years of Go.",
		`Please start with a general question like "Tell me about yourself".`,
	} {
		if !strings.Contains(a, want) {
			t.Fatalf("prompt missing %q:\n%s", want, a)
		}
	}
}
