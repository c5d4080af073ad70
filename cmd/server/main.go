package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leslie0605/mock-interview-platform/internal/config"
	"github.com/leslie0605/mock-interview-platform/internal/httpserver"
	"github.com/leslie0605/mock-interview-platform/internal/interview"
	"github.com/leslie0605/mock-interview-platform/internal/llm"
	"github.com/leslie0605/mock-interview-platform/internal/resume"
	"github.com/leslie0605/mock-interview-platform/internal/session"
	"github.com/leslie0605/mock-interview-platform/internal/transcribe"
	"github.com/leslie0605/mock-interview-platform/internal/tts"
)

func main() {
	// Include sub-second precision in all log timestamps
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	cfg := config.Load()

	store := session.NewMemoryStore()
	orch := interview.NewOrchestrator(
		store,
		resume.Extractor{},
		transcribe.NewClient(cfg.OpenAIKey, cfg.TranscribeModel),
		llm.NewClient(cfg.OpenAIKey, cfg.ChatModel),
	)

	var synth tts.Synthesizer
	switch cfg.TTSProvider {
	case "elevenlabs":
		synth = tts.NewElevenLabsClient(cfg.ElevenLabsKey, cfg.ElevenLabsVoiceID)
	default:
		synth = tts.NewOpenAIClient(cfg.OpenAIKey, cfg.TTSModel, cfg.TTSVoice)
	}

	e := httpserver.New(httpserver.NewHandlers(orch, synth))

	server := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in background
	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("server listening on %s", cfg.HTTPAddress)
		serverErrors <- server.ListenAndServe()
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	case sig := <-sigChan:
		log.Printf("shutdown signal received: %v", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		_ = server.Close()
	}
}
