package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	HTTPAddress       string
	OpenAIKey         string
	ChatModel         string
	TranscribeModel   string
	TTSModel          string
	TTSVoice          string
	TTSProvider       string
	ElevenLabsKey     string
	ElevenLabsVoiceID string
}

// Load reads environment variables and returns Config with sane defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}

	addr := os.Getenv("HTTP_ADDRESS")
	if addr == "" {
		addr = ":8081"
	}

	openAIKey := os.Getenv("OPENAI_API_KEY")
	if openAIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set - transcription, chat and speech will not work")
	}

	chatModel := os.Getenv("OPENAI_CHAT_MODEL")
	if chatModel == "" {
		chatModel = "gpt-3.5-turbo"
	}

	transcribeModel := os.Getenv("OPENAI_TRANSCRIBE_MODEL")
	if transcribeModel == "" {
		transcribeModel = "whisper-1"
	}

	ttsModel := os.Getenv("OPENAI_TTS_MODEL")
	if ttsModel == "" {
		ttsModel = "tts-1"
	}

	ttsVoice := os.Getenv("OPENAI_TTS_VOICE")
	if ttsVoice == "" {
		ttsVoice = "echo"
	}

	provider := os.Getenv("TTS_PROVIDER")
	if provider == "" {
		provider = "openai"
	}

	elevenKey := os.Getenv("ELEVENLABS_API_KEY")
	voiceID := os.Getenv("ELEVENLABS_VOICE_ID")
	if provider == "elevenlabs" && (elevenKey == "" || voiceID == "") {
		log.Println("Warning: TTS_PROVIDER=elevenlabs but ELEVENLABS_API_KEY or ELEVENLABS_VOICE_ID not set - speech will not work")
	}

	log.Printf("config: HTTP_ADDRESS=%s tts_provider=%s", addr, provider)
	return Config{
		HTTPAddress:       addr,
		OpenAIKey:         openAIKey,
		ChatModel:         chatModel,
		TranscribeModel:   transcribeModel,
		TTSModel:          ttsModel,
		TTSVoice:          ttsVoice,
		TTSProvider:       provider,
		ElevenLabsKey:     elevenKey,
		ElevenLabsVoiceID: voiceID,
	}
}
