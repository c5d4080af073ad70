package httpserver

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leslie0605/mock-interview-platform/internal/interview"
	"github.com/leslie0605/mock-interview-platform/internal/transcribe"
	"github.com/leslie0605/mock-interview-platform/internal/tts"
)

// Orchestrator is the slice of the interview orchestrator the handlers use.
type Orchestrator interface {
	Setup(details interview.SetupDetails, resumeDoc []byte) error
	RunTurn(ctx context.Context, audio []byte, filename string) (interview.TurnResult, error)
}

// Handlers bundles the HTTP layer's dependencies.
type Handlers struct {
	Interview   Orchestrator
	Synthesizer tts.Synthesizer
}

func NewHandlers(o Orchestrator, s tts.Synthesizer) Handlers {
	return Handlers{Interview: o, Synthesizer: s}
}

func (h Handlers) Register(e *echo.Echo) {
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.POST("/api/upload-details", h.uploadDetails)
	e.POST("/api/transcribe", h.transcribe)
	e.POST("/api/speech", h.speech)
}

// readFormFile loads an uploaded part fully into memory; the adapters take
// byte buffers, so nothing is ever written to disk.
func readFormFile(c echo.Context, field string) ([]byte, string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Filename, nil
}

func (h Handlers) uploadDetails(c echo.Context) error {
	data, _, err := readFormFile(c, "resume")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Resume file is required."})
	}

	details := interview.SetupDetails{
		CompanyName:       c.FormValue("companyName"),
		RoleName:          c.FormValue("roleName"),
		JobDescription:    c.FormValue("jobDescription"),
		InterviewDuration: c.FormValue("interviewDuration"),
	}
	if err := h.Interview.Setup(details, data); err != nil {
		c.Echo().Logger.Errorf("setup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error setting up interview session."})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Setup completed!"})
}

func (h Handlers) transcribe(c echo.Context) error {
	audio, filename, err := readFormFile(c, "audio")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Audio file is required."})
	}

	res, err := h.Interview.RunTurn(c.Request().Context(), audio, filename)
	if err != nil {
		if errors.Is(err, transcribe.ErrEmptyAudio) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Audio file is required."})
		}
		c.Echo().Logger.Errorf("turn failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error transcribing audio or calling ChatGPT."})
	}
	return c.JSON(http.StatusOK, res)
}

type speechRequest struct {
	Text  string `json:"text"`
	Model string `json:"model"`
	Voice string `json:"voice"`
}

func (h Handlers) speech(c echo.Context) error {
	var req speechRequest
	if err := c.Bind(&req); err != nil || req.Text == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Text is required for speech generation."})
	}

	audio, err := h.Synthesizer.Synthesize(c.Request().Context(), req.Text, req.Model, req.Voice)
	if err != nil {
		c.Echo().Logger.Errorf("speech synthesis failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error generating speech."})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="speech.mp3"`)
	return c.Blob(http.StatusOK, "audio/mpeg", audio)
}
