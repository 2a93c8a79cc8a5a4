package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/voxlog/speechtotext/internal/audio"
	"github.com/voxlog/speechtotext/usecase"
)

// uploadLimit bounds the multipart request body.
const uploadLimit = "10M"

// allowedMIMETypes are the upload content types the service accepts.
var allowedMIMETypes = map[string]bool{
	"audio/wav":      true,
	"audio/ogg":      true,
	"audio/mp3":      true,
	"audio/x-wav":    true,
	"audio/x-pn-wav": true,
	"audio/wave":     true,
}

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, svc *usecase.TranscriptionService, logger *zap.Logger) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "speechtotext",
		})
	})

	e.POST("/speechtotext", func(c echo.Context) error {
		return submitSpeechToText(c, svc, logger)
	}, middleware.BodyLimit(uploadLimit))

	e.GET("/speechtotext/:email", func(c echo.Context) error {
		return getTranscripts(c, svc, logger)
	})
}

// submitSpeechToText handles POST /speechtotext multipart uploads
func submitSpeechToText(c echo.Context, svc *usecase.TranscriptionService, logger *zap.Logger) error {
	email := c.FormValue("email")
	title := c.FormValue("title")
	if email == "" || title == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_fields",
			Message: "Email and title are required",
		})
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_audio",
			Message: "An audio file is required",
		})
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !allowedMIMETypes[mimeType] {
		return c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{
			Error:   "unsupported_media_type",
			Message: "Accepted types: audio/wav, audio/ogg, audio/mp3, audio/x-wav, audio/x-pn-wav, audio/wave",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "upload_read_failed",
			Message: "Could not read the uploaded file",
		})
	}
	defer file.Close()

	audioBytes, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "upload_read_failed",
			Message: "Could not read the uploaded file",
		})
	}

	transcript, err := svc.Transcribe(c.Request().Context(), usecase.TranscriptionRequest{
		Audio:    audioBytes,
		MIMEType: mimeType,
		Email:    email,
		Title:    title,
		Filename: fileHeader.Filename,
	})
	if err != nil {
		logger.Warn("Transcription pipeline failed",
			zap.String("email", email),
			zap.String("filename", fileHeader.Filename),
			zap.Error(err))
		status, code := statusForError(err)
		return c.JSON(status, ErrorResponse{
			Error:   code,
			Message: err.Error(),
		})
	}

	logger.Info("Transcription stored",
		zap.String("id", transcript.ID),
		zap.String("email", email))

	return c.JSON(http.StatusCreated, transcript)
}

// getTranscripts handles GET /speechtotext/:email
func getTranscripts(c echo.Context, svc *usecase.TranscriptionService, logger *zap.Logger) error {
	email := c.Param("email")

	transcripts, err := svc.ListByEmail(c.Request().Context(), email)
	if err != nil {
		logger.Error("Transcript lookup failed",
			zap.String("email", email),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "lookup_failed",
			Message: "Could not load transcripts",
		})
	}

	return c.JSON(http.StatusOK, TranscriptListResponse{
		Email:       email,
		Transcripts: transcripts,
	})
}

// statusForError maps pipeline failures to HTTP responses. Every failure
// surfaces as a distinct condition rather than a generic 500.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, audio.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType, "unsupported_format"
	case errors.Is(err, audio.ErrChannelCountUnsupported):
		return http.StatusUnsupportedMediaType, "unsupported_channel_count"
	case errors.Is(err, audio.ErrTranscodeFailure):
		return http.StatusBadGateway, "transcode_failed"
	case errors.Is(err, usecase.ErrRecognition):
		return http.StatusBadGateway, "recognition_failed"
	case errors.Is(err, audio.ErrIOFailure):
		return http.StatusInternalServerError, "audio_io_failed"
	case errors.Is(err, audio.ErrEncodeFailure):
		return http.StatusInternalServerError, "encode_failed"
	default:
		return http.StatusInternalServerError, "transcription_failed"
	}
}
