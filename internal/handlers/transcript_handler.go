package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"prepmate/internal/models"
	"prepmate/internal/transcript"
	"prepmate/internal/utils"
)

type TranscriptHandler struct {
	reader SessionReader
}

func NewTranscriptHandler(reader SessionReader) *TranscriptHandler {
	return &TranscriptHandler{reader: reader}
}

// GetTranscriptHandler returns the transcript as JSON. Works for both
// in-progress and completed sessions.
func (handler *TranscriptHandler) GetTranscriptHandler(writer http.ResponseWriter, request *http.Request) {
	found := handler.lookup(writer, request)
	if found == nil {
		return
	}

	utils.JSON(writer, http.StatusOK, transcript.Build(found))
}

// ExportTranscriptHandler returns the transcript as a plain-text download.
func (handler *TranscriptHandler) ExportTranscriptHandler(writer http.ResponseWriter, request *http.Request) {
	found := handler.lookup(writer, request)
	if found == nil {
		return
	}

	text := transcript.RenderText(transcript.Build(found))

	writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	writer.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", transcript.Filename(found.ID)))
	writer.WriteHeader(http.StatusOK)
	writer.Write([]byte(text))
}

func (handler *TranscriptHandler) lookup(writer http.ResponseWriter, request *http.Request) *models.Session {
	sessionID := chi.URLParam(request, "id")

	found, err := findSession(request.Context(), handler.reader, sessionID)
	if err != nil {
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to fetch session",
		})
		return nil
	}
	if found == nil {
		utils.JSON(writer, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "No session with that id",
		})
		return nil
	}
	return found
}
