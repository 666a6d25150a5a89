package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"prepmate/internal/evaluator"
	"prepmate/internal/middleware"
	"prepmate/internal/models"
	"prepmate/internal/session"
	"prepmate/internal/utils"
)

// SessionManager is the session lifecycle surface the handler needs.
type SessionManager interface {
	Create(ctx context.Context, userID string, job models.JobCategory, difficulty models.Difficulty, resumeText string) (*models.Session, error)
	SubmitResponse(ctx context.Context, sessionID string, questionIndex int, responseText string) (*models.Session, *models.Feedback, error)
	Advance(ctx context.Context, sessionID string) (*models.Session, error)
}

// SessionReader is the catalog lookup surface the handler needs.
type SessionReader interface {
	GetSession(ctx context.Context, id string) (*models.Session, error)
	GetAllSessions(ctx context.Context) ([]models.Session, error)
	GetCurrentSession(ctx context.Context) (*models.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

type SessionHandler struct {
	manager SessionManager
	reader  SessionReader
}

func NewSessionHandler(manager SessionManager, reader SessionReader) *SessionHandler {
	return &SessionHandler{manager: manager, reader: reader}
}

func (handler *SessionHandler) CreateSessionHandler(writer http.ResponseWriter, request *http.Request) {
	req := middleware.GetValidatedRequest[*models.CreateSessionRequest](request)

	created, err := handler.manager.Create(request.Context(), req.UserID, req.JobCategory, req.Difficulty, req.ResumeText)
	if err != nil {
		if errors.Is(err, session.ErrNoQuestions) {
			utils.JSON(writer, http.StatusUnprocessableEntity, models.ErrorResponse{
				Code:    "no_questions",
				Message: "No questions available for the requested category and difficulty",
			})
			return
		}
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to create session",
		})
		return
	}

	utils.JSON(writer, http.StatusCreated, models.SessionResponse{Session: created})
}

func (handler *SessionHandler) SubmitResponseHandler(writer http.ResponseWriter, request *http.Request) {
	sessionID := chi.URLParam(request, "id")
	req := middleware.GetValidatedRequest[*models.SubmitResponseRequest](request)

	updated, feedback, err := handler.manager.SubmitResponse(request.Context(), sessionID, req.QuestionIndex, req.Response)
	if err != nil {
		writeSubmitError(writer, err)
		return
	}

	utils.JSON(writer, http.StatusOK, models.SessionResponse{Session: updated, Feedback: feedback})
}

func writeSubmitError(writer http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		utils.JSON(writer, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "No active session with that id",
		})
	case errors.Is(err, session.ErrEmptyResponse):
		utils.JSON(writer, http.StatusBadRequest, models.ErrorResponse{
			Code:    "empty_response",
			Message: "Response must not be empty",
		})
	case errors.Is(err, session.ErrQuestionOutOfRange):
		utils.JSON(writer, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_question_index",
			Message: "No question at the requested position",
		})
	case errors.Is(err, session.ErrNotNextQuestion):
		utils.JSON(writer, http.StatusConflict, models.ErrorResponse{
			Code:    "out_of_order",
			Message: "Questions must be answered in order",
		})
	case errors.Is(err, session.ErrSessionCompleted):
		utils.JSON(writer, http.StatusConflict, models.ErrorResponse{
			Code:    "session_completed",
			Message: "Session is already completed",
		})
	case errors.Is(err, session.ErrEvaluationInFlight):
		utils.JSON(writer, http.StatusConflict, models.ErrorResponse{
			Code:    "evaluation_in_flight",
			Message: "An evaluation for this session is already pending",
		})
	default:
		var provErr *evaluator.ProviderError
		if errors.As(err, &provErr) {
			utils.JSON(writer, http.StatusBadGateway, models.ErrorResponse{
				Code:    provErr.Code,
				Message: "Response evaluation failed",
			})
			return
		}
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to submit response",
		})
	}
}

func (handler *SessionHandler) AdvanceSessionHandler(writer http.ResponseWriter, request *http.Request) {
	sessionID := chi.URLParam(request, "id")

	advanced, err := handler.manager.Advance(request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			utils.JSON(writer, http.StatusNotFound, models.ErrorResponse{
				Code:    "session_not_found",
				Message: "No active session with that id",
			})
			return
		}
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to advance session",
		})
		return
	}

	utils.JSON(writer, http.StatusOK, models.SessionResponse{Session: advanced})
}

func (handler *SessionHandler) GetSessionsHandler(writer http.ResponseWriter, request *http.Request) {
	sessions, err := handler.reader.GetAllSessions(request.Context())
	if err != nil {
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to fetch sessions",
		})
		return
	}

	utils.JSON(writer, http.StatusOK, models.SessionsResponse{Total: len(sessions), Items: sessions})
}

func (handler *SessionHandler) GetSessionByIDHandler(writer http.ResponseWriter, request *http.Request) {
	sessionID := chi.URLParam(request, "id")

	found, err := findSession(request.Context(), handler.reader, sessionID)
	if err != nil {
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to fetch session",
		})
		return
	}
	if found == nil {
		utils.JSON(writer, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "No session with that id",
		})
		return
	}

	utils.JSON(writer, http.StatusOK, models.SessionResponse{Session: found})
}

func (handler *SessionHandler) GetCurrentSessionHandler(writer http.ResponseWriter, request *http.Request) {
	current, err := handler.reader.GetCurrentSession(request.Context())
	if err != nil {
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to fetch current session",
		})
		return
	}
	if current == nil {
		utils.JSON(writer, http.StatusNotFound, models.ErrorResponse{
			Code:    "no_current_session",
			Message: "No session is in progress",
		})
		return
	}

	utils.JSON(writer, http.StatusOK, models.SessionResponse{Session: current})
}

func (handler *SessionHandler) DeleteSessionHandler(writer http.ResponseWriter, request *http.Request) {
	sessionID := chi.URLParam(request, "id")

	if err := handler.reader.DeleteSession(request.Context(), sessionID); err != nil {
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to delete session",
		})
		return
	}

	writer.WriteHeader(http.StatusNoContent)
}

// findSession looks up a session by ID in the saved catalog first, then
// falls back to the in-progress session.
func findSession(ctx context.Context, reader SessionReader, id string) (*models.Session, error) {
	found, err := reader.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return found, nil
	}

	current, err := reader.GetCurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	if current != nil && current.ID == id {
		return current, nil
	}
	return nil, nil
}
