package handlers

import (
	"context"
	"net/http"

	"prepmate/internal/middleware"
	"prepmate/internal/models"
	"prepmate/internal/utils"
)

// QuestionSource is the catalog surface the handler needs.
type QuestionSource interface {
	Questions(job models.JobCategory, difficulty models.Difficulty) []models.Question
	TailoredQuestions(ctx context.Context, resumeText string, job models.JobCategory, count int) ([]models.Question, error)
}

type QuestionHandler struct {
	source QuestionSource
}

func NewQuestionHandler(source QuestionSource) *QuestionHandler {
	return &QuestionHandler{source: source}
}

func (handler *QuestionHandler) GetQuestionsHandler(writer http.ResponseWriter, request *http.Request) {
	job := models.JobCategory(request.URL.Query().Get("job_category"))
	difficulty := models.Difficulty(request.URL.Query().Get("difficulty"))

	if job == "" {
		job = models.JobGeneral
	}
	if difficulty != "" && !models.ValidDifficulties[difficulty] {
		utils.JSON(writer, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_difficulty",
			Message: "difficulty must be one of: entry, mid, senior",
		})
		return
	}

	questions := handler.source.Questions(job, difficulty)
	utils.JSON(writer, http.StatusOK, models.QuestionsResponse{
		Total: len(questions),
		Items: questions,
	})
}

func (handler *QuestionHandler) TailoredQuestionsHandler(writer http.ResponseWriter, request *http.Request) {
	req := middleware.GetValidatedRequest[*models.TailoredQuestionsRequest](request)

	questions, err := handler.source.TailoredQuestions(request.Context(), req.ResumeText, req.JobCategory, req.Count)
	if err != nil {
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to generate tailored questions",
		})
		return
	}

	utils.JSON(writer, http.StatusOK, models.QuestionsResponse{
		Total: len(questions),
		Items: questions,
	})
}
