package handlers

import (
	"context"
	"net/http"

	"prepmate/internal/models"
	"prepmate/internal/utils"
)

// AnalyticsSource computes the usage aggregate.
type AnalyticsSource interface {
	Aggregate(ctx context.Context) (*models.AnalyticsResponse, error)
}

type AnalyticsHandler struct {
	source AnalyticsSource
}

func NewAnalyticsHandler(source AnalyticsSource) *AnalyticsHandler {
	return &AnalyticsHandler{source: source}
}

func (handler *AnalyticsHandler) GetAnalyticsHandler(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.source.Aggregate(request.Context())
	if err != nil {
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to compute analytics",
		})
		return
	}

	utils.JSON(writer, http.StatusOK, result)
}
