package handlers

import (
	"context"
	"net/http"

	"prepmate/internal/models"
	"prepmate/internal/utils"
)

// DashboardProvider is the snapshot surface the handler needs.
type DashboardProvider interface {
	Snapshot() (*models.DashboardData, error)
	Refresh(ctx context.Context) (*models.DashboardData, error)
	SetFilters(ctx context.Context, filters models.DashboardFilters) (*models.DashboardData, error)
}

type DashboardHandler struct {
	provider DashboardProvider
}

func NewDashboardHandler(provider DashboardProvider) *DashboardHandler {
	return &DashboardHandler{provider: provider}
}

// GetDataHandler serves the current snapshot. Query parameters change the
// active filters and trigger a refetch; a bare request reads the warm
// snapshot.
func (handler *DashboardHandler) GetDataHandler(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	if query.Has("card_type") || query.Has("transaction_type") {
		filters := models.DashboardFilters{
			CardType:        models.CardAll,
			TransactionType: models.TxAll,
		}
		if v := query.Get("card_type"); v != "" {
			filters.CardType = models.CardType(v)
		}
		if v := query.Get("transaction_type"); v != "" {
			filters.TransactionType = models.TransactionType(v)
		}

		data, err := handler.provider.SetFilters(request.Context(), filters)
		if err != nil {
			utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
				Code:    "internal_error",
				Message: "Failed to fetch dashboard data",
			})
			return
		}
		utils.JSON(writer, http.StatusOK, data)
		return
	}

	data, err := handler.provider.Snapshot()
	if err != nil {
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to fetch dashboard data",
		})
		return
	}
	utils.JSON(writer, http.StatusOK, data)
}

// RefreshHandler forces an immediate refetch with the active filters.
func (handler *DashboardHandler) RefreshHandler(writer http.ResponseWriter, request *http.Request) {
	data, err := handler.provider.Refresh(request.Context())
	if err != nil {
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to refresh dashboard data",
		})
		return
	}
	utils.JSON(writer, http.StatusOK, data)
}
