package handlers

import (
	"context"
	"net/http"

	"prepmate/internal/billing"
	"prepmate/internal/middleware"
	"prepmate/internal/models"
	"prepmate/internal/utils"
)

// ProfileService is the profile lifecycle surface the handler needs.
type ProfileService interface {
	GetOrCreate(ctx context.Context, email string) (*models.UserProfile, error)
	Save(ctx context.Context, profile *models.UserProfile) error
	Clear(ctx context.Context) error
}

type ProfileHandler struct {
	profiles ProfileService
}

func NewProfileHandler(profiles ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetProfileHandler returns the profile for an email, creating a free-tier
// one on first sight.
func (handler *ProfileHandler) GetProfileHandler(writer http.ResponseWriter, request *http.Request) {
	email := request.URL.Query().Get("email")
	if email == "" {
		utils.JSON(writer, http.StatusBadRequest, models.ErrorResponse{
			Code:    "missing_email",
			Message: "email query parameter is required",
		})
		return
	}

	profile, err := handler.profiles.GetOrCreate(request.Context(), email)
	if err != nil {
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to fetch profile",
		})
		return
	}

	utils.JSON(writer, http.StatusOK, profile)
}

// SaveProfileHandler updates the stored profile from a validated request.
func (handler *ProfileHandler) SaveProfileHandler(writer http.ResponseWriter, request *http.Request) {
	req := middleware.GetValidatedRequest[*models.SaveProfileRequest](request)

	profile, err := handler.profiles.GetOrCreate(request.Context(), req.Email)
	if err != nil {
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to load profile",
		})
		return
	}

	profile.Email = req.Email
	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.SubscriptionTier != "" {
		profile.SubscriptionTier = req.SubscriptionTier
		if plan, ok := billing.PlanByID(string(req.SubscriptionTier)); ok {
			profile.InterviewsRemaining = plan.InterviewsIncluded
		}
	}

	if err := handler.profiles.Save(request.Context(), profile); err != nil {
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to save profile",
		})
		return
	}

	utils.JSON(writer, http.StatusOK, profile)
}

func (handler *ProfileHandler) DeleteProfileHandler(writer http.ResponseWriter, request *http.Request) {
	if err := handler.profiles.Clear(request.Context()); err != nil {
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Failed to delete profile",
		})
		return
	}

	writer.WriteHeader(http.StatusNoContent)
}

// GetPlansHandler serves the static pricing catalog.
func (handler *ProfileHandler) GetPlansHandler(writer http.ResponseWriter, request *http.Request) {
	utils.JSON(writer, http.StatusOK, models.PlansResponse{Items: billing.Plans()})
}
