package models

import "strings"

type CreateSessionRequest struct {
	UserID      string      `json:"user_id"`
	JobCategory JobCategory `json:"job_category"`
	Difficulty  Difficulty  `json:"difficulty"`
	ResumeText  string      `json:"resume_text,omitempty"`
}

// implements the Validator interface
func (r *CreateSessionRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return &ErrorResponse{
			Code:    "missing_user_id",
			Message: "user_id field is required",
		}
	}

	if r.JobCategory == "" {
		return &ErrorResponse{
			Code:    "missing_job_category",
			Message: "job_category field is required",
		}
	}

	// Unknown job categories fall back to the general catalog, so they are
	// accepted here. Difficulty is a closed set and must be valid if given.
	if r.Difficulty != "" && !ValidDifficulties[r.Difficulty] {
		return &ErrorResponse{
			Code:    "invalid_difficulty",
			Message: "difficulty must be one of: entry, mid, senior",
		}
	}

	return nil
}

type SubmitResponseRequest struct {
	QuestionIndex int    `json:"question_index"`
	Response      string `json:"response"`
}

func (r *SubmitResponseRequest) Validate() error {
	if r.QuestionIndex < 0 {
		return &ErrorResponse{
			Code:    "invalid_question_index",
			Message: "question_index must be non-negative",
		}
	}
	if strings.TrimSpace(r.Response) == "" {
		return &ErrorResponse{
			Code:    "empty_response",
			Message: "response must not be empty",
		}
	}
	return nil
}

type TailoredQuestionsRequest struct {
	ResumeText  string      `json:"resume_text"`
	JobCategory JobCategory `json:"job_category"`
	Count       int         `json:"count,omitempty"`
}

func (r *TailoredQuestionsRequest) Validate() error {
	if strings.TrimSpace(r.ResumeText) == "" {
		return &ErrorResponse{
			Code:    "missing_resume_text",
			Message: "resume_text field is required",
		}
	}
	if r.JobCategory == "" {
		return &ErrorResponse{
			Code:    "missing_job_category",
			Message: "job_category field is required",
		}
	}
	if r.Count < 0 {
		return &ErrorResponse{
			Code:    "invalid_count",
			Message: "count must be non-negative",
		}
	}
	return nil
}

type SaveProfileRequest struct {
	Email            string           `json:"email"`
	Name             string           `json:"name,omitempty"`
	SubscriptionTier SubscriptionTier `json:"subscription_tier,omitempty"`
}

func (r *SaveProfileRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || !strings.Contains(r.Email, "@") {
		return &ErrorResponse{
			Code:    "invalid_email",
			Message: "a valid email is required",
		}
	}
	if r.SubscriptionTier != "" && !ValidSubscriptionTiers[r.SubscriptionTier] {
		return &ErrorResponse{
			Code:    "invalid_subscription_tier",
			Message: "subscription_tier must be one of: free, pay-per-use, monthly",
		}
	}
	return nil
}
