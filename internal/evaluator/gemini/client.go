package gemini

import (
	"context"
	"encoding/json"
	"strings"

	"google.golang.org/genai"

	"prepmate/internal/evaluator"
	"prepmate/internal/models"
)

// Client evaluates interview answers with the Gemini API.
type Client struct {
	client *genai.Client
	config *Config
}

func NewClient(config *Config) (*Client, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &evaluator.ProviderError{
			Provider: "gemini",
			Code:     evaluator.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	return &Client{
		client: client,
		config: config,
	}, nil
}

// modelReply is the JSON shape the evaluation prompt asks the model for.
type modelReply struct {
	Score        int      `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Suggestions  string   `json:"suggestions"`
}

func (c *Client) Analyze(ctx context.Context, req evaluator.AnalysisRequest) (*models.Feedback, error) {
	prompt := BuildEvaluationPrompt(req)

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.config.Model,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		return nil, &evaluator.ProviderError{
			Provider: "gemini",
			Code:     evaluator.ErrCodeServiceDown,
			Message:  "Failed to evaluate response",
			Err:      err,
		}
	}

	if result == nil {
		return nil, &evaluator.ProviderError{
			Provider: "gemini",
			Code:     evaluator.ErrCodeInvalidInput,
			Message:  "No evaluation generated",
		}
	}

	text, err := result.Text()
	if err != nil {
		return nil, &evaluator.ProviderError{
			Provider: "gemini",
			Code:     evaluator.ErrCodeInvalidInput,
			Message:  "Failed to extract evaluation text",
			Err:      err,
		}
	}

	reply, err := parseReply(text)
	if err != nil {
		return nil, &evaluator.ProviderError{
			Provider: "gemini",
			Code:     evaluator.ErrCodeInvalidInput,
			Message:  "Model reply was not valid evaluation JSON",
			Err:      err,
		}
	}

	fb := &models.Feedback{
		QuestionID:   req.QuestionID,
		Score:        clampScore(reply.Score),
		Strengths:    reply.Strengths,
		Improvements: reply.Improvements,
		Suggestions:  reply.Suggestions,
	}
	if fb.Suggestions == "" {
		fb.Suggestions = "Keep practicing and focus on concrete examples."
	}
	return fb, nil
}

func (c *Client) GetProviderName() string {
	return "gemini"
}

// parseReply tolerates markdown code fences around the JSON body.
func parseReply(text string) (*modelReply, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var reply modelReply
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func clampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}
