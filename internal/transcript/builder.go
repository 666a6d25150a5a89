package transcript

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"prepmate/internal/models"
)

// Placeholders used when a question was never answered or evaluated.
const (
	missingResponse   = "No response provided"
	missingSuggestion = "Not evaluated"
)

// Build derives a transcript from a session. It never mutates the session
// and can run on in-progress sessions: unanswered questions get placeholder
// entries. Responses and feedback are matched to questions by question ID,
// so a partially answered session renders correctly regardless of order.
func Build(session *models.Session) *models.Transcript {
	entries := make([]models.TranscriptEntry, 0, len(session.Questions))
	for _, q := range session.Questions {
		entry := models.TranscriptEntry{
			Question: q.Question,
			Response: missingResponse,
			Feedback: models.Feedback{
				QuestionID:   q.ID,
				Score:        0,
				Strengths:    []string{},
				Improvements: []string{},
				Suggestions:  missingSuggestion,
			},
		}
		if r, ok := session.ResponseFor(q.ID); ok {
			entry.Response = r.Response
		}
		if f, ok := session.FeedbackFor(q.ID); ok {
			entry.Feedback = f
		}
		entries = append(entries, entry)
	}

	mean := meanScore(session.Feedback)

	return &models.Transcript{
		SessionID:    session.ID,
		JobCategory:  session.JobCategory,
		Questions:    entries,
		OverallScore: math.Round(mean*10) / 10,
		Summary: fmt.Sprintf("Interview practice for %s position. Overall performance: %s",
			session.JobCategory, performanceBucket(mean)),
		GeneratedAt: time.Now().UTC(),
	}
}

// performanceBucket classifies the unrounded mean score.
func performanceBucket(score float64) string {
	switch {
	case score >= 8:
		return "Excellent"
	case score >= 6:
		return "Good"
	default:
		return "Needs Improvement"
	}
}

func meanScore(feedback []models.Feedback) float64 {
	if len(feedback) == 0 {
		return 0
	}
	sum := 0
	for _, f := range feedback {
		sum += f.Score
	}
	return float64(sum) / float64(len(feedback))
}

// RenderText formats a transcript as the plain-text export document.
func RenderText(t *models.Transcript) string {
	var b strings.Builder

	rule := strings.Repeat("=", 50)

	b.WriteString("INTERVIEW TRANSCRIPT\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Session ID: %s\n", t.SessionID)
	fmt.Fprintf(&b, "Job Type: %s\n", t.JobCategory)
	fmt.Fprintf(&b, "Overall Score: %s/10\n", formatScore(t.OverallScore))
	fmt.Fprintf(&b, "Generated: %s\n\n", t.GeneratedAt.Format("1/2/2006, 3:04:05 PM"))
	b.WriteString(rule + "\n")
	b.WriteString("SUMMARY\n")
	b.WriteString(rule + "\n")
	b.WriteString(t.Summary + "\n\n")
	b.WriteString(rule + "\n")
	b.WriteString("QUESTIONS & RESPONSES\n")
	b.WriteString(rule + "\n\n")

	for i, q := range t.Questions {
		fmt.Fprintf(&b, "Question %d:\n", i+1)
		b.WriteString(q.Question + "\n\n")
		b.WriteString("Your Response:\n")
		b.WriteString(q.Response + "\n\n")
		fmt.Fprintf(&b, "Score: %d/10\n\n", q.Feedback.Score)
		b.WriteString("Strengths:\n")
		for _, s := range q.Feedback.Strengths {
			b.WriteString("  • " + s + "\n")
		}
		b.WriteString("\nAreas for Improvement:\n")
		for _, imp := range q.Feedback.Improvements {
			b.WriteString("  • " + imp + "\n")
		}
		b.WriteString("\nSuggestions:\n" + q.Feedback.Suggestions + "\n")
		b.WriteString("\n" + strings.Repeat("-", 40) + "\n\n")
	}

	return b.String()
}

// Filename is the suggested download name for a transcript export.
func Filename(sessionID string) string {
	return fmt.Sprintf("interview-transcript-%s.txt", sessionID)
}

// formatScore prints a score without a trailing zero: 7 not 7.0, but 7.3
// stays 7.3.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
