package gemini

import (
	"embed"
	"strings"

	"prepmate/internal/evaluator"
)

// embeds the evaluation prompt template at compile time
//
//go:embed templates/*.txt
var templateFS embed.FS

// BuildEvaluationPrompt fills the embedded evaluation template with the
// question, answer, and job category.
func BuildEvaluationPrompt(req evaluator.AnalysisRequest) string {
	data, err := templateFS.ReadFile("templates/evaluate.txt")
	if err != nil {
		// the template is embedded; failure here means a broken build
		panic("gemini: missing embedded evaluation template: " + err.Error())
	}

	prompt := string(data)
	prompt = strings.ReplaceAll(prompt, "{{.JobCategory}}", string(req.JobCategory))
	prompt = strings.ReplaceAll(prompt, "{{.Question}}", req.QuestionText)
	prompt = strings.ReplaceAll(prompt, "{{.Response}}", req.ResponseText)

	resume := req.ResumeText
	if resume == "" {
		resume = "(not provided)"
	}
	prompt = strings.ReplaceAll(prompt, "{{.Resume}}", resume)

	return prompt
}
