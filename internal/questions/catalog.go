package questions

import (
	"context"
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"prepmate/internal/models"
)

// embeds the question catalog into the binary at compile time
//
//go:embed catalog/*.yaml
var catalogFS embed.FS

// DefaultTailoredCount is how many questions a tailored set contains when
// the caller does not ask for a specific count.
const DefaultTailoredCount = 5

// catalogEntry mirrors one question record in the YAML file.
type catalogEntry struct {
	ID         string `yaml:"id"`
	Question   string `yaml:"question"`
	Category   string `yaml:"category"`
	Difficulty string `yaml:"difficulty"`
}

// Catalog holds the static question sets, keyed by job category.
// Loaded once at startup; read-only afterwards.
type Catalog struct {
	sets map[models.JobCategory][]models.Question
}

// NewCatalog parses the embedded question sets.
func NewCatalog() (*Catalog, error) {
	data, err := catalogFS.ReadFile("catalog/questions.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read question catalog: %w", err)
	}

	var raw map[string][]catalogEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse question catalog: %w", err)
	}

	sets := make(map[models.JobCategory][]models.Question, len(raw))
	for category, entries := range raw {
		job := models.JobCategory(category)
		if !models.ValidJobCategories[job] {
			return nil, fmt.Errorf("unknown job category in catalog: %s", category)
		}
		if len(entries) == 0 {
			return nil, fmt.Errorf("job category %s has no questions", category)
		}
		qs := make([]models.Question, 0, len(entries))
		for _, e := range entries {
			qs = append(qs, models.Question{
				ID:          e.ID,
				Question:    e.Question,
				Category:    e.Category,
				Difficulty:  models.Difficulty(e.Difficulty),
				JobCategory: job,
			})
		}
		sets[job] = qs
	}

	if _, ok := sets[models.JobGeneral]; !ok {
		return nil, fmt.Errorf("catalog is missing the %q fallback category", models.JobGeneral)
	}

	return &Catalog{sets: sets}, nil
}

// Questions returns the ordered question set for a job category, falling
// back to the general set when the category is unrecognized. The difficulty
// filter is a pass-through: an exact-match filter may yield an empty slice.
func (c *Catalog) Questions(job models.JobCategory, difficulty models.Difficulty) []models.Question {
	set, ok := c.sets[job]
	if !ok {
		set = c.sets[models.JobGeneral]
	}

	out := make([]models.Question, 0, len(set))
	for _, q := range set {
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out
}

// TailoredQuestions selects a question subset for a resume. The current
// implementation does not inspect the resume text: it returns the first
// count questions of the category. Real tailoring belongs in a separate
// implementation of the provider interface.
func (c *Catalog) TailoredQuestions(ctx context.Context, resumeText string, job models.JobCategory, count int) ([]models.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if count <= 0 {
		count = DefaultTailoredCount
	}

	qs := c.Questions(job, "")
	if len(qs) > count {
		qs = qs[:count]
	}
	return qs, nil
}
