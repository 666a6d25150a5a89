package billing

import "prepmate/internal/models"

// plans is the static pricing catalog. Process-wide constant; there is no
// billing backend behind it.
var plans = []models.PricingPlan{
	{
		ID:    "free",
		Name:  "Free Trial",
		Tier:  models.TierFree,
		Price: 0,
		Features: []string{
			"1 free interview",
			"Basic feedback",
			"Email transcript",
		},
		InterviewsIncluded: 1,
	},
	{
		ID:    "pay-per-use",
		Name:  "Pay Per Interview",
		Tier:  models.TierPayPerUse,
		Price: 2,
		Features: []string{
			"$2 per interview",
			"AI-powered feedback",
			"Downloadable reports",
			"Resume-tailored questions",
		},
		InterviewsIncluded: 1,
	},
	{
		ID:    "monthly",
		Name:  "Pro Monthly",
		Tier:  models.TierMonthly,
		Price: 10,
		Features: []string{
			"Unlimited interviews",
			"Advanced AI feedback",
			"Priority support",
			"All job types",
			"Performance analytics",
		},
		InterviewsIncluded: models.UnlimitedInterviews,
	},
}

// Plans returns the pricing catalog. The caller gets a copy; the catalog
// itself never changes.
func Plans() []models.PricingPlan {
	out := make([]models.PricingPlan, len(plans))
	copy(out, plans)
	return out
}

// PlanByID looks up one plan.
func PlanByID(id string) (models.PricingPlan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return models.PricingPlan{}, false
}
