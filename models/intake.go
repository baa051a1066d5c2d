package models

import "time"

// Fixed categorical vocabularies for intake and listings.
var (
	Industries = []string{
		"Home Services", "E-commerce", "Healthcare",
		"Restaurants", "B2B Services", "Education", "Other",
	}
	BusinessModels = []string{
		"Local Services", "Shopify/DTC", "Marketplace",
		"SaaS", "Agency", "Franchise",
	}
	Timelines      = []string{"ASAP", "3-6m", "6-12m", "12-18m", "Exploring"}
	Concentrations = []string{"low", "med", "high"}
)

// SellerIntake is a seller's self-reported business profile, captured once at
// onboarding and fully replaced on re-submission.
type SellerIntake struct {
	CompanyName           string   `json:"companyName" binding:"required"`
	Website               string   `json:"website"`
	Location              string   `json:"location" binding:"required"`
	Industry              string   `json:"industry" binding:"required"`
	Model                 string   `json:"model" binding:"required"`
	Revenue               float64  `json:"revenue" binding:"gte=0"` // annual, USD
	Ebitda                *float64 `json:"ebitda,omitempty"`
	Debt                  *float64 `json:"debt,omitempty"` // total debt, USD
	Employees             int      `json:"employees" binding:"gte=0"`
	YearsOperating        int      `json:"yearsOperating" binding:"gte=0"`
	Systems               []string `json:"systems"`
	Timeline              string   `json:"timeline" binding:"required"`
	Blockers              []string `json:"blockers"`
	HasSOPs               bool     `json:"hasSOPs"`
	CustomerConcentration string   `json:"customerConcentration,omitempty"` // low|med|high
}

// ChecklistItem pairs a stable identifier with display text. Completion
// matching keys off the ID; the text is presentation only.
type ChecklistItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ReadinessResult is derived from an intake and never edited directly. The
// stored score is the base; curriculum bonus is layered on top at display time.
type ReadinessResult struct {
	Readiness      int             `json:"readiness"`
	Checklist      []string        `json:"checklist"`
	ChecklistItems []ChecklistItem `json:"checklistItems"`
	NextSteps      []string        `json:"nextSteps"`
}

// StepProgress tracks a seller's position in the curriculum. Completed ids
// are sets; the slices carry membership, not order.
type StepProgress struct {
	CurrentStep       int      `json:"currentStep"`
	CompletedArticles []string `json:"completedArticles"`
	CompletedTasks    []string `json:"completedTasks"`
	OverallProgress   int      `json:"overallProgress"`
}

// Listing is the buyer-facing marketplace artifact produced from an intake
// plus its readiness result at publish time.
type Listing struct {
	ID             string    `json:"id"`
	UserID         int64     `json:"-"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	Industry       string    `json:"industry"`
	Model          string    `json:"model"`
	RevenueTTM     float64   `json:"revenueTTM"`
	EbitdaTTM      float64   `json:"ebitdaTTM"`
	Employees      int       `json:"employees"`
	YearsOperating int       `json:"yearsOperating"`
	Systems        []string  `json:"systems"`
	Readiness      int       `json:"readiness"`
	Highlights     []string  `json:"highlights"`
	PublishedAt    time.Time `json:"publishedAt"`
}
