// Package scoring maps a seller intake to a readiness score, a remediation
// checklist and a list of next steps. Everything here is a pure function of
// its arguments.
package scoring

import (
	"github.com/Dozy-jeff/sellable/models"
)

const (
	revenueThreshold = 500_000

	// Scores are never presented as hopeless or perfect.
	minScore = 10
	maxScore = 95
)

// ScoreFromIntake computes the base readiness score. Total over all inputs:
// every field either contributes a fixed amount or is ignored.
func ScoreFromIntake(x models.SellerIntake) int {
	score := 40
	if x.Revenue > revenueThreshold {
		score += 10
	}
	if x.Ebitda != nil && *x.Ebitda > 0 {
		score += 5
	}
	if x.Employees > 5 {
		score += 10
	}
	if len(x.Systems) > 0 {
		score += 10
	}
	if x.HasSOPs {
		score += 10
	}
	if x.CustomerConcentration == "high" {
		score -= 10
	}

	// Debt burden, relative to revenue (revenue-or-1 avoids division by zero).
	debt := 0.0
	if x.Debt != nil {
		debt = *x.Debt
	}
	rev := x.Revenue
	if rev == 0 {
		rev = 1
	}
	ratio := debt / rev
	switch {
	case ratio > 0.5:
		score -= 10
	case ratio > 0.3:
		score -= 5
	case debt == 0:
		score += 5
	}

	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

// Baseline remediation documents, in presentation order.
var baseChecklist = []models.ChecklistItem{
	{ID: "clean-pnl", Text: "Upload clean P&L (TTM + 3Y)"},
	{ID: "customer-concentration", Text: "Provide customer concentration analysis"},
	{ID: "sops-core-ops", Text: "Create/update SOPs for core ops"},
	{ID: "tax-returns", Text: "Tax returns (last 2 years)"},
	{ID: "employee-roster", Text: "Employee roster + roles"},
}

var (
	categorizeItem = models.ChecklistItem{ID: "categorize-transactions", Text: "Categorize all transactions (last 12 months)"}
	dataRoomItem   = models.ChecklistItem{ID: "data-room-index", Text: "Prepare data room index (folders, naming)"}
)

// ChecklistForScore returns the remediation checklist for a score. Low scores
// get a categorization item prepended; high scores get a data-room item
// appended. Order is significant and preserved by callers.
func ChecklistForScore(score int) []models.ChecklistItem {
	items := make([]models.ChecklistItem, 0, len(baseChecklist)+2)
	if score < 60 {
		items = append(items, categorizeItem)
	}
	items = append(items, baseChecklist...)
	if score >= 75 {
		items = append(items, dataRoomItem)
	}
	return items
}

// ChecklistTexts projects items to display strings, same order.
func ChecklistTexts(items []models.ChecklistItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}

var blockerSteps = map[string]string{
	"messy financials":       "Connect QuickBooks and categorize transactions",
	"no SOPs":                "Create SOP for order fulfillment",
	"customer concentration": "Diversify customer base",
	"no systems":             "Implement basic business systems",
	"tax issues":             "Resolve tax compliance issues",
}

// NextSteps maps declared blockers to remediation steps, mirroring input
// order. Unknown blockers fall back to a generic prompt. Duplicates pass
// through untouched.
func NextSteps(blockers []string) []string {
	out := make([]string, 0, len(blockers))
	for _, b := range blockers {
		if s, ok := blockerSteps[b]; ok {
			out = append(out, s)
		} else {
			out = append(out, "Address "+b)
		}
	}
	return out
}
