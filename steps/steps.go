// Package steps holds the fixed 4-step sale-preparation curriculum and the
// pure helpers that map scores and completions onto it.
package steps

import "math"

type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ReadTime    string `json:"readTime"`
	StepID      string `json:"stepId"`
}

type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ProcessStep struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Articles    []Article `json:"articles"`
	Tasks       []Task    `json:"tasks"`
}

// ProcessSteps is the full curriculum: 4 steps, 11 articles, 17 tasks.
var ProcessSteps = []ProcessStep{
	{
		ID:          "step-1",
		Title:       "Financial Documentation",
		Description: "Organize and clean up your financial records",
		Articles: []Article{
			{ID: "article-1-1", Title: "Understanding Your Balance Sheet", Description: "Learn the key components buyers look for in a balance sheet", ReadTime: "8 min", StepID: "step-1"},
			{ID: "article-1-2", Title: "Creating a Clean P&L Statement", Description: "Best practices for profit and loss statements", ReadTime: "10 min", StepID: "step-1"},
			{ID: "article-1-3", Title: "Tax Return Preparation for Sale", Description: "Aligning tax returns with financial statements", ReadTime: "7 min", StepID: "step-1"},
		},
		Tasks: []Task{
			{ID: "task-1-1", Title: "Create Balance Sheet", Description: "Prepare a current balance sheet with all assets and liabilities"},
			{ID: "task-1-2", Title: "Create Income Statement", Description: "Prepare P&L for the last 3 years with monthly detail"},
			{ID: "task-1-3", Title: "Gather Tax Returns", Description: "Collect and organize last 3 years of tax returns"},
			{ID: "task-1-4", Title: "Reconcile Financials", Description: "Reconcile P&L to tax returns and document differences"},
		},
	},
	{
		ID:          "step-2",
		Title:       "Operations Documentation",
		Description: "Document your business processes and procedures",
		Articles: []Article{
			{ID: "article-2-1", Title: "Writing Effective SOPs", Description: "How to create standard operating procedures", ReadTime: "12 min", StepID: "step-2"},
			{ID: "article-2-2", Title: "Employee Roles and Responsibilities", Description: "Documenting your organizational structure", ReadTime: "8 min", StepID: "step-2"},
			{ID: "article-2-3", Title: "Customer Concentration Analysis", Description: "Understanding and mitigating customer risk", ReadTime: "9 min", StepID: "step-2"},
		},
		Tasks: []Task{
			{ID: "task-2-1", Title: "Create Organization Chart", Description: "Document reporting structure and all employee roles"},
			{ID: "task-2-2", Title: "Write Core SOPs", Description: "Document standard operating procedures for key processes"},
			{ID: "task-2-3", Title: "Customer Analysis", Description: "Analyze customer concentration and prepare mitigation plan"},
			{ID: "task-2-4", Title: "Employee Documentation", Description: "Prepare employee roster, job descriptions, and compensation details"},
		},
	},
	{
		ID:          "step-3",
		Title:       "Legal & Compliance",
		Description: "Ensure all legal and regulatory requirements are met",
		Articles: []Article{
			{ID: "article-3-1", Title: "Contract Review and Assignment", Description: "Preparing contracts for ownership transfer", ReadTime: "10 min", StepID: "step-3"},
			{ID: "article-3-2", Title: "Intellectual Property Protection", Description: "Securing and documenting your IP assets", ReadTime: "8 min", StepID: "step-3"},
			{ID: "article-3-3", Title: "Regulatory Compliance Review", Description: "Ensuring all licenses and permits are current", ReadTime: "7 min", StepID: "step-3"},
		},
		Tasks: []Task{
			{ID: "task-3-1", Title: "Contract Inventory", Description: "Create list of all contracts with key terms and assignment provisions"},
			{ID: "task-3-2", Title: "IP Documentation", Description: "Document all intellectual property and verify ownership"},
			{ID: "task-3-3", Title: "License Review", Description: "Verify all business licenses and permits are current"},
			{ID: "task-3-4", Title: "Compliance Binder", Description: "Organize all compliance documentation in one location"},
		},
	},
	{
		ID:          "step-4",
		Title:       "Data Room Preparation",
		Description: "Organize all documents for buyer due diligence",
		Articles: []Article{
			{ID: "article-4-1", Title: "Setting Up Your Data Room", Description: "Best practices for organizing deal documents", ReadTime: "9 min", StepID: "step-4"},
			{ID: "article-4-2", Title: "Due Diligence Checklist", Description: "What buyers will ask for and why", ReadTime: "11 min", StepID: "step-4"},
		},
		Tasks: []Task{
			{ID: "task-4-1", Title: "Create Data Room Structure", Description: "Set up folders and organization system for all documents"},
			{ID: "task-4-2", Title: "Upload Financial Documents", Description: "Add all financial statements, tax returns, and supporting schedules"},
			{ID: "task-4-3", Title: "Upload Operational Documents", Description: "Add SOPs, employee info, customer analysis, and vendor details"},
			{ID: "task-4-4", Title: "Upload Legal Documents", Description: "Add all contracts, IP documentation, and compliance records"},
			{ID: "task-4-5", Title: "Create Data Room Index", Description: "Prepare table of contents and document guide for buyers"},
		},
	},
}

// TotalItems is the fixed number of completable items across the curriculum.
func TotalItems() int {
	n := 0
	for _, s := range ProcessSteps {
		n += len(s.Articles) + len(s.Tasks)
	}
	return n
}

// HasArticle reports whether an article id exists in the curriculum.
func HasArticle(id string) bool {
	for _, s := range ProcessSteps {
		for _, a := range s.Articles {
			if a.ID == id {
				return true
			}
		}
	}
	return false
}

// HasTask reports whether a task id exists in the curriculum.
func HasTask(id string) bool {
	for _, s := range ProcessSteps {
		for _, t := range s.Tasks {
			if t.ID == id {
				return true
			}
		}
	}
	return false
}

// StepFromScore maps a total score (base + bonus) to a curriculum step.
// Monotonic non-decreasing; out-of-range inputs clamp into 1..4.
func StepFromScore(score int) int {
	switch {
	case score >= 85:
		return 4
	case score >= 70:
		return 3
	case score >= 50:
		return 2
	default:
		return 1
	}
}

// ScoreBonus awards 1 point per completed article and 2 per completed task.
// Ids are deduplicated first so that replayed completions cannot inflate the
// displayed score.
func ScoreBonus(completedArticles, completedTasks []string) int {
	return dedup(completedArticles) + dedup(completedTasks)*2
}

// DisplayScore is the score shown to the user: stored base plus curriculum
// bonus, capped at 100. The stored base itself is never mutated by bonuses.
func DisplayScore(base, bonus int) int {
	total := base + bonus
	if total > 100 {
		return 100
	}
	if total < 0 {
		return 0
	}
	return total
}

// OverallProgress is the percentage of curriculum items completed, over the
// union of article and task completions.
func OverallProgress(completedArticles, completedTasks []string) int {
	total := TotalItems()
	done := dedup(append(append([]string{}, completedArticles...), completedTasks...))
	if done > total {
		done = total
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

func dedup(ids []string) int {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen)
}
