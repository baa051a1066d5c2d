package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dozy-jeff/sellable/financials"
	"github.com/Dozy-jeff/sellable/steps"
	"github.com/Dozy-jeff/sellable/store"
)

type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	URL         string `json:"url"`
	Category    string `json:"category"` // 'process' or 'sellable'
}

var videoCatalog = []Video{
	{ID: "1", Title: "What Buyers Expect", Description: "Learn what buyers look for when evaluating businesses", Duration: "12:30", URL: "https://videos.sellable.app/what-buyers-expect", Category: "process"},
	{ID: "2", Title: "How Due Diligence Works", Description: "Understanding the due diligence process from start to finish", Duration: "18:45", URL: "https://videos.sellable.app/due-diligence", Category: "process"},
	{ID: "3", Title: "Financial Documentation", Description: "Preparing your financial records for sale", Duration: "15:20", URL: "https://videos.sellable.app/financial-docs", Category: "process"},
	{ID: "4", Title: "Welcome to Sellable", Description: "Your journey to a successful business sale starts here", Duration: "8:15", URL: "https://videos.sellable.app/welcome", Category: "sellable"},
	{ID: "5", Title: "Your First Week Plan", Description: "Step-by-step guide for your first week with Sellable", Duration: "10:30", URL: "https://videos.sellable.app/first-week", Category: "sellable"},
}

// ListVideos returns the static video catalog, split by category.
func ListVideos() gin.HandlerFunc {
	return func(c *gin.Context) {
		process := []Video{}
		sellable := []Video{}
		for _, v := range videoCatalog {
			if v.Category == "process" {
				process = append(process, v)
			} else {
				sellable = append(sellable, v)
			}
		}
		c.JSON(http.StatusOK, gin.H{"processVideos": process, "sellableVideos": sellable})
	}
}

type MentorRequest struct {
	CompanyName string   `json:"companyName" binding:"required"`
	Industry    string   `json:"industry" binding:"required"`
	Needs       []string `json:"needs"`
}

// RequestMentor acknowledges a mentor-match request. Matching itself happens
// offline.
func RequestMentor() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MentorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":              true,
			"estResponseTime": "24-48h",
			"message":         "Your mentor request has been submitted. We'll match you with an experienced seller in your industry.",
		})
	}
}

// DataRoomManifest describes what the seller's data room would contain, built
// from their checklist and curriculum state. No files are generated here.
func DataRoomManifest(intakes store.IntakeStore, progress store.ProgressStore, fin store.FinancialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		ctx := c.Request.Context()

		result, err := intakes.GetReadiness(ctx, uid)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "submit an intake first"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		files := []gin.H{}
		period := "TTM"
		if m, err := fin.GetModel(ctx, uid); err == nil && m.Period != "" {
			period = m.Period
		}
		files = append(files, gin.H{
			"name":        financials.Filename(period),
			"type":        "financial",
			"description": "P&L, Balance Sheet, Cash Flow statements",
		})
		for _, item := range result.ChecklistItems {
			files = append(files, gin.H{
				"name":        item.ID + ".pdf",
				"type":        "checklist",
				"description": item.Text,
			})
		}

		overall := 0
		if p, err := progress.GetProgress(ctx, uid); err == nil {
			overall = steps.OverallProgress(p.CompletedArticles, p.CompletedTasks)
		}

		c.JSON(http.StatusOK, gin.H{
			"files":           files,
			"overallProgress": overall,
			"readiness":       result.Readiness,
		})
	}
}
