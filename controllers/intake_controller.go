package controllers

import (
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/Dozy-jeff/sellable/models"
	"github.com/Dozy-jeff/sellable/scoring"
	"github.com/Dozy-jeff/sellable/steps"
	"github.com/Dozy-jeff/sellable/store"
)

// SubmitIntake accepts a seller intake, computes the readiness result and
// replaces any previous submission wholesale. Progress is initialized (or
// advanced, never regressed) from the new base score.
func SubmitIntake(intakes store.IntakeStore, progress store.ProgressStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SellerIntake
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if msg := validateIntake(req); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		uid := c.GetInt64("user_id")
		ctx := c.Request.Context()

		base := scoring.ScoreFromIntake(req)
		items := scoring.ChecklistForScore(base)
		result := models.ReadinessResult{
			Readiness:      base,
			Checklist:      scoring.ChecklistTexts(items),
			ChecklistItems: items,
			NextSteps:      scoring.NextSteps(req.Blockers),
		}

		if err := intakes.PutIntake(ctx, uid, req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if err := intakes.PutReadiness(ctx, uid, result); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		p, err := progress.GetProgress(ctx, uid)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if p == nil {
			p = &models.StepProgress{CurrentStep: 1, CompletedArticles: []string{}, CompletedTasks: []string{}}
		}
		bonus := steps.ScoreBonus(p.CompletedArticles, p.CompletedTasks)
		if s := steps.StepFromScore(steps.DisplayScore(base, bonus)); s > p.CurrentStep {
			p.CurrentStep = s
		}
		p.OverallProgress = steps.OverallProgress(p.CompletedArticles, p.CompletedTasks)
		if err := progress.PutProgress(ctx, uid, *p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// GetIntake returns the stored intake for the authenticated seller.
func GetIntake(intakes store.IntakeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		intake, err := intakes.GetIntake(c.Request.Context(), uid)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no intake submitted"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, intake)
	}
}

// GetReadiness returns the stored base score together with the curriculum
// bonus and the display total the dashboard shows.
func GetReadiness(intakes store.IntakeStore, progress store.ProgressStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		ctx := c.Request.Context()
		result, err := intakes.GetReadiness(ctx, uid)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no readiness result"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		bonus := 0
		currentStep := 1
		if p, err := progress.GetProgress(ctx, uid); err == nil {
			bonus = steps.ScoreBonus(p.CompletedArticles, p.CompletedTasks)
			currentStep = p.CurrentStep
		}
		total := steps.DisplayScore(result.Readiness, bonus)

		c.JSON(http.StatusOK, gin.H{
			"readiness":      result.Readiness,
			"bonus":          bonus,
			"total":          total,
			"currentStep":    currentStep,
			"checklist":      result.Checklist,
			"checklistItems": result.ChecklistItems,
			"nextSteps":      result.NextSteps,
		})
	}
}

func validateIntake(x models.SellerIntake) string {
	if !slices.Contains(models.Industries, x.Industry) {
		return "unknown industry"
	}
	if !slices.Contains(models.BusinessModels, x.Model) {
		return "unknown business model"
	}
	if !slices.Contains(models.Timelines, x.Timeline) {
		return "unknown timeline"
	}
	if x.CustomerConcentration != "" && !slices.Contains(models.Concentrations, x.CustomerConcentration) {
		return "unknown customer concentration"
	}
	if x.Debt != nil && *x.Debt < 0 {
		return "debt must be >= 0"
	}
	return ""
}
