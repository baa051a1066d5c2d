package controllers

import (
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/Dozy-jeff/sellable/models"
	"github.com/Dozy-jeff/sellable/steps"
	"github.com/Dozy-jeff/sellable/store"
)

// GetSteps returns the curriculum definition.
func GetSteps() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"steps": steps.ProcessSteps, "totalItems": steps.TotalItems()})
	}
}

// GetProgress returns the seller's curriculum progress, or the initial state
// when nothing has been saved yet.
func GetProgress(progress store.ProgressStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		p, err := progress.GetProgress(c.Request.Context(), uid)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, models.StepProgress{
				CurrentStep:       1,
				CompletedArticles: []string{},
				CompletedTasks:    []string{},
			})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// PutProgress replaces the stored progress record. The overall percentage is
// recomputed server-side; the step may only move forward.
func PutProgress(progress store.ProgressStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.StepProgress
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		uid := c.GetInt64("user_id")
		ctx := c.Request.Context()

		if req.CurrentStep < 1 {
			req.CurrentStep = 1
		}
		if req.CurrentStep > len(steps.ProcessSteps) {
			req.CurrentStep = len(steps.ProcessSteps)
		}
		if prev, err := progress.GetProgress(ctx, uid); err == nil && prev.CurrentStep > req.CurrentStep {
			req.CurrentStep = prev.CurrentStep
		}
		req.CompletedArticles = dedupKnown(req.CompletedArticles, steps.HasArticle)
		req.CompletedTasks = dedupKnown(req.CompletedTasks, steps.HasTask)
		req.OverallProgress = steps.OverallProgress(req.CompletedArticles, req.CompletedTasks)

		if err := progress.PutProgress(ctx, uid, req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, req)
	}
}

// CompleteArticle marks an article read. Repeat completions are no-ops.
func CompleteArticle(intakes store.IntakeStore, progress store.ProgressStore) gin.HandlerFunc {
	return completeItem(intakes, progress, steps.HasArticle, func(p *models.StepProgress, id string) bool {
		if slices.Contains(p.CompletedArticles, id) {
			return false
		}
		p.CompletedArticles = append(p.CompletedArticles, id)
		return true
	})
}

// CompleteTask marks a task done. Repeat completions are no-ops.
func CompleteTask(intakes store.IntakeStore, progress store.ProgressStore) gin.HandlerFunc {
	return completeItem(intakes, progress, steps.HasTask, func(p *models.StepProgress, id string) bool {
		if slices.Contains(p.CompletedTasks, id) {
			return false
		}
		p.CompletedTasks = append(p.CompletedTasks, id)
		return true
	})
}

func completeItem(intakes store.IntakeStore, progress store.ProgressStore,
	known func(string) bool, add func(*models.StepProgress, string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !known(id) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown item"})
			return
		}
		uid := c.GetInt64("user_id")
		ctx := c.Request.Context()

		p, err := progress.GetProgress(ctx, uid)
		if errors.Is(err, store.ErrNotFound) {
			p = &models.StepProgress{CurrentStep: 1, CompletedArticles: []string{}, CompletedTasks: []string{}}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		changed := add(p, id)

		base := 0
		if r, err := intakes.GetReadiness(ctx, uid); err == nil {
			base = r.Readiness
		}
		bonus := steps.ScoreBonus(p.CompletedArticles, p.CompletedTasks)
		total := steps.DisplayScore(base, bonus)
		// Steps advance automatically with the displayed score and never move back.
		if s := steps.StepFromScore(total); s > p.CurrentStep {
			p.CurrentStep = s
		}
		p.OverallProgress = steps.OverallProgress(p.CompletedArticles, p.CompletedTasks)

		if changed {
			if err := progress.PutProgress(ctx, uid, *p); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"progress": p,
			"score":    gin.H{"base": base, "bonus": bonus, "total": total},
		})
	}
}

func dedupKnown(ids []string, known func(string) bool) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if !known(id) {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
