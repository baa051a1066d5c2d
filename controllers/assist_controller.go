package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"

	"github.com/Dozy-jeff/sellable/config"
	"github.com/Dozy-jeff/sellable/utils"
)

type AssistRequest struct {
	Question string `json:"question" binding:"required"`
}

// Canned guidance, keyed by question keywords. Checked before any model call
// so the endpoint works without an API key.
var assistAnswers = map[string][]string{
	"clean p&l": {
		"1. Categorize all transactions by type (revenue, COGS, operating expenses)",
		"2. Remove personal expenses from business accounts",
		"3. Add back owner compensation to show true profitability",
		"4. Separate one-time expenses from recurring costs",
		"5. Ensure all revenue is properly recorded and documented",
	},
	"documents buyers expect": {
		"1. Financial statements (P&L, Balance Sheet, Cash Flow)",
		"2. Tax returns (last 2-3 years)",
		"3. Customer contracts and agreements",
		"4. Employee information and organizational chart",
		"5. Business licenses and permits",
		"6. Insurance policies",
		"7. Lease agreements",
		"8. Intellectual property documentation",
	},
	"due diligence": {
		"1. Financial due diligence - review of financial records",
		"2. Legal due diligence - contracts, compliance, litigation",
		"3. Operational due diligence - systems, processes, staff",
		"4. Commercial due diligence - market position, competition",
		"5. Technical due diligence - IT systems, data security",
	},
}

// Assist answers seller preparation questions: keyword match first, Gemini
// when configured, generic pointers otherwise.
func Assist(cfg config.Config, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AssistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		q := strings.ToLower(req.Question)
		for key, lines := range assistAnswers {
			if strings.Contains(q, key) {
				c.JSON(http.StatusOK, gin.H{"answer": lines, "source": "guide"})
				return
			}
		}

		if cfg.GeminiAPIKey != "" {
			ctx := c.Request.Context()
			client, err := utils.NewAIClient(ctx, utils.AIConfig{APIKey: cfg.GeminiAPIKey, GenModel: cfg.GeminiModel})
			if err == nil {
				defer client.Close()
				prompt := "You advise small business owners preparing to sell their business. " +
					"Answer briefly as a numbered list of concrete steps.\n\nQuestion: " + req.Question
				text, err := utils.GenerateText(ctx, client, cfg.GeminiModel, genai.Text(prompt))
				if err == nil && text != "" {
					c.JSON(http.StatusOK, gin.H{"answer": strings.Split(text, "\n"), "source": "ai"})
					return
				}
				log.Warn().Err(err).Msg("assist: gemini call failed, using fallback")
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"answer": []string{
				`I don't have a specific answer for: "` + req.Question + `"`,
				"1. Consult with a business broker or M&A advisor",
				"2. Review the preparation guides in your curriculum",
				"3. Speak with other sellers in the community",
			},
			"source": "fallback",
		})
	}
}
