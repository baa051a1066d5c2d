package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurriculumShape(t *testing.T) {
	require.Len(t, ProcessSteps, 4)
	assert.Equal(t, 28, TotalItems()) // 11 articles + 17 tasks

	seen := map[string]bool{}
	for _, s := range ProcessSteps {
		for _, a := range s.Articles {
			require.False(t, seen[a.ID], "duplicate id %s", a.ID)
			seen[a.ID] = true
			assert.Equal(t, s.ID, a.StepID)
		}
		for _, task := range s.Tasks {
			require.False(t, seen[task.ID], "duplicate id %s", task.ID)
			seen[task.ID] = true
		}
	}
}

func TestHasArticleHasTask(t *testing.T) {
	assert.True(t, HasArticle("article-1-1"))
	assert.True(t, HasArticle("article-4-2"))
	assert.False(t, HasArticle("article-9-9"))
	assert.False(t, HasArticle("task-1-1"))

	assert.True(t, HasTask("task-4-5"))
	assert.False(t, HasTask("article-1-1"))
}

func TestStepFromScore(t *testing.T) {
	tests := []struct {
		score, want int
	}{
		{0, 1}, {49, 1}, {50, 2}, {69, 2}, {70, 3}, {84, 3}, {85, 4}, {100, 4},
		{-20, 1}, {150, 4}, // out-of-range inputs clamp, never fail
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, StepFromScore(tc.score), "score %d", tc.score)
	}

	// Monotonic non-decreasing.
	prev := 1
	for s := 0; s <= 100; s++ {
		cur := StepFromScore(s)
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestScoreBonus(t *testing.T) {
	assert.Equal(t, 0, ScoreBonus(nil, nil))
	assert.Equal(t, 1, ScoreBonus([]string{"article-1-1"}, nil))
	assert.Equal(t, 2, ScoreBonus(nil, []string{"task-1-1"}))
	assert.Equal(t, 5, ScoreBonus([]string{"article-1-1"}, []string{"task-1-1", "task-1-2"}))

	// Replayed completions do not inflate the bonus.
	assert.Equal(t, 3, ScoreBonus(
		[]string{"article-1-1", "article-1-1"},
		[]string{"task-1-1", "task-1-1", "task-1-1"},
	))
}

func TestDisplayScore(t *testing.T) {
	assert.Equal(t, 72, DisplayScore(70, 2))
	assert.Equal(t, 100, DisplayScore(95, 40)) // capped
	assert.Equal(t, 0, DisplayScore(0, 0))
}

func TestOverallProgress(t *testing.T) {
	assert.Equal(t, 0, OverallProgress(nil, nil))
	assert.Equal(t, 4, OverallProgress([]string{"article-1-1"}, nil))       // 1/28
	assert.Equal(t, 7, OverallProgress([]string{"article-1-1", "article-1-2"}, nil)) // 2/28
	assert.Equal(t, 11, OverallProgress([]string{"article-1-1"}, []string{"task-1-1", "task-1-2"})) // 3/28

	// Duplicates count once.
	assert.Equal(t, 4, OverallProgress([]string{"article-1-1", "article-1-1"}, nil))

	all := []string{}
	for _, s := range ProcessSteps {
		for _, a := range s.Articles {
			all = append(all, a.ID)
		}
	}
	tasks := []string{}
	for _, s := range ProcessSteps {
		for _, task := range s.Tasks {
			tasks = append(tasks, task.ID)
		}
	}
	assert.Equal(t, 100, OverallProgress(all, tasks))
}
