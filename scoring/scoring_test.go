package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dozy-jeff/sellable/models"
)

func f(v float64) *float64 { return &v }

func baseIntake() models.SellerIntake {
	return models.SellerIntake{
		CompanyName:    "Acme Plumbing",
		Location:       "Austin, TX",
		Industry:       "Home Services",
		Model:          "Local Services",
		Revenue:        100_000,
		Employees:      2,
		YearsOperating: 4,
		Timeline:       "6-12m",
	}
}

func TestScoreFromIntake(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*models.SellerIntake)
		want int
	}{
		{"bare minimum gets no-debt bonus", func(x *models.SellerIntake) {}, 45},
		{"revenue over threshold", func(x *models.SellerIntake) { x.Revenue = 600_000 }, 55},
		{"revenue at threshold is not over", func(x *models.SellerIntake) { x.Revenue = 500_000 }, 45},
		{"positive ebitda", func(x *models.SellerIntake) { x.Ebitda = f(50_000) }, 50},
		{"negative ebitda scores nothing", func(x *models.SellerIntake) { x.Ebitda = f(-10_000) }, 45},
		{"more than five employees", func(x *models.SellerIntake) { x.Employees = 6 }, 55},
		{"systems declared", func(x *models.SellerIntake) { x.Systems = []string{"QuickBooks"} }, 55},
		{"documented procedures", func(x *models.SellerIntake) { x.HasSOPs = true }, 55},
		{"high customer concentration", func(x *models.SellerIntake) { x.CustomerConcentration = "high" }, 35},
		{"medium concentration is neutral", func(x *models.SellerIntake) { x.CustomerConcentration = "med" }, 45},
		{"heavy debt", func(x *models.SellerIntake) { x.Debt = f(60_000) }, 30}, // ratio 0.6, loses band and bonus
		{"moderate debt", func(x *models.SellerIntake) { x.Debt = f(40_000) }, 35},
		{"light debt loses only the bonus", func(x *models.SellerIntake) { x.Debt = f(10_000) }, 40},
		{"explicit zero debt keeps bonus", func(x *models.SellerIntake) { x.Debt = f(0) }, 45},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x := baseIntake()
			tc.mod(&x)
			assert.Equal(t, tc.want, ScoreFromIntake(x))
		})
	}
}

func TestScoreClamping(t *testing.T) {
	// Everything favorable: 40+10+5+10+10+10+5 = 90, still under the cap.
	best := baseIntake()
	best.Revenue = 2_000_000
	best.Ebitda = f(400_000)
	best.Employees = 25
	best.Systems = []string{"QuickBooks", "Shopify"}
	best.HasSOPs = true
	assert.Equal(t, 90, ScoreFromIntake(best))
	assert.LessOrEqual(t, ScoreFromIntake(best), 95)

	// Everything unfavorable bottoms out above the floor but the clamp holds.
	worst := baseIntake()
	worst.CustomerConcentration = "high"
	worst.Debt = f(90_000)
	got := ScoreFromIntake(worst)
	assert.GreaterOrEqual(t, got, 10)
	assert.LessOrEqual(t, got, 95)
}

func TestScoreBounded(t *testing.T) {
	// Sweep a grid of inputs; the score must stay in [10, 95].
	revenues := []float64{0, 1, 499_999, 500_001, 10_000_000}
	debts := []*float64{nil, f(0), f(100_000), f(10_000_000)}
	concs := []string{"", "low", "med", "high"}
	for _, rev := range revenues {
		for _, debt := range debts {
			for _, conc := range concs {
				for _, sops := range []bool{false, true} {
					x := baseIntake()
					x.Revenue = rev
					x.Debt = debt
					x.CustomerConcentration = conc
					x.HasSOPs = sops
					got := ScoreFromIntake(x)
					require.GreaterOrEqual(t, got, 10)
					require.LessOrEqual(t, got, 95)
				}
			}
		}
	}
}

func TestScoreMonotonicity(t *testing.T) {
	// Crossing the revenue threshold never lowers the score.
	low := baseIntake()
	high := baseIntake()
	high.Revenue = 600_000
	assert.GreaterOrEqual(t, ScoreFromIntake(high), ScoreFromIntake(low))

	// Worsening the debt band never raises it.
	light := baseIntake()
	light.Debt = f(10_000)
	heavy := baseIntake()
	heavy.Debt = f(90_000)
	assert.LessOrEqual(t, ScoreFromIntake(heavy), ScoreFromIntake(light))
}

func TestScoreIdempotent(t *testing.T) {
	x := baseIntake()
	x.Systems = []string{"QuickBooks"}
	x.Debt = f(30_000)
	assert.Equal(t, ScoreFromIntake(x), ScoreFromIntake(x))
}

func TestChecklistForScore(t *testing.T) {
	low := ChecklistForScore(59)
	require.Len(t, low, 6)
	assert.Equal(t, "categorize-transactions", low[0].ID)
	assert.Equal(t, "Categorize all transactions (last 12 months)", low[0].Text)

	mid := ChecklistForScore(60)
	require.Len(t, mid, 5)
	for _, it := range mid {
		assert.NotEqual(t, "categorize-transactions", it.ID)
	}

	high := ChecklistForScore(75)
	require.Len(t, high, 6)
	assert.Equal(t, "data-room-index", high[len(high)-1].ID)

	almost := ChecklistForScore(74)
	for _, it := range almost {
		assert.NotEqual(t, "data-room-index", it.ID)
	}
}

func TestChecklistOrderStable(t *testing.T) {
	got := ChecklistTexts(ChecklistForScore(65))
	want := []string{
		"Upload clean P&L (TTM + 3Y)",
		"Provide customer concentration analysis",
		"Create/update SOPs for core ops",
		"Tax returns (last 2 years)",
		"Employee roster + roles",
	}
	assert.Equal(t, want, got)
}

func TestNextSteps(t *testing.T) {
	got := NextSteps([]string{"messy financials", "no SOPs", "landlord dispute", "no SOPs"})
	want := []string{
		"Connect QuickBooks and categorize transactions",
		"Create SOP for order fulfillment",
		"Address landlord dispute",
		"Create SOP for order fulfillment", // duplicates pass through
	}
	assert.Equal(t, want, got)

	assert.Empty(t, NextSteps(nil))
}
