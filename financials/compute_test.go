package financials

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dozy-jeff/sellable/models"
)

func TestComputeISAccountingIdentity(t *testing.T) {
	is := models.IncomeStatementInput{
		Revenue:           500_000,
		ReturnsAllowances: 0,
		COGS:              200_000,
		SalariesWages:     100_000,
		Rent:              12_000,
		Utilities:         6_000,
		Insurance:         4_000,
		Marketing:         8_000,
		Depreciation:      5_000,
		OtherOpex:         0,
		InterestExpense:   1_000,
		Taxes:             0,
	}
	got := ComputeIS(is, 0.21)
	assert.Equal(t, 500_000.0, got.RevenueNet)
	assert.Equal(t, 300_000.0, got.GrossProfit)
	assert.Equal(t, 135_000.0, got.Opex)
	assert.Equal(t, 165_000.0, got.EBIT)
	assert.Equal(t, 164_000.0, got.EBT)
	assert.Equal(t, 34_440.0, got.Taxes)
	assert.Equal(t, 129_560.0, got.NetIncome)
}

func TestComputeISTaxHandling(t *testing.T) {
	is := models.IncomeStatementInput{Revenue: 100_000, COGS: 40_000}

	// User-supplied taxes win over the estimate.
	is.Taxes = 9_000
	assert.Equal(t, 9_000.0, ComputeIS(is, 0.21).Taxes)

	// Zero taxes trigger estimation at the default rate.
	is.Taxes = 0
	assert.Equal(t, 60_000*0.21, ComputeIS(is, 0.21).Taxes)

	// A loss estimates to zero taxes, never negative.
	loss := models.IncomeStatementInput{Revenue: 10_000, COGS: 50_000}
	got := ComputeIS(loss, 0.21)
	assert.Equal(t, 0.0, got.Taxes)
	assert.Equal(t, -40_000.0, got.NetIncome)
}

func TestComputeISIdempotent(t *testing.T) {
	is := models.IncomeStatementInput{Revenue: 123_456, COGS: 54_321, Rent: 1_000}
	assert.Equal(t, ComputeIS(is, 0.24), ComputeIS(is, 0.24))
}

func TestComputeBSAutoEquity(t *testing.T) {
	bs := models.BalanceSheetInput{
		Cash: 50_000, AR: 20_000, Inventory: 30_000, OtherCurrentAssets: 5_000,
		PPENet: 100_000, OtherLongAssets: 10_000,
		AP: 15_000, AccruedLiabilities: 5_000, DebtCurrent: 10_000, DebtLong: 60_000,
	}
	got := ComputeBS(bs)
	assert.Equal(t, 105_000.0, got.CurrentAssets)
	assert.Equal(t, 110_000.0, got.LongAssets)
	assert.Equal(t, 215_000.0, got.TotalAssets)
	assert.Equal(t, 30_000.0, got.CurrentLiabilities)
	assert.Equal(t, 60_000.0, got.LongLiabilities)
	assert.Equal(t, 90_000.0, got.TotalLiabilities)
	assert.True(t, got.EquityDerived)
	assert.Equal(t, 125_000.0, got.OwnersEquity)
	// Backed-into equity balances exactly, not just approximately.
	assert.Equal(t, 0.0, got.BalanceCheck)
}

func TestComputeBSUserEquity(t *testing.T) {
	bs := models.BalanceSheetInput{
		Cash: 100_000,
		AP:   20_000,
		OwnersEquity: 70_000, // 10k short: inconsistent manual entry
	}
	got := ComputeBS(bs)
	assert.False(t, got.EquityDerived)
	assert.Equal(t, 70_000.0, got.OwnersEquity)
	assert.Equal(t, 10_000.0, got.BalanceCheck) // reported, not corrected

	bs.OwnersEquity = 80_000
	assert.Equal(t, 0.0, ComputeBS(bs).BalanceCheck)
}

func TestComputeCFSinglePeriod(t *testing.T) {
	// Revenue exactly offsets depreciation so net income is zero.
	m := models.FinancialModel{
		Period:      "TTM",
		IS:          models.IncomeStatementInput{Revenue: 1_000, Depreciation: 1_000},
		BS:          models.BalanceSheetInput{OwnerDistributions: 5_000},
		Assumptions: models.Assumptions{TaxRateDefault: 0.21},
	}
	require.Equal(t, 0.0, ComputeIS(m.IS, 0.21).NetIncome)

	got := ComputeCF(m, nil)
	assert.True(t, got.SinglePeriod)
	assert.Equal(t, 1_000.0, got.CFO)
	assert.Equal(t, 0.0, got.CFI)
	assert.Equal(t, -5_000.0, got.CFF)
	assert.Equal(t, -4_000.0, got.NetChangeCash)
}

func TestComputeCFTwoPeriod(t *testing.T) {
	cur := models.FinancialModel{
		IS: models.IncomeStatementInput{Revenue: 100_000, Depreciation: 2_000},
		BS: models.BalanceSheetInput{
			AR: 15_000, Inventory: 8_000, AP: 6_000,
			PPENet: 50_000, DebtCurrent: 5_000, DebtLong: 20_000,
			OwnerDistributions: 10_000,
		},
		Assumptions: models.Assumptions{TaxRateDefault: 0.21},
	}
	prior := models.FinancialModel{
		BS: models.BalanceSheetInput{
			AR: 10_000, Inventory: 10_000, AP: 4_000,
			PPENet: 45_000, DebtCurrent: 5_000, DebtLong: 25_000,
		},
	}

	got := ComputeCF(cur, &prior)
	assert.False(t, got.SinglePeriod)

	ni := ComputeIS(cur.IS, 0.21).NetIncome
	// deltaWC = -(5000 + -2000) + 2000 = -1000
	assert.InDelta(t, ni+2_000-1_000, got.CFO, 1e-9)
	assert.Equal(t, -5_000.0, got.CFI)            // PP&E grew by 5k
	assert.Equal(t, -5_000.0-10_000.0, got.CFF)   // debt down 5k, distributions 10k
	assert.InDelta(t, got.CFO+got.CFI+got.CFF, got.NetChangeCash, 1e-9)
}

func TestSafeCoercion(t *testing.T) {
	assert.Equal(t, 0.0, safe(models.Amount(math.NaN())))
	assert.Equal(t, 0.0, safe(models.Amount(math.Inf(1))))
	assert.Equal(t, 0.0, safe(models.Amount(math.Inf(-1))))
	assert.Equal(t, 42.5, safe(models.Amount(42.5)))
}

func TestDerivationsNeverNaN(t *testing.T) {
	// Poisoned inputs must not leak NaN into any derived total.
	nan := models.Amount(math.NaN())
	inf := models.Amount(math.Inf(1))

	is := ComputeIS(models.IncomeStatementInput{Revenue: nan, COGS: inf, Taxes: nan}, 0.21)
	assert.False(t, math.IsNaN(is.NetIncome))
	assert.False(t, math.IsNaN(is.Taxes))

	bs := ComputeBS(models.BalanceSheetInput{Cash: nan, OwnersEquity: inf})
	assert.False(t, math.IsNaN(bs.TotalAssets))
	assert.False(t, math.IsNaN(bs.BalanceCheck))

	cf := ComputeCF(models.FinancialModel{
		IS: models.IncomeStatementInput{Depreciation: nan},
		BS: models.BalanceSheetInput{OwnerDistributions: inf},
	}, nil)
	assert.False(t, math.IsNaN(cf.NetChangeCash))
}
