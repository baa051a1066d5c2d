// Package financials derives the three linked statements from a
// FinancialModel and serializes them to a workbook. All derivations are pure
// and total: invalid numeric input is coerced to zero at every accessor, so
// no formula ever sees NaN.
package financials

import (
	"math"

	"github.com/Dozy-jeff/sellable/models"
)

// safe coerces any non-finite value to 0 before it enters a formula.
func safe(a models.Amount) float64 {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

type IncomeStatementDerived struct {
	RevenueNet  float64 `json:"revenueNet"`
	GrossProfit float64 `json:"grossProfit"`
	Opex        float64 `json:"opex"`
	EBIT        float64 `json:"ebit"`
	EBT         float64 `json:"ebt"`
	Taxes       float64 `json:"taxes"`
	NetIncome   float64 `json:"netIncome"`
}

// ComputeIS derives the income statement. A user-supplied positive tax figure
// wins; otherwise taxes are estimated as max(0, EBT x default rate), so they
// are never negative.
func ComputeIS(is models.IncomeStatementInput, taxRateDefault float64) IncomeStatementDerived {
	revenueNet := safe(is.Revenue) - safe(is.ReturnsAllowances)
	grossProfit := revenueNet - safe(is.COGS)
	opex := safe(is.SalariesWages) + safe(is.Rent) + safe(is.Utilities) + safe(is.Insurance) +
		safe(is.Marketing) + safe(is.Depreciation) + safe(is.OtherOpex)
	ebit := grossProfit - opex
	ebt := ebit - safe(is.InterestExpense)
	taxes := safe(is.Taxes)
	if taxes <= 0 {
		taxes = math.Max(0, ebt*taxRateDefault)
	}
	netIncome := ebt - taxes
	return IncomeStatementDerived{
		RevenueNet:  revenueNet,
		GrossProfit: grossProfit,
		Opex:        opex,
		EBIT:        ebit,
		EBT:         ebt,
		Taxes:       taxes,
		NetIncome:   netIncome,
	}
}

type BalanceSheetDerived struct {
	CurrentAssets      float64 `json:"currentAssets"`
	LongAssets         float64 `json:"longAssets"`
	TotalAssets        float64 `json:"totalAssets"`
	CurrentLiabilities float64 `json:"currentLiab"`
	LongLiabilities    float64 `json:"longLiab"`
	TotalLiabilities   float64 `json:"totalLiabilities"`
	OwnersEquity       float64 `json:"ownersEquity"`
	// BalanceCheck is totalAssets - (totalLiabilities + ownersEquity). Zero by
	// construction when equity was backed into; a genuine diagnostic when the
	// user supplied equity. Surfaced to the caller, never "corrected".
	BalanceCheck  float64 `json:"balanceCheck"`
	EquityDerived bool    `json:"equityDerived"`
}

// ComputeBS derives the balance sheet. If the user left owner's equity at
// zero it is backed into via the accounting identity.
func ComputeBS(bs models.BalanceSheetInput) BalanceSheetDerived {
	currentAssets := safe(bs.Cash) + safe(bs.AR) + safe(bs.Inventory) + safe(bs.OtherCurrentAssets)
	longAssets := safe(bs.PPENet) + safe(bs.OtherLongAssets)
	totalAssets := currentAssets + longAssets

	currentLiab := safe(bs.AP) + safe(bs.AccruedLiabilities) + safe(bs.DebtCurrent)
	longLiab := safe(bs.DebtLong)
	totalLiabilities := currentLiab + longLiab

	ownersEquity := safe(bs.OwnersEquity)
	derived := ownersEquity == 0
	if derived {
		ownersEquity = totalAssets - totalLiabilities
	}
	balanceCheck := totalAssets - (totalLiabilities + ownersEquity)

	return BalanceSheetDerived{
		CurrentAssets:      currentAssets,
		LongAssets:         longAssets,
		TotalAssets:        totalAssets,
		CurrentLiabilities: currentLiab,
		LongLiabilities:    longLiab,
		TotalLiabilities:   totalLiabilities,
		OwnersEquity:       ownersEquity,
		BalanceCheck:       balanceCheck,
		EquityDerived:      derived,
	}
}

// BalanceTolerance is how far BalanceCheck may drift from zero on
// user-supplied equity before the entry is flagged as inconsistent.
const BalanceTolerance = 0.01

type CashFlowDerived struct {
	CFO           float64 `json:"cfo"`
	CFI           float64 `json:"cfi"`
	CFF           float64 `json:"cff"`
	NetChangeCash float64 `json:"netChangeCash"`
	// SinglePeriod marks the degraded fallback: without a prior-period balance
	// sheet, working-capital and capex deltas are unknowable and treated as
	// zero. The two-period path is the real indirect-method cash flow.
	SinglePeriod bool `json:"singlePeriod"`
}

// ComputeCF derives the indirect-method cash flow statement. With a prior
// model, working capital, capex and debt deltas are current minus prior.
// Without one the statement is an approximation: CFO is net income plus
// depreciation, CFI is zero, CFF is owner distributions only.
func ComputeCF(m models.FinancialModel, prior *models.FinancialModel) CashFlowDerived {
	isCalc := ComputeIS(m.IS, m.Assumptions.TaxRateDefault)
	nonCash := safe(m.IS.Depreciation)

	if prior == nil {
		cfo := isCalc.NetIncome + nonCash
		cfi := 0.0
		cff := -safe(m.BS.OwnerDistributions)
		return CashFlowDerived{
			CFO:           cfo,
			CFI:           cfi,
			CFF:           cff,
			NetChangeCash: cfo + cfi + cff,
			SinglePeriod:  true,
		}
	}

	deltaAR := safe(m.BS.AR) - safe(prior.BS.AR)
	deltaInv := safe(m.BS.Inventory) - safe(prior.BS.Inventory)
	deltaAP := safe(m.BS.AP) - safe(prior.BS.AP)
	deltaWC := -(deltaAR + deltaInv) + deltaAP
	cfo := isCalc.NetIncome + nonCash + deltaWC

	cfi := -(safe(m.BS.PPENet) - safe(prior.BS.PPENet))

	deltaDebt := (safe(m.BS.DebtCurrent) + safe(m.BS.DebtLong)) -
		(safe(prior.BS.DebtCurrent) + safe(prior.BS.DebtLong))
	cff := deltaDebt - safe(m.BS.OwnerDistributions)

	return CashFlowDerived{
		CFO:           cfo,
		CFI:           cfi,
		CFF:           cff,
		NetChangeCash: cfo + cfi + cff,
		SinglePeriod:  false,
	}
}
