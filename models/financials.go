package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a currency value that tolerates sloppy input. JSON numbers,
// numeric strings, null and garbage all decode; anything that is not a finite
// number becomes 0. Derivations must never see NaN or Inf.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			*a = 0
			return nil
		}
		s = strings.TrimSpace(str)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

type IncomeStatementInput struct {
	Revenue           Amount `json:"revenue"`
	ReturnsAllowances Amount `json:"returnsAllowances"`
	COGS              Amount `json:"cogs"`
	SalariesWages     Amount `json:"salariesWages"`
	Rent              Amount `json:"rent"`
	Utilities         Amount `json:"utilities"`
	Insurance         Amount `json:"insurance"`
	Marketing         Amount `json:"marketing"`
	Depreciation      Amount `json:"depreciation"`
	OtherOpex         Amount `json:"otherOpex"`
	InterestExpense   Amount `json:"interestExpense"`
	Taxes             Amount `json:"taxes"` // 0 means estimate from the default rate
}

type BalanceSheetInput struct {
	// Assets
	Cash               Amount `json:"cash"`
	AR                 Amount `json:"ar"`
	Inventory          Amount `json:"inventory"`
	OtherCurrentAssets Amount `json:"otherCurrentAssets"`
	PPENet             Amount `json:"ppeNet"`
	OtherLongAssets    Amount `json:"otherLongAssets"`
	// Liabilities
	AP                 Amount `json:"ap"`
	AccruedLiabilities Amount `json:"accruedLiabilities"`
	DebtCurrent        Amount `json:"debtCurrent"`
	DebtLong           Amount `json:"debtLong"`
	// Equity
	OwnersEquity       Amount `json:"ownersEquity"` // 0 means back into it
	OwnerDistributions Amount `json:"ownerDistributions"`
}

type Assumptions struct {
	AccrualVsCash       string  `json:"accrualVsCash"` // 'accrual' or 'cash'
	OwnerSalaryIncluded bool    `json:"ownerSalaryIncluded"`
	TaxRateDefault      float64 `json:"taxRateDefault"` // e.g., 0.21
}

// FinancialModel is the three-statement input record, persisted whole as the
// user edits it and fed to the derivation functions on every change.
type FinancialModel struct {
	Period      string               `json:"period"` // e.g., 'TTM', 'FY2024'
	IS          IncomeStatementInput `json:"is"`
	BS          BalanceSheetInput    `json:"bs"`
	Assumptions Assumptions          `json:"assumptions"`
}

// EmptyFinancialModel is the starting state: every line zero, accrual books,
// 21% default tax rate.
func EmptyFinancialModel() FinancialModel {
	return FinancialModel{
		Period: "TTM",
		Assumptions: Assumptions{
			AccrualVsCash:       "accrual",
			OwnerSalaryIncluded: true,
			TaxRateDefault:      0.21,
		},
	}
}
