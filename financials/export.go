package financials

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Dozy-jeff/sellable/models"
)

// Product name baked into exported filenames.
const product = "Sellable"

type row struct {
	label string
	value any
}

// ExportWorkbook renders the model and its derived values into a three-sheet
// workbook, one sheet per statement, rows in display order. Purely a
// projection: every number is either an input or comes from the Compute
// functions. Identical input yields identical bytes.
func ExportWorkbook(m models.FinancialModel) ([]byte, string, error) {
	isCalc := ComputeIS(m.IS, m.Assumptions.TaxRateDefault)
	bsCalc := ComputeBS(m.BS)
	cfCalc := ComputeCF(m, nil)

	f := excelize.NewFile()
	defer f.Close()

	isRows := []row{
		{"Income Statement", m.Period},
		{"Revenue (Gross)", safe(m.IS.Revenue)},
		{"Returns & Allowances", safe(m.IS.ReturnsAllowances)},
		{"Revenue (Net)", isCalc.RevenueNet},
		{"COGS", safe(m.IS.COGS)},
		{"Gross Profit", isCalc.GrossProfit},
		{"Salaries & Wages", safe(m.IS.SalariesWages)},
		{"Rent", safe(m.IS.Rent)},
		{"Utilities", safe(m.IS.Utilities)},
		{"Insurance", safe(m.IS.Insurance)},
		{"Marketing", safe(m.IS.Marketing)},
		{"Depreciation", safe(m.IS.Depreciation)},
		{"Other Opex", safe(m.IS.OtherOpex)},
		{"EBIT", isCalc.EBIT},
		{"Interest Expense", safe(m.IS.InterestExpense)},
		{"Taxes", isCalc.Taxes},
		{"Net Income", isCalc.NetIncome},
	}
	bsRows := []row{
		{"Balance Sheet", m.Period},
		{"Cash", safe(m.BS.Cash)},
		{"Accounts Receivable", safe(m.BS.AR)},
		{"Inventory", safe(m.BS.Inventory)},
		{"Other Current Assets", safe(m.BS.OtherCurrentAssets)},
		{"PP&E (Net)", safe(m.BS.PPENet)},
		{"Other Long Assets", safe(m.BS.OtherLongAssets)},
		{"Total Assets", bsCalc.TotalAssets},
		{"Accounts Payable", safe(m.BS.AP)},
		{"Accrued Liabilities", safe(m.BS.AccruedLiabilities)},
		{"Current Debt", safe(m.BS.DebtCurrent)},
		{"Long-term Debt", safe(m.BS.DebtLong)},
		{"Total Liabilities", bsCalc.TotalLiabilities},
		{"Owner's Equity", bsCalc.OwnersEquity},
		{"Balance Check (should be 0)", bsCalc.BalanceCheck},
	}
	cfRows := []row{
		{"Cash Flow (Indirect)", m.Period},
		{"CFO", cfCalc.CFO},
		{"CFI", cfCalc.CFI},
		{"CFF", cfCalc.CFF},
		{"Net Change in Cash", cfCalc.NetChangeCash},
	}

	sheets := []struct {
		name string
		rows []row
	}{
		{"Income Statement", isRows},
		{"Balance Sheet", bsRows},
		{"Cash Flow", cfRows},
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return nil, "", err
			}
		} else {
			if _, err := f.NewSheet(s.name); err != nil {
				return nil, "", err
			}
		}
		for r, rw := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetSheetRow(s.name, cell, &[]any{rw.label, rw.value}); err != nil {
				return nil, "", err
			}
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), Filename(m.Period), nil
}

// Filename follows the {product}_{period}_3Statements.xlsx convention.
func Filename(period string) string {
	if period == "" {
		period = "TTM"
	}
	return fmt.Sprintf("%s_%s_3Statements.xlsx", product, period)
}
