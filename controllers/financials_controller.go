package controllers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dozy-jeff/sellable/financials"
	"github.com/Dozy-jeff/sellable/models"
	"github.com/Dozy-jeff/sellable/store"
)

// GetFinancialModel returns the stored model, or the empty starting model if
// the seller has not saved one yet.
func GetFinancialModel(fin store.FinancialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		m, err := fin.GetModel(c.Request.Context(), uid)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, models.EmptyFinancialModel())
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

// PutFinancialModel replaces the stored model. The client debounces edits;
// each save is whole-document, last write wins.
func PutFinancialModel(fin store.FinancialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var m models.FinancialModel
		if err := c.ShouldBindJSON(&m); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if m.Period == "" {
			m.Period = "TTM"
		}
		if m.Assumptions.AccrualVsCash != "cash" {
			m.Assumptions.AccrualVsCash = "accrual"
		}
		if m.Assumptions.TaxRateDefault <= 0 || m.Assumptions.TaxRateDefault >= 1 {
			m.Assumptions.TaxRateDefault = 0.21
		}
		uid := c.GetInt64("user_id")
		if err := fin.PutModel(c.Request.Context(), uid, m); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "saved", "derived": deriveAll(m)})
	}
}

// ResetFinancialModel deletes the stored model.
func ResetFinancialModel(fin store.FinancialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		if err := fin.DeleteModel(c.Request.Context(), uid); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "reset"})
	}
}

// GetDerivedFinancials recomputes all three statements from the stored model.
func GetDerivedFinancials(fin store.FinancialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		m, err := fin.GetModel(c.Request.Context(), uid)
		if errors.Is(err, store.ErrNotFound) {
			empty := models.EmptyFinancialModel()
			m = &empty
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, deriveAll(*m))
	}
}

// ExportFinancials streams the three-statement workbook as an attachment.
func ExportFinancials(fin store.FinancialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		m, err := fin.GetModel(c.Request.Context(), uid)
		if errors.Is(err, store.ErrNotFound) {
			empty := models.EmptyFinancialModel()
			m = &empty
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		data, fname, err := financials.ExportWorkbook(*m)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "export error"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+fname+`"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	}
}

func deriveAll(m models.FinancialModel) gin.H {
	isCalc := financials.ComputeIS(m.IS, m.Assumptions.TaxRateDefault)
	bsCalc := financials.ComputeBS(m.BS)
	cfCalc := financials.ComputeCF(m, nil)

	// A non-zero residual on user-supplied equity means inconsistent manual
	// entry; it is reported, never corrected.
	warning := ""
	if !bsCalc.EquityDerived && math.Abs(bsCalc.BalanceCheck) > financials.BalanceTolerance {
		warning = "balance sheet does not balance: assets != liabilities + equity"
	}

	out := gin.H{
		"incomeStatement": isCalc,
		"balanceSheet":    bsCalc,
		"cashFlow":        cfCalc,
	}
	if warning != "" {
		out["warning"] = warning
	}
	return out
}
