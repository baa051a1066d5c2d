package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Dozy-jeff/sellable/models"
	"github.com/Dozy-jeff/sellable/store"
	"github.com/Dozy-jeff/sellable/utils"
)

type PublishRequest struct {
	ListingID string `json:"listingId"`
}

// Publish builds a marketplace listing from the seller's stored intake and
// readiness result. Re-publishing updates the same listing in place.
func Publish(intakes store.IntakeStore, listings store.ListingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PublishRequest
		_ = c.ShouldBindJSON(&req)
		uid := c.GetInt64("user_id")
		ctx := c.Request.Context()

		intake, err := intakes.GetIntake(ctx, uid)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "submit an intake before publishing"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		result, err := intakes.GetReadiness(ctx, uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		id := req.ListingID
		if id == "" {
			id = uuid.NewString()
		}
		l := listingFromIntake(id, uid, *intake, *result)
		if err := listings.PublishListing(ctx, l); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "url": "/buyer?published=" + l.ID})
	}
}

// ListListings returns published listings filtered and sorted by query params:
// search, industry, model (comma-separated), minRevenue/maxRevenue,
// minEbitda/maxEbitda, minReadiness, sort=readiness|revenue|ebitda.
func ListListings(listings store.ListingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := listings.Listings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		f := filterFromQuery(c)
		out := filterListings(all, f)
		sortListings(out, c.DefaultQuery("sort", "readiness"))
		c.JSON(http.StatusOK, gin.H{"items": out, "count": len(out)})
	}
}

func GetListing(listings store.ListingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		l, err := listings.ListingByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, l)
	}
}

func listingFromIntake(id string, uid int64, intake models.SellerIntake, result models.ReadinessResult) models.Listing {
	ebitda := 0.0
	if intake.Ebitda != nil {
		ebitda = *intake.Ebitda
	}
	highlights := []string{
		fmt.Sprintf("%d%% readiness score", result.Readiness),
		utils.ReadinessLabel(result.Readiness),
	}
	if intake.Revenue > 0 {
		highlights = append(highlights, utils.FormatMoney(intake.Revenue)+" TTM revenue")
	}
	if intake.YearsOperating > 0 {
		highlights = append(highlights, fmt.Sprintf("%d years operating", intake.YearsOperating))
	}
	if len(intake.Systems) > 0 {
		highlights = append(highlights, "Runs on "+strings.Join(intake.Systems, ", "))
	}
	systems := intake.Systems
	if systems == nil {
		systems = []string{}
	}
	return models.Listing{
		ID:             id,
		UserID:         uid,
		Name:           intake.CompanyName,
		Location:       intake.Location,
		Industry:       intake.Industry,
		Model:          intake.Model,
		RevenueTTM:     intake.Revenue,
		EbitdaTTM:      ebitda,
		Employees:      intake.Employees,
		YearsOperating: intake.YearsOperating,
		Systems:        systems,
		Readiness:      result.Readiness,
		Highlights:     highlights,
	}
}

type listingFilter struct {
	search       string
	industries   []string
	bizModels    []string
	minRevenue   float64
	maxRevenue   float64
	minEbitda    float64
	maxEbitda    float64
	minReadiness int
}

func filterFromQuery(c *gin.Context) listingFilter {
	f := listingFilter{
		search:     strings.ToLower(strings.TrimSpace(c.Query("search"))),
		industries: splitFilter(c.Query("industry")),
		bizModels:  splitFilter(c.Query("model")),
		maxRevenue: -1,
		maxEbitda:  -1,
	}
	f.minRevenue, _ = strconv.ParseFloat(c.DefaultQuery("minRevenue", "0"), 64)
	if v := c.Query("maxRevenue"); v != "" {
		f.maxRevenue, _ = strconv.ParseFloat(v, 64)
	}
	f.minEbitda, _ = strconv.ParseFloat(c.DefaultQuery("minEbitda", "0"), 64)
	if v := c.Query("maxEbitda"); v != "" {
		f.maxEbitda, _ = strconv.ParseFloat(v, 64)
	}
	f.minReadiness, _ = strconv.Atoi(c.DefaultQuery("minReadiness", "0"))
	return f
}

func splitFilter(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matchListing(l models.Listing, f listingFilter) bool {
	if f.search != "" {
		hay := strings.ToLower(l.Name + " " + l.Location + " " + l.Industry + " " + strings.Join(l.Systems, " "))
		if !strings.Contains(hay, f.search) {
			return false
		}
	}
	if len(f.industries) > 0 && !contains(f.industries, l.Industry) {
		return false
	}
	if len(f.bizModels) > 0 && !contains(f.bizModels, l.Model) {
		return false
	}
	if l.RevenueTTM < f.minRevenue {
		return false
	}
	if f.maxRevenue >= 0 && l.RevenueTTM > f.maxRevenue {
		return false
	}
	if l.EbitdaTTM < f.minEbitda {
		return false
	}
	if f.maxEbitda >= 0 && l.EbitdaTTM > f.maxEbitda {
		return false
	}
	if l.Readiness < f.minReadiness {
		return false
	}
	return true
}

func filterListings(all []models.Listing, f listingFilter) []models.Listing {
	out := make([]models.Listing, 0, len(all))
	for _, l := range all {
		if matchListing(l, f) {
			out = append(out, l)
		}
	}
	return out
}

func sortListings(ls []models.Listing, by string) {
	sort.SliceStable(ls, func(i, j int) bool {
		switch by {
		case "revenue":
			return ls[i].RevenueTTM > ls[j].RevenueTTM
		case "ebitda":
			return ls[i].EbitdaTTM > ls[j].EbitdaTTM
		default:
			return ls[i].Readiness > ls[j].Readiness
		}
	})
}

func contains(ss []string, v string) bool {
	for _, s := range ss {
		if s == v {
			return true
		}
	}
	return false
}
