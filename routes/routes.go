package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Dozy-jeff/sellable/config"
	"github.com/Dozy-jeff/sellable/controllers"
	"github.com/Dozy-jeff/sellable/middlewares"
	"github.com/Dozy-jeff/sellable/store"
)

// Stores bundles the persistence ports handed to the handlers.
type Stores struct {
	Users      store.UserStore
	Intakes    store.IntakeStore
	Progress   store.ProgressStore
	Financials store.FinancialStore
	Listings   store.ListingStore
}

func Register(r *gin.Engine, cfg config.Config, st Stores, log zerolog.Logger) {
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", controllers.Register(cfg, st.Users))
		auth.POST("/login", controllers.Login(cfg, st.Users))

		priv := api.Group("/")
		priv.Use(middlewares.Auth(cfg.JWTSecret))
		priv.GET("me", controllers.Me(st.Users))

		// Seller intake and readiness
		priv.POST("intake/seller", controllers.SubmitIntake(st.Intakes, st.Progress))
		priv.GET("intake/seller", controllers.GetIntake(st.Intakes))
		priv.GET("readiness", controllers.GetReadiness(st.Intakes, st.Progress))

		// Curriculum and progress
		priv.GET("steps", controllers.GetSteps())
		priv.GET("progress", controllers.GetProgress(st.Progress))
		priv.PUT("progress", controllers.PutProgress(st.Progress))
		priv.POST("progress/articles/:id/complete", controllers.CompleteArticle(st.Intakes, st.Progress))
		priv.POST("progress/tasks/:id/complete", controllers.CompleteTask(st.Intakes, st.Progress))

		// Three-statement financial builder
		priv.GET("financials/model", controllers.GetFinancialModel(st.Financials))
		priv.PUT("financials/model", controllers.PutFinancialModel(st.Financials))
		priv.DELETE("financials/model", controllers.ResetFinancialModel(st.Financials))
		priv.GET("financials/derived", controllers.GetDerivedFinancials(st.Financials))
		priv.GET("financials/export", controllers.ExportFinancials(st.Financials))

		// Marketplace
		priv.GET("listings", controllers.ListListings(st.Listings))
		priv.GET("listings/:id", controllers.GetListing(st.Listings))
		priv.POST("publish", controllers.Publish(st.Intakes, st.Listings))

		// Guidance and supporting content
		priv.POST("assist", controllers.Assist(cfg, log))
		priv.GET("videos", controllers.ListVideos())
		priv.POST("mentors/request", controllers.RequestMentor())
		priv.GET("dataroom", controllers.DataRoomManifest(st.Intakes, st.Progress, st.Financials))
	}
}
