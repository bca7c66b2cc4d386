// @title           CreatorOps Backend API
// @version         1.0.0
// @description     Backend API for the content creator operations dashboard. Covers the idea lifecycle, production pipeline, planner calendar, inspirations, brand CRM, revenue ledger, analytics, email hub and settings.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"
	"net/url"

	"creatorops-backend/docs"
	"creatorops-backend/internal/config"
	"creatorops-backend/internal/database"
	"creatorops-backend/internal/handlers"
	"creatorops-backend/internal/logger"
	"creatorops-backend/internal/mailer"
	"creatorops-backend/internal/middleware"
	"creatorops-backend/internal/services"
	"creatorops-backend/internal/supabase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Close()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	if cfg.DatabaseURL == "" {
		zlog.Warnw("DATABASE_URL not set, migrations will be skipped")
	}

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		zlog.Fatalw("failed to initialize supabase client", "error", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
	if err != nil {
		zlog.Fatalw("failed to initialize storage client", "error", err)
	}

	realtimeClient := supabase.NewRealtimeClient(supabaseClient.Supabase)

	var dbClient *supabase.DatabaseClient
	if cfg.DatabaseURL != "" {
		dbClient, err = supabase.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			zlog.Warnw("failed to initialize database client, database operations will be limited", "error", err)
		} else {
			defer dbClient.Close()

			migrator, err := database.NewMigrator(cfg.DatabaseURL, zlog)
			if err != nil {
				zlog.Warnw("failed to initialize migrator", "error", err)
			} else {
				defer migrator.Close()
				if err := migrator.Run(); err != nil {
					zlog.Warnw("migration failed", "error", err)
				} else {
					zlog.Infow("migrations completed")
				}
			}
		}
	}

	mailerClient := mailer.NewClient(cfg.MailerAPIBaseURL, cfg.MailerAPIKey, cfg.MailerFrom)

	// Services (only when the database is reachable)
	var schedulingService *services.SchedulingService
	var analyticsService *services.AnalyticsService
	var conversionService *services.ConversionService
	if dbClient != nil {
		schedulingService = services.NewSchedulingService(dbClient, realtimeClient, zlog)
		analyticsService = services.NewAnalyticsService(dbClient, zlog)
		conversionService = services.NewConversionService(dbClient, zlog)

		reconciler := services.NewReconciler(dbClient, zlog, cfg.ReconcilerRepair)
		cronRunner, err := reconciler.Start(cfg.ReconcilerSchedule)
		if err != nil {
			zlog.Warnw("failed to start reconciler", "schedule", cfg.ReconcilerSchedule, "error", err)
		} else {
			defer cronRunner.Stop()
		}
	}

	ideasHandler := handlers.NewIdeasHandler(dbClient, schedulingService)
	scriptsHandler := handlers.NewScriptsHandler(dbClient, storageClient)
	productionHandler := handlers.NewProductionHandler(dbClient, schedulingService)
	plannerHandler := handlers.NewPlannerHandler(dbClient, schedulingService)
	inspirationsHandler := handlers.NewInspirationsHandler(dbClient, conversionService)
	crmHandler := handlers.NewCRMHandler(dbClient)
	revenueHandler := handlers.NewRevenueHandler(dbClient, analyticsService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	emailsHandler := handlers.NewEmailsHandler(dbClient, mailerClient, zlog)
	settingsHandler := handlers.NewSettingsHandler(dbClient)
	dashboardHandler := handlers.NewDashboardHandler(dbClient)
	webhookHandler := handlers.NewWebhookHandler(cfg, dbClient, zlog)

	router := gin.Default()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	// Ideas
	api.POST("/ideas", ideasHandler.CreateIdea)
	api.GET("/ideas", ideasHandler.ListIdeas)
	api.GET("/ideas/:idea_id", ideasHandler.GetIdea)
	api.PUT("/ideas/:idea_id", ideasHandler.UpdateIdea)
	api.DELETE("/ideas/:idea_id", ideasHandler.DeleteIdea)
	api.POST("/ideas/:idea_id/advance", ideasHandler.AdvanceStatus)
	api.POST("/ideas/:idea_id/status", ideasHandler.JumpStatus)

	// Script blocks and b-roll
	api.POST("/ideas/:idea_id/blocks", scriptsHandler.CreateBlock)
	api.GET("/ideas/:idea_id/blocks", scriptsHandler.ListBlocks)
	api.PUT("/ideas/:idea_id/blocks/:block_id", scriptsHandler.UpdateBlock)
	api.DELETE("/ideas/:idea_id/blocks/:block_id", scriptsHandler.DeleteBlock)
	api.POST("/ideas/:idea_id/broll", scriptsHandler.CreateBroll)
	api.GET("/ideas/:idea_id/broll", scriptsHandler.ListBroll)
	api.PUT("/ideas/:idea_id/broll/:broll_id", scriptsHandler.UpdateBroll)
	api.POST("/ideas/:idea_id/broll/:broll_id/toggle", scriptsHandler.ToggleBroll)
	api.POST("/ideas/:idea_id/broll/:broll_id/upload", scriptsHandler.UploadBroll)
	api.DELETE("/ideas/:idea_id/broll/:broll_id", scriptsHandler.DeleteBroll)

	// Production
	api.GET("/production/ideas", productionHandler.ListIdeas)
	api.POST("/production/ideas/:idea_id/schedule-filming", productionHandler.ScheduleFilming)
	api.POST("/production/ideas/:idea_id/mark-filmed", productionHandler.MarkFilmed)
	api.POST("/production/ideas/:idea_id/move-to-editing", productionHandler.MoveToEditing)
	api.POST("/production/ideas/:idea_id/schedule-post", productionHandler.SchedulePost)

	// Planner
	api.GET("/planner/items", plannerHandler.ListItems)
	api.POST("/planner/items", plannerHandler.CreateItem)
	api.POST("/planner/drop", plannerHandler.DropIdea)
	api.DELETE("/planner/items/:item_id", plannerHandler.DeleteItem)
	api.GET("/planner/unscheduled", plannerHandler.ListUnscheduled)

	// Inspirations
	api.POST("/inspirations", inspirationsHandler.Create)
	api.GET("/inspirations", inspirationsHandler.List)
	api.PUT("/inspirations/:inspiration_id", inspirationsHandler.Update)
	api.POST("/inspirations/:inspiration_id/convert", inspirationsHandler.Convert)
	api.DELETE("/inspirations/:inspiration_id", inspirationsHandler.Delete)

	// CRM
	api.POST("/brands", crmHandler.CreateBrand)
	api.GET("/brands", crmHandler.ListBrands)
	api.PUT("/brands/:brand_id", crmHandler.UpdateBrand)
	api.DELETE("/brands/:brand_id", crmHandler.DeleteBrand)
	api.POST("/deals", crmHandler.CreateDeal)
	api.GET("/deals", crmHandler.ListDeals)
	api.PUT("/deals/:deal_id", crmHandler.UpdateDeal)
	api.POST("/deals/:deal_id/status", crmHandler.SetDealStatus)
	api.DELETE("/deals/:deal_id", crmHandler.DeleteDeal)
	api.GET("/crm/pipeline", crmHandler.Pipeline)

	// Revenue and analytics
	api.POST("/revenues", revenueHandler.Create)
	api.GET("/revenues", revenueHandler.List)
	api.GET("/revenue/summary", revenueHandler.Summary)
	api.DELETE("/revenues/:revenue_id", revenueHandler.Delete)
	api.GET("/analytics/overview", analyticsHandler.Overview)

	// Email hub
	api.POST("/emails", emailsHandler.Create)
	api.GET("/emails", emailsHandler.List)
	api.GET("/emails/:email_id", emailsHandler.Get)
	api.POST("/emails/:email_id/status", emailsHandler.SetStatus)
	api.POST("/emails/:email_id/reply", emailsHandler.Reply)
	api.POST("/emails/:email_id/convert-to-inspiration", emailsHandler.ConvertToInspiration)
	api.DELETE("/emails/:email_id", emailsHandler.Delete)

	// Settings
	api.POST("/settings/pillars", settingsHandler.CreatePillar)
	api.GET("/settings/pillars", settingsHandler.ListPillars)
	api.DELETE("/settings/pillars/:pillar_id", settingsHandler.DeletePillar)
	for _, taxonomy := range []string{"categories", "content_types", "filming_setups"} {
		api.POST("/settings/"+taxonomy, settingsHandler.CreateTaxonomy(taxonomy))
		api.GET("/settings/"+taxonomy, settingsHandler.ListTaxonomy(taxonomy))
		api.DELETE("/settings/"+taxonomy+"/:id", settingsHandler.DeleteTaxonomy(taxonomy))
	}

	// Dashboard
	api.GET("/dashboard/overview", dashboardHandler.Overview)

	// Webhook (no JWT, shared-token verified)
	router.POST("/api/v1/webhooks/payments", webhookHandler.HandlePayments)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	zlog.Infow("server starting", "port", port, "environment", cfg.Environment)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		zlog.Fatalw("server failed", "error", err)
	}
}
