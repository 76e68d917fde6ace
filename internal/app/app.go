package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/loydmilligan/leadoff/docs"
	"github.com/loydmilligan/leadoff/internal/config"
	"github.com/loydmilligan/leadoff/internal/database"
	"github.com/loydmilligan/leadoff/internal/handlers"
	"github.com/loydmilligan/leadoff/internal/jobs"
	"github.com/loydmilligan/leadoff/internal/logger"
	"github.com/loydmilligan/leadoff/internal/repositories"
	"github.com/loydmilligan/leadoff/internal/routes"
	"github.com/loydmilligan/leadoff/internal/services"
)

func Run() {
	cfg := config.LoadConfig()
	log := logger.New(cfg.Log.Level)

	// === DB ===
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		log.Error("database connection failed", "error", err)
		panic(err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("database close failed", "error", err)
		}
	}()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Error("migrations failed", "error", err)
		panic(err)
	}

	store := repositories.NewStore(db)

	// === Services ===
	calc := services.NewFollowUpCalculator(log)
	leadService := services.NewLeadService(store, calc, log)
	actionService := services.NewLeadActionService(store, log)
	activityService := services.NewActivityService(store, log)
	organizationService := services.NewOrganizationService(store, log)
	demoService := services.NewDemoService(store, log)
	proposalService := services.NewProposalService(store, log)
	lostReasonService := services.NewLostReasonService(store, log)
	archiveService := services.NewArchiveService(store, log)
	plannerService := services.NewPlannerService(store, log)

	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	telegramService := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID, log)
	reminderService := services.NewReminderService(leadService, emailService, telegramService, cfg.Reminders.Recipient, log)

	// === Jobs ===
	if cfg.Reminders.Enabled {
		scheduler := jobs.NewScheduler(reminderService, cfg.Reminders.Schedule, log)
		if err := scheduler.Start(); err != nil {
			log.Error("scheduler start failed", "error", err)
			panic(err)
		}
		defer scheduler.Stop()
	}

	// === Handlers ===
	leadHandler := handlers.NewLeadHandler(leadService)
	actionHandler := handlers.NewLeadActionHandler(actionService)
	activityHandler := handlers.NewActivityHandler(activityService)
	recordsHandler := handlers.NewLeadRecordsHandler(organizationService, demoService, proposalService, lostReasonService)
	archiveHandler := handlers.NewArchiveHandler(archiveService)
	plannerHandler := handlers.NewPlannerHandler(plannerService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		leadHandler,
		actionHandler,
		activityHandler,
		recordsHandler,
		archiveHandler,
		plannerHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("server listening", "addr", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Error("server stopped", "error", err)
		panic(err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
