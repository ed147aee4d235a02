package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Tareq669/bot-sub000/docs"
	"github.com/Tareq669/bot-sub000/internal/config"
	"github.com/Tareq669/bot-sub000/internal/database"
	"github.com/Tareq669/bot-sub000/internal/handlers"
	"github.com/Tareq669/bot-sub000/internal/logging"
	"github.com/Tareq669/bot-sub000/internal/middleware"
	"github.com/Tareq669/bot-sub000/internal/services"
	"github.com/Tareq669/bot-sub000/internal/telegram"
	"github.com/Tareq669/bot-sub000/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Group Challenge Bot API
// @version         1.0
// @description     Admin API for the timed group challenge game
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	logging.BootstrapLogger()
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	rdb := database.ConnectRedis(cfg)

	hub := ws.NewHub()
	matcher := services.NewMatcher()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	groupService := services.NewGroupService(db)
	scoreService := services.NewScoreService(db)
	teamService := services.NewTeamService(db, matcher)
	tournamentService := services.NewTournamentService(db, teamService, scoreService)
	walletService := services.NewWalletService(db)
	awardService := services.NewAwardService(scoreService, teamService, tournamentService, walletService)

	tgClient := telegram.NewClient(cfg.BotToken)
	roundManager := services.NewRoundManager(
		tgClient, groupService, matcher, awardService,
		time.Duration(cfg.RoundCountdownSec)*time.Second,
	)
	roundManager.SetEventSink(hub)
	gameService := services.NewGameService(roundManager, groupService)

	scheduler := services.NewScheduler(groupService, roundManager, rdb,
		time.Duration(cfg.SchedulerTickSec)*time.Second)
	scheduler.Start()

	updateHandler := telegram.NewUpdateHandler(
		tgClient, gameService, roundManager, groupService,
		scoreService, teamService, tournamentService,
	)
	bot := telegram.NewBot(cfg.BotToken, cfg.WebhookBaseURL, cfg.WebhookSecret, updateHandler, tgClient)

	authHandler := handlers.NewAuthHandler(authService)
	groupHandler := handlers.NewGroupHandler(groupService, roundManager, gameService)
	leaderboardHandler := handlers.NewLeaderboardHandler(scoreService)
	teamHandler := handlers.NewTeamHandler(teamService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Bot-API-Key"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/chat/:chat_id", wsHandler.HandleWebSocket)
	r.POST("/webhook/bot/:secret", bot.HandleWebhook)

	if cfg.BotToken != "" && cfg.WebhookBaseURL != "" {
		if err := bot.Start(); err != nil {
			logging.Log.Fatalf("failed to start bot: %v", err)
		}
	} else {
		logging.Log.Warn("BOT_TOKEN or WEBHOOK_BASE_URL not set, bot disabled")
	}

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		groups := api.Group("/groups")
		groups.Use(middleware.JWTAuth(authService))
		{
			groups.GET("/:chat_id/settings", groupHandler.GetSettings)
			groups.PUT("/:chat_id/settings", groupHandler.UpdateSettings)
			groups.POST("/:chat_id/rounds", groupHandler.StartRound)
			groups.GET("/:chat_id/rounds/active", groupHandler.GetActiveRound)
			groups.DELETE("/:chat_id/rounds/active", groupHandler.CancelRound)
			groups.GET("/:chat_id/leaderboard", leaderboardHandler.GetLeaderboard)
			groups.GET("/:chat_id/teams", teamHandler.ListTeams)
			groups.GET("/:chat_id/teams/:name", teamHandler.GetTeam)
			groups.GET("/:chat_id/tournament", tournamentHandler.Status)
			groups.POST("/:chat_id/tournament/start", tournamentHandler.Start)
			groups.POST("/:chat_id/tournament/end", tournamentHandler.End)
			groups.PUT("/:chat_id/tournament/rewards", tournamentHandler.SetRewards)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		logging.Log.Infof("server starting on :%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Log.Info("shutting down")

	scheduler.Stop()
	roundManager.CancelAll()
	if cfg.BotToken != "" && cfg.WebhookBaseURL != "" {
		bot.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Warnf("server shutdown: %v", err)
	}
}
