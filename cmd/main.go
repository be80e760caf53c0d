package main

import (
	"database/sql"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/config"
	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/events"
	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/handler"
	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/middleware"
	redisclient "github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/redis"
	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/repository"
	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/service"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Database connection (write store)
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	// Redis connection (message view cache + event streams)
	redis, err := redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	publisher := events.NewPublisher(redis.Client)

	accountRepo := repository.NewAccountRepository(db)
	messageWriteRepo := repository.NewMessageWriteRepository(db)
	messageReadRepo := repository.NewMessageReadRepository(db, redis.Client)

	accountSvc := service.NewAccountService(accountRepo, publisher)
	messageSvc := service.NewMessageService(messageWriteRepo, messageReadRepo, accountSvc, publisher)

	accountHandler := handler.NewAccountHandler(accountSvc)
	messageHandler := handler.NewMessageHandler(messageSvc, messageSvc)

	// Setup router
	router := gin.Default()
	router.Use(middleware.LoggingMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.POST("/register", accountHandler.Register)
	router.POST("/login", accountHandler.Login)

	router.POST("/messages", messageHandler.CreateMessage)
	router.GET("/messages", messageHandler.ListMessages)
	router.GET("/messages/:message_id", messageHandler.GetMessage)
	router.DELETE("/messages/:message_id", messageHandler.DeleteMessage)
	router.PATCH("/messages/:message_id", messageHandler.UpdateMessage)
	router.GET("/accounts/:account_id/messages", messageHandler.ListMessagesByAccount)

	log.Printf("Social media service starting on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
