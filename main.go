package main

import (
	"log"
	"time"

	"github.com/Librity/gympoint-back-end/config"
	"github.com/Librity/gympoint-back-end/database"
	routes "github.com/Librity/gympoint-back-end/internal/app/http"
	"github.com/Librity/gympoint-back-end/internal/infra/queue"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()
	database.InitDB()

	q, err := queue.NewRedis(config.REDIS_URL)
	if err != nil {
		log.Fatal("❌ Failed to connect to Redis:", err)
	}
	queue.Default = q

	if config.APP_ENV == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
