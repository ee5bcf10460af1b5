package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Axocidue/SportsStore/pkg/logger"
)

func main() {
	// .env is for development/local; production uses system env vars
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	env := getEnv("APP_ENV", "development")
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Init(env)

	Serve()
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
