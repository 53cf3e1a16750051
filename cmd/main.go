package main

import (
	"os"

	"github.com/Fayets/NutriFA/config"
	"github.com/Fayets/NutriFA/logger"
	"github.com/Fayets/NutriFA/routes"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Sync()

	config.InitDB()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	logger.Info("starting server", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
