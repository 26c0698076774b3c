package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/venkatakrishna06/restaurant-pos/config"
	"github.com/venkatakrishna06/restaurant-pos/mockapi"
	"github.com/venkatakrishna06/restaurant-pos/utils"
)

func main() {
	utils.InitLogger()

	cfg := config.Load()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := cfg.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	server, err := mockapi.NewServer(db)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to set up server: %v", err)
	}

	utils.InfoLogger.Printf("Listening on port %s (db=%s)", cfg.Port, cfg.DBDriver)
	if err := server.Engine.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
