package main

import (
	"github.com/RaG1ng9107/diet-connectivity/config"
	"github.com/RaG1ng9107/diet-connectivity/routes"
	"github.com/RaG1ng9107/diet-connectivity/services"
)

func main() {
	logger := config.NewLogger()
	defer logger.Sync()

	db := config.InitDB()
	hub := services.NewRealtimeHub()

	r := routes.SetupRouter(db, logger, hub)
	logger.Infow("listening", "addr", ":8080")
	if err := r.Run(":8080"); err != nil {
		logger.Fatalw("server stopped", "err", err)
	}
}
