package main

import (
	"os"

	"backend/config"
	"backend/logger"
	"backend/routes"
	"backend/services"
)

func main() {
	logger.Init()
	config.InitDB()

	catalog, err := services.LoadFoodCatalog()
	if err != nil {
		logger.Error("failed to load food catalog", "err", err)
		os.Exit(1)
	}
	logger.Info("food catalog loaded", "entries", catalog.Len())

	r := routes.SetupRouter(catalog)
	if err := r.Run(":8080"); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}
