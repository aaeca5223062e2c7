package main

import (
	"busbooking/config"
	"busbooking/di"
	"busbooking/shared/logger"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init -g ./cmd/app/main.go -o ./docs --dir ../../

// @title						Bus Booking API
// @version					1.0
// @description				Backend for the bus ticket booking client.
// @BasePath					/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
