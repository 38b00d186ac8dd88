// Package main is the entry point for the lunch-service application.
//
// @title           Lunch Service API
// @version         1.0.0
// @description     API for the campus kitchen lunch workflow: meal catalog,
//
//	daily schedule, student preferences, and the order ledger with
//	automatic preorders.
//
// @contact.name   API Support
// @contact.url    https://github.com/campuskitchen/lunch-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT bearer token. Format: "Bearer {token}".
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Menu
// @tag.description Meal catalog and the student menu view
//
// @tag.name        Schedule
// @tag.description Daily menu schedule and automatic preorders
//
// @tag.name        Orders
// @tag.description The append-only order ledger
//
// @tag.name        Preferences
// @tag.description Student meal selection rules
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/campuskitchen/lunch-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/campuskitchen/lunch-service/config"
	"github.com/campuskitchen/lunch-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
