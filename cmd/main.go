// Package main is the entry point for the deer-processing order intake service.
//
// @title           Deer Processing Order Intake API
// @version         1.0.0
// @description     API for taking deer-processing orders: the step-by-step order
//
//	wizard, live price quotes, order storage with frozen pricing, returning-customer
//	lookup, and staff order management.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/theroadeldorado/duma-deer-processing-sub000
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
// @description                 Staff JWT access token. Format: "Bearer {token}".
//
// @tag.name        Catalog
// @tag.description Order form catalog
//
// @tag.name        Pricing
// @tag.description Price quotes for in-progress orders
//
// @tag.name        Wizard
// @tag.description Step-by-step order wizard navigation
//
// @tag.name        Orders
// @tag.description Order submission and staff order management
//
// @tag.name        Customers
// @tag.description Returning-customer lookup and preference sets
//
// @tag.name        Auth
// @tag.description Staff authentication
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/theroadeldorado/duma-deer-processing-sub000/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/theroadeldorado/duma-deer-processing-sub000/config"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	defer app.Shutdown()

	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
