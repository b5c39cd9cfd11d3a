// Package main MonoPay API
//
// MonoPay is a companion service for physical Monopoly sessions. It replaces
// paper money with a shared virtual bank: players create accounts, add
// friends, open game rooms joinable by a short code, and move money between
// each other and the bank through an append-only ledger.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	_ "github.com/monopay/monopay-api/docs"
	"github.com/monopay/monopay-api/internal/app"
)

// @title MonoPay API Service
// @version 1.0
// @description MonoPay tracks virtual Monopoly money for physical game sessions: accounts, friends, game rooms and an append-only transaction ledger.

// @contact.name API Support

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
