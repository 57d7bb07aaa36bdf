package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/nexconsult/cnpj-geo/internal/app"

	// Import docs for Swagger
	_ "github.com/nexconsult/cnpj-geo/docs"
)

// @title CNPJ & Geometry API
// @version 1.0
// @description CNPJ check digit validation and integer rectangle geometry

// @contact.name API Support
// @contact.url http://www.nexconsult.com/support
// @contact.email support@nexconsult.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	if err := app.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
