package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.SetPrefix("sf/spicefit-go-api: ")
	log.SetFlags(0)

	// .env is optional — deployed environments set real env vars.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	pool := getDBPool()
	defer pool.Close()

	// The catalog is reference data; load it once rather than per request.
	catalog, err := loadMealCatalog(context.Background(), pool)
	if err != nil {
		log.Fatalf("failed to load meal catalog: %v", err)
	}
	log.Printf("meal catalog loaded: %d meals", len(catalog.meals))

	h := &Handler{
		db:         pool,
		profiles:   &pgProfileStore{db: pool},
		selections: &pgSelectionStore{db: pool},
		catalog:    catalog,
	}

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	router.Run(":" + port)
}
