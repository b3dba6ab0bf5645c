package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"routefinder/internal/adapters/distance"
	"routefinder/internal/api"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the Google Maps adapter behind the MatrixProvider port and starts
// the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")

	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}

	provider, err := distance.NewGoogleMapsProvider(apiKey)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(provider)

	// Write timeout leaves headroom for the external matrix lookup.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
