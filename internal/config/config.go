// Package config loads and validates environment configuration at startup.
// Fail-fast: a missing required variable surfaces as an error before any
// component starts.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the API server and importer.
type Config struct {
	Port        int
	DatabaseURL string
	UploadDir   string
	FeedURL     string
	FeedLimit   int
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	port := 5000
	if s := os.Getenv("PORT"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > 65535 {
			return nil, fmt.Errorf("PORT must be a valid port number, got %q", s)
		}
		port = v
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	feedURL := os.Getenv("FEED_URL")

	feedLimit := 20
	if s := os.Getenv("FEED_LIMIT"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("FEED_LIMIT must be a positive integer, got %q", s)
		}
		feedLimit = v
	}

	return &Config{
		Port:        port,
		DatabaseURL: databaseURL,
		UploadDir:   uploadDir,
		FeedURL:     feedURL,
		FeedLimit:   feedLimit,
	}, nil
}
