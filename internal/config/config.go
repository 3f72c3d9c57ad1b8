// Package config handles application configuration via environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultDataFile is used when neither an explicit path nor ASTHMA_DATA_FILE is set.
const DefaultDataFile = "backend/data/storage.json"

// Config holds all configurable values for the app.
type Config struct {
	Env             string
	Addr            string
	DataFile        string
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

// Load reads an optional .env file and the environment, and populates a Config struct.
// A non-empty dataFile takes precedence over ASTHMA_DATA_FILE.
func Load(dataFile string) *Config {
	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		log.Panicf("Invalid MAX_BODY_BYTES: %v", err)
	}

	shutdown, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		log.Panicf("Invalid SHUTDOWN_TIMEOUT: %v", err)
	}

	return &Config{
		Env:             getEnv("ENV", "development"),
		Addr:            getEnv("ADDR", ":8080"),
		DataFile:        ResolveDataFile(dataFile),
		MaxBodyBytes:    maxBody,
		ShutdownTimeout: shutdown,
	}
}

// ResolveDataFile picks the data-file path: explicit argument, then
// ASTHMA_DATA_FILE, then DefaultDataFile.
func ResolveDataFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return getEnv("ASTHMA_DATA_FILE", DefaultDataFile)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
