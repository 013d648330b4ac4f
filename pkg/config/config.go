package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Blob storage
	DefaultStorageType string // INTERNAL_CHUNKED or EXTERNAL_OBJECT
	BlobChunkSize      int    // Bytes per chunk in the internal store
	GCSBucket          string // Empty disables the external object backend

	// Analysis
	GeminiModel         string
	AnalysisTimeout     time.Duration // Budget per model invocation
	AnalysisMaxAttempts int           // Dispatch attempts per run

	RateLimit string // ulule/limiter format, e.g. "100-M"
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Missing values fall back to development defaults with a
// warning; production deployments must set the secrets explicitly.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "bookkeeping-app")
	viper.SetDefault("DEFAULT_STORAGE_TYPE", "INTERNAL_CHUNKED")
	viper.SetDefault("BLOB_CHUNK_SIZE", 262144)
	viper.SetDefault("GCS_BUCKET", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("ANALYSIS_TIMEOUT", "2m")
	viper.SetDefault("ANALYSIS_MAX_ATTEMPTS", 3)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry

	cfg.DefaultStorageType = viper.GetString("DEFAULT_STORAGE_TYPE")
	cfg.BlobChunkSize = viper.GetInt("BLOB_CHUNK_SIZE")
	cfg.GCSBucket = viper.GetString("GCS_BUCKET")
	if cfg.GCSBucket == "" {
		log.Println("Warning: GCS_BUCKET not set. External object storage is disabled.")
	}

	cfg.GeminiModel = viper.GetString("GEMINI_MODEL")

	analysisTimeoutStr := viper.GetString("ANALYSIS_TIMEOUT")
	analysisTimeout, err := time.ParseDuration(analysisTimeoutStr)
	if err != nil {
		analysisTimeout = 2 * time.Minute
		log.Printf("Warning: Invalid value for ANALYSIS_TIMEOUT ('%s'). Defaulting to %s.\n", analysisTimeoutStr, analysisTimeout)
	}
	cfg.AnalysisTimeout = analysisTimeout
	cfg.AnalysisMaxAttempts = viper.GetInt("ANALYSIS_MAX_ATTEMPTS")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
