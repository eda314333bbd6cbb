package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Firestore Configuration
	GCPProjectID  string
	JobCollection string
	// Identity Provider (Firebase-compatible REST auth)
	IdentityAPIKey  string
	IdentityBaseURL string
	IdentityJWKSURL string
	TokenIssuer     string
	TokenAudience   string
	CookieName      string
	CookieSecure    bool
	// Blob Storage
	BlobProvider    string // "gcs" or "s3"
	LogoBucket      string
	LogoURLPrefix   string // public URL prefix; defaults derived per provider
	S3Region        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string // set for Wasabi/minio style providers
	// Redis/Upstash Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitLoginThreshold  int
	RateLimitGlobalThreshold int
	// Editor Configuration
	ListingLimit int
	MaxLogoBytes int64
}

func LoadConfig() (*Config, error) {
	// .env only matters locally; ignored in production when absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		GCPProjectID:  getEnv("GCP_PROJECT_ID", ""),
		JobCollection: getEnv("JOB_COLLECTION", "jobPostings"),

		IdentityAPIKey:  getEnv("IDENTITY_API_KEY", ""),
		IdentityBaseURL: strings.TrimRight(getEnv("IDENTITY_BASE_URL", "https://identitytoolkit.googleapis.com/v1"), "/"),
		IdentityJWKSURL: getEnv("IDENTITY_JWKS_URL", ""),
		TokenIssuer:     getEnv("TOKEN_ISSUER", ""),
		TokenAudience:   getEnv("TOKEN_AUDIENCE", ""),
		CookieName:      getEnv("AUTH_COOKIE_NAME", "admin_session"),
		CookieSecure:    getEnvBool("AUTH_COOKIE_SECURE", true),

		BlobProvider:  getEnv("BLOB_PROVIDER", "gcs"),
		LogoBucket:    getEnv("LOGO_BUCKET", ""),
		LogoURLPrefix: getEnv("LOGO_URL_PREFIX", ""),
		S3Region:      getEnv("S3_REGION", ""),
		S3AccessKey:   getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:   getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Endpoint:    getEnv("S3_ENDPOINT", ""),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold:  getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),

		ListingLimit: getEnvInt("LISTING_LIMIT", 50),
		MaxLogoBytes: int64(getEnvInt("MAX_LOGO_BYTES", 2*1024*1024)),
	}

	// Basic validation up front to avoid confusing failures later
	if cfg.GCPProjectID == "" {
		log.Println("WARNING: GCP_PROJECT_ID is missing. Firestore client will fail to initialize.")
	}
	if cfg.IdentityAPIKey == "" {
		log.Println("WARNING: IDENTITY_API_KEY is missing. Admin login will be unavailable.")
	}
	if cfg.LogoBucket == "" {
		log.Println("WARNING: LOGO_BUCKET not configured. Logo uploads will fail.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
