package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBName    string
	JWTKey    string
	SaltRound int

	AppBaseURL string
	UploadDir  string

	EmailSender    string
	SendGridAPIKey string

	// Remote catalog API. When empty the course builder writes to the
	// local database instead of calling out over HTTP.
	CatalogApiURL string
	CatalogApiKey string

	// Payment gateways (return-URL handling only)
	MomoPartnerCode string
	MomoSecretKey   string
	VnpayTmnCode    string
	VnpayHashSecret string

	PlatformFeePercent float64
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBName:    getEnv("DB_NAME", "lms"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:3000"),
		UploadDir:  getEnv("UPLOAD_DIR", "./public/uploads"),

		EmailSender:    getEnv("EMAIL_SENDER", "noreply@lms.local"),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		CatalogApiURL: getEnv("CATALOG_API_URL", ""),
		CatalogApiKey: getEnv("CATALOG_API_KEY", ""),

		MomoPartnerCode: getEnv("MOMO_PARTNER_CODE", ""),
		MomoSecretKey:   getEnv("MOMO_SECRET_KEY", ""),
		VnpayTmnCode:    getEnv("VNPAY_TMN_CODE", ""),
		VnpayHashSecret: getEnv("VNPAY_HASH_SECRET", ""),

		PlatformFeePercent: getEnvFloat("PLATFORM_FEE_PERCENT", 30),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendGridAPIKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Emails will be logged only.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvFloat retrieves an environment variable as a float or returns the default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to float: %v", key, err)
		return defaultValue
	}
	return floatValue
}
