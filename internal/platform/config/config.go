package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Rate limit for the auth endpoints, ulule/limiter format ("30-M").
	AuthRateLimit string

	// Notification pipeline
	AMQPURL         string
	AMQPExchange    string
	AMQPNotifyQueue string

	// WhatsApp gateway webhook, consumed by the notify worker.
	WhatsAppWebhookURL string

	// Google Sheets export; both must be set for the export to be enabled.
	GoogleSpreadsheetID   string
	GoogleSheetRange      string
	GoogleCredentialsJSON string
}

// SheetsConfigured reports whether the Google Sheets export target can be
// built from this configuration.
func (c *Config) SheetsConfigured() bool {
	return c.GoogleSpreadsheetID != "" && c.GoogleCredentialsJSON != ""
}

// AMQPConfigured reports whether the notification broker is set up.
func (c *Config) AMQPConfigured() bool {
	return c.AMQPURL != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "lunnor-caixa")
	viper.SetDefault("RATE_LIMIT", "30-M")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "lunnor.notifications")
	viper.SetDefault("AMQP_NOTIFY_QUEUE", "fund-movements")
	viper.SetDefault("WHATSAPP_WEBHOOK_URL", "")
	viper.SetDefault("GOOGLE_SPREADSHEET_ID", "")
	viper.SetDefault("GOOGLE_SHEET_RANGE", "A1")
	viper.SetDefault("GOOGLE_CREDENTIALS_JSON", "")

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

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AuthRateLimit = viper.GetString("RATE_LIMIT")

	cfg.AMQPURL = viper.GetString("AMQP_URL")
	cfg.AMQPExchange = viper.GetString("AMQP_EXCHANGE")
	cfg.AMQPNotifyQueue = viper.GetString("AMQP_NOTIFY_QUEUE")
	if cfg.AMQPURL == "" {
		log.Println("Warning: AMQP_URL not set. Fund movement notifications will be dropped.")
	}

	cfg.WhatsAppWebhookURL = viper.GetString("WHATSAPP_WEBHOOK_URL")

	cfg.GoogleSpreadsheetID = viper.GetString("GOOGLE_SPREADSHEET_ID")
	cfg.GoogleSheetRange = viper.GetString("GOOGLE_SHEET_RANGE")
	cfg.GoogleCredentialsJSON = viper.GetString("GOOGLE_CREDENTIALS_JSON")
	if !cfg.SheetsConfigured() {
		log.Println("Warning: Google Sheets export not configured (GOOGLE_SPREADSHEET_ID / GOOGLE_CREDENTIALS_JSON).")
	}

	return cfg, nil
}
