package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigin     string `mapstructure:"ALLOWED_ORIGIN"`

	// Auth token configuration.
	JWTSecret        string `mapstructure:"JWT_SECRET"`
	TokenExpiryHours int    `mapstructure:"TOKEN_EXPIRY_HOURS"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Stripe checkout configuration.
	StripeKey         string `mapstructure:"STRIPE_KEY"`
	PaymentSuccessURL string `mapstructure:"PAYMENT_SUCCESS_URL"`
	PaymentCancelURL  string `mapstructure:"PAYMENT_CANCEL_URL"`

	// Cloudinary file storage.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Transactional email (Brevo).
	BrevoAPIKey      string `mapstructure:"BREVO_API_KEY"`
	EmailSender      string `mapstructure:"EMAIL_SENDER"`
	EmailSenderName  string `mapstructure:"EMAIL_SENDER_NAME"`
	VideoCallBaseURL string `mapstructure:"VIDEO_CALL_BASE_URL"`
}

// Load reads configuration from config.yaml (if present) and the environment.
func Load() Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ALLOWED_ORIGIN", "*")
	viper.SetDefault("TOKEN_EXPIRY_HOURS", 24)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "counselhub")
	viper.SetDefault("PAYMENT_SUCCESS_URL", "http://localhost:3000/payment-success?session_id={CHECKOUT_SESSION_ID}")
	viper.SetDefault("PAYMENT_CANCEL_URL", "http://localhost:3000/payment-cancel")
	viper.SetDefault("VIDEO_CALL_BASE_URL", "https://meet.jit.si")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
