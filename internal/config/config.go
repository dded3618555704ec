package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every runtime setting for the service. It is built once
// at process start and injected into the components that need it, so no
// package reads the environment on its own.
type Config struct {
	HTTPPort    string
	MetricsPort string

	// ExternalURL is the absolute base URL used for reply-action links
	// embedded in outbound emails, e.g. "https://ranchoddasbhavan.com".
	ExternalURL string

	DB    DB
	Redis Redis
	Mail  Mail
	SMS   SMS
	FTP   FTP
}

// DB holds MySQL connection settings.
type DB struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// Redis holds session store settings.
type Redis struct {
	Addr       string
	Password   string
	DB         int
	SessionTTL time.Duration
}

// Mail holds settings for both email delivery channels. A non-empty
// SenderAPIKey selects the Sender API channel; otherwise SMTP is used.
type Mail struct {
	SenderAPIKey   string
	SenderEndpoint string
	FromName       string
	AdminEmail     string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	// SMTPAllowAnonymous permits sending without authentication when
	// credentials are not fully configured.
	SMTPAllowAnonymous bool

	Timeout  time.Duration
	LogoPath string
}

// SMS holds settings for the optional admin SMS alerts.
type SMS struct {
	Provider   string
	APIKey     string
	Sender     string
	AdminPhone string
}

// FTP holds settings for the feedback photo store.
type FTP struct {
	Host     string
	Port     string
	User     string
	Password string
	BaseDir  string
}

// Load reads configuration from the environment. A .env file is honored
// when present so local runs match the deployed layout.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	return &Config{
		HTTPPort:    getEnv("HTTP_PORT", "5000"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		ExternalURL: getEnv("PREFERRED_URL_SCHEME", "https") + "://" + getEnv("SERVER_NAME", "ranchoddasbhavan.com"),
		DB: DB{
			Host:     getEnv("DB_HOST", "mysql"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "guesthouse_user"),
			Password: getEnv("DB_PASSWORD", "guesthouse_password"),
			Database: getEnv("DB_DATABASE", "guesthouse_db"),
		},
		Redis: Redis{
			Addr:       getEnv("REDIS_ADDR", "redis:6379"),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvInt("REDIS_DB", 0),
			SessionTTL: getEnvDuration("SESSION_TTL", 24*time.Hour),
		},
		Mail: Mail{
			SenderAPIKey:   getEnv("SENDER_API_KEY", ""),
			SenderEndpoint: getEnv("SENDER_API_ENDPOINT", "https://api.sender.net/v2/email"),
			FromName:       getEnv("MAIL_FROM_NAME", "Ranchoddas Bhavan"),
			AdminEmail:     getEnv("ADMIN_EMAIL", ""),

			SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:           getEnv("SMTP_PORT", "587"),
			SMTPUser:           getEnv("SMTP_USER", ""),
			SMTPPass:           getEnv("SMTP_PASS", ""),
			SMTPAllowAnonymous: getEnvBool("SMTP_ALLOW_ANONYMOUS", true),

			Timeout:  getEnvDuration("MAIL_TIMEOUT", 15*time.Second),
			LogoPath: getEnv("LOGO_PATH", "static/images/icons/RAG_Logo.png"),
		},
		SMS: SMS{
			Provider:   getEnv("SMS_PROVIDER", ""),
			APIKey:     getEnv("SMS_API_KEY", ""),
			Sender:     getEnv("SMS_SENDER", ""),
			AdminPhone: getEnv("ADMIN_PHONE", ""),
		},
		FTP: FTP{
			Host:     getEnv("FTP_HOST", ""),
			Port:     getEnv("FTP_PORT", "21"),
			User:     getEnv("FTP_USER", ""),
			Password: getEnv("FTP_PASSWORD", ""),
			BaseDir:  getEnv("FTP_BASE_DIR", "feedback_gallery"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
