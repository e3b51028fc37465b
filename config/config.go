package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"wellbeing-backend/utils"
)

// Config is built once at startup and handed to everything that needs it.
type Config struct {
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`

	// Database. A postgres DATABASE_URL wins; otherwise a local sqlite file is used.
	DatabaseURL  string `envconfig:"DATABASE_URL"`
	SQLitePath   string `envconfig:"SQLITE_PATH" default:"wellbeing.db"`
	SeedServices bool   `envconfig:"SEED_SERVICES" default:"true"`

	// Email
	EmailBackend      string        `envconfig:"EMAIL_BACKEND" default:"console"` // console or smtp
	EmailHost         string        `envconfig:"EMAIL_HOST" default:"smtp.gmail.com"`
	EmailPort         int           `envconfig:"EMAIL_PORT" default:"587"`
	EmailUseTLS       bool          `envconfig:"EMAIL_USE_TLS" default:"true"`
	EmailHostUser     string        `envconfig:"EMAIL_HOST_USER"`
	EmailHostPassword string        `envconfig:"EMAIL_HOST_PASSWORD"`
	DefaultFromEmail  string        `envconfig:"DEFAULT_FROM_EMAIL" default:"noreply@localhost"`
	AdminEmail        string        `envconfig:"ADMIN_EMAIL"`
	EmailTimeout      time.Duration `envconfig:"EMAIL_TIMEOUT" default:"5s"`

	// Branding used in emails and pages
	SiteName       string `envconfig:"SITE_NAME" default:"Mwasamwanda Well-being Services"`
	SitePhone      string `envconfig:"SITE_PHONE" default:"+254 758 283 613"`
	DirectorName   string `envconfig:"DIRECTOR_NAME" default:"Mwasambo Mwandawiro"`
	ResponseWindow string `envconfig:"RESPONSE_WINDOW" default:"24 hours"`

	// Admin API
	AdminUsername     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string `envconfig:"JWT_SECRET"`
	JWTExpiryHours    int    `envconfig:"JWT_EXPIRY_HOURS" default:"24"`

	// Optional SMS alert on new bookings
	TwilioAccountSID  string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber string `envconfig:"TWILIO_PHONE_NUMBER"`
	AdminAlertPhone   string `envconfig:"ADMIN_ALERT_PHONE"`

	// Daily admin digest
	DigestEnabled bool   `envconfig:"DIGEST_ENABLED" default:"true"`
	DigestCron    string `envconfig:"DIGEST_CRON" default:"0 8 * * *"`

	CORSOrigins        []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	RateLimitPerMinute int      `envconfig:"RATE_LIMIT_PER_MINUTE" default:"20"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = cfg.EmailHostUser
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = cfg.DefaultFromEmail
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that would only fail later at request time.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.EmailBackend) {
	case "console":
	case "smtp":
		if c.EmailHost == "" {
			errs = append(errs, errors.New("EMAIL_HOST is required for the smtp backend"))
		}
		if c.DefaultFromEmail == "" {
			errs = append(errs, errors.New("DEFAULT_FROM_EMAIL is required for the smtp backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown EMAIL_BACKEND %q", c.EmailBackend))
	}

	if c.EmailTimeout <= 0 {
		errs = append(errs, errors.New("EMAIL_TIMEOUT must be positive"))
	}
	if c.AdminPasswordHash != "" && c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required when ADMIN_PASSWORD_HASH is set"))
	}
	if c.AdminAlertPhone != "" && !utils.ValidatePhone(c.AdminAlertPhone) {
		errs = append(errs, fmt.Errorf("ADMIN_ALERT_PHONE %q is not a valid international number", c.AdminAlertPhone))
	}
	if c.RateLimitPerMinute < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must not be negative"))
	}

	return errors.Join(errs...)
}

// SMSEnabled reports whether booking alerts can go out over Twilio.
func (c *Config) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" &&
		c.TwilioPhoneNumber != "" && c.AdminAlertPhone != ""
}

// AdminEnabled reports whether the moderation API accepts logins.
func (c *Config) AdminEnabled() bool {
	return c.AdminPasswordHash != "" && c.JWTSecret != ""
}
