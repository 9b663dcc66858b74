package config

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// PayPal environments.
const (
	PayPalModeSandbox = "sandbox"
	PayPalModeLive    = "live"

	paypalSandboxAPIBase = "https://api-m.sandbox.paypal.com"
	paypalLiveAPIBase    = "https://api-m.paypal.com"
)

// Config holds application configuration. It replaces the original plugin's
// ad-hoc option lookups with a typed object loaded once at startup and
// passed by injection.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Admin auth
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	AdminUsername     string
	AdminPasswordHash string // bcrypt

	// Anti-replay token embedded in the public form
	FormTokenSecret string
	FormTokenTTL    time.Duration

	// Fellowship / form behavior
	ServiceBodyName    string
	DefaultCurrency    string
	EnabledCurrencies  []string // empty = all supported
	ShowGroupID        bool
	MinContributionUSD decimal.Decimal // zero = no minimum hint
	MaxContributionUSD decimal.Decimal // zero = no maximum hint
	RoundingMode       string          // "simple" or "smart"

	// PayPal
	PayPalMode            string
	PayPalSandboxClientID string
	PayPalSandboxSecret   string
	PayPalLiveClientID    string
	PayPalLiveSecret      string

	// reCAPTCHA v3 (empty site key disables verification)
	RecaptchaSiteKey   string
	RecaptchaSecretKey string
	RecaptchaMinScore  float64

	// Exchange rates
	RatesAPIURL   string
	RatesCacheTTL time.Duration

	// Meeting directory (TSML-compatible feed)
	MeetingFeedURL      string
	MeetingFeedCacheTTL time.Duration

	// Receipt email
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	EmailFromAddress string
	EmailSubject     string

	// HTTP surface
	CORSAllowedOrigins []string
	PublicRateLimit    string // ulule/limiter format, e.g. "30-M"
}

// CaptchaEnforced reports whether contribution submissions must carry a
// verifiable reCAPTCHA token. Verification calls siteverify with the secret
// key; the site key alone only renders the client widget.
func (c *Config) CaptchaEnforced() bool {
	return c.RecaptchaSiteKey != "" && c.RecaptchaSecretKey != ""
}

// DeriveFormTokenSecret produces the form-token signing secret used when
// FORM_TOKEN_SECRET is not configured explicitly.
func DeriveFormTokenSecret(jwtSecret string) string {
	sum := sha256.Sum256([]byte("form-token:" + jwtSecret))
	return hex.EncodeToString(sum[:])
}

// PayPalClientID returns the client id for the configured PayPal mode.
func (c *Config) PayPalClientID() string {
	if c.PayPalMode == PayPalModeLive {
		return c.PayPalLiveClientID
	}
	return c.PayPalSandboxClientID
}

// PayPalSecret returns the API secret for the configured PayPal mode.
func (c *Config) PayPalSecret() string {
	if c.PayPalMode == PayPalModeLive {
		return c.PayPalLiveSecret
	}
	return c.PayPalSandboxSecret
}

// PayPalAPIBase returns the REST base URL for the configured PayPal mode.
func (c *Config) PayPalAPIBase() string {
	if c.PayPalMode == PayPalModeLive {
		return paypalLiveAPIBase
	}
	return paypalSandboxAPIBase
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "seventh-traditioner")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("FORM_TOKEN_SECRET", "")
	viper.SetDefault("FORM_TOKEN_TTL", "12h")
	viper.SetDefault("SERVICE_BODY_NAME", "Fellowship")
	viper.SetDefault("DEFAULT_CURRENCY", "USD")
	viper.SetDefault("ENABLED_CURRENCIES", "")
	viper.SetDefault("SHOW_GROUP_ID", true)
	viper.SetDefault("MIN_CONTRIBUTION_USD", "0")
	viper.SetDefault("MAX_CONTRIBUTION_USD", "0")
	viper.SetDefault("ROUNDING_MODE", "smart")
	viper.SetDefault("PAYPAL_MODE", PayPalModeSandbox)
	viper.SetDefault("PAYPAL_SANDBOX_CLIENT_ID", "")
	viper.SetDefault("PAYPAL_SANDBOX_SECRET", "")
	viper.SetDefault("PAYPAL_LIVE_CLIENT_ID", "")
	viper.SetDefault("PAYPAL_LIVE_SECRET", "")
	viper.SetDefault("RECAPTCHA_SITE_KEY", "")
	viper.SetDefault("RECAPTCHA_SECRET_KEY", "")
	viper.SetDefault("RECAPTCHA_MIN_SCORE", 0.5)
	viper.SetDefault("RATES_API_URL", "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest/v1/currencies/usd.json")
	viper.SetDefault("RATES_CACHE_TTL", "24h")
	viper.SetDefault("MEETING_FEED_URL", "")
	viper.SetDefault("MEETING_FEED_CACHE_TTL", "1h")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("EMAIL_FROM_ADDRESS", "")
	viper.SetDefault("EMAIL_SUBJECT", "Contribution Receipt")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("PUBLIC_RATE_LIMIT", "30-M")

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
	cfg.JWTExpiryDuration = parseDurationOr("JWT_EXPIRY_DURATION", time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Admin login is disabled.")
	}

	cfg.FormTokenSecret = viper.GetString("FORM_TOKEN_SECRET")
	if cfg.FormTokenSecret == "" {
		// Derive a distinct secret so a form token can never verify against
		// the admin signing key.
		cfg.FormTokenSecret = DeriveFormTokenSecret(cfg.JWTSecret)
		log.Println("Warning: FORM_TOKEN_SECRET not set. Deriving one from JWT_SECRET.")
	}
	cfg.FormTokenTTL = parseDurationOr("FORM_TOKEN_TTL", 12*time.Hour)

	cfg.ServiceBodyName = viper.GetString("SERVICE_BODY_NAME")
	cfg.DefaultCurrency = strings.ToUpper(viper.GetString("DEFAULT_CURRENCY"))
	cfg.EnabledCurrencies = splitList(viper.GetString("ENABLED_CURRENCIES"))
	for i, code := range cfg.EnabledCurrencies {
		cfg.EnabledCurrencies[i] = strings.ToUpper(code)
	}
	cfg.ShowGroupID = viper.GetBool("SHOW_GROUP_ID")
	cfg.MinContributionUSD = parseDecimalOr("MIN_CONTRIBUTION_USD", decimal.Zero)
	cfg.MaxContributionUSD = parseDecimalOr("MAX_CONTRIBUTION_USD", decimal.Zero)
	cfg.RoundingMode = viper.GetString("ROUNDING_MODE")

	cfg.PayPalMode = viper.GetString("PAYPAL_MODE")
	if cfg.PayPalMode != PayPalModeSandbox && cfg.PayPalMode != PayPalModeLive {
		log.Printf("Warning: Invalid PAYPAL_MODE (%q). Defaulting to %s.\n", cfg.PayPalMode, PayPalModeSandbox)
		cfg.PayPalMode = PayPalModeSandbox
	}
	cfg.PayPalSandboxClientID = viper.GetString("PAYPAL_SANDBOX_CLIENT_ID")
	cfg.PayPalSandboxSecret = viper.GetString("PAYPAL_SANDBOX_SECRET")
	cfg.PayPalLiveClientID = viper.GetString("PAYPAL_LIVE_CLIENT_ID")
	cfg.PayPalLiveSecret = viper.GetString("PAYPAL_LIVE_SECRET")
	if cfg.PayPalClientID() == "" {
		log.Println("Warning: PayPal client id not set for the active mode. Checkout will not function.")
	}

	cfg.RecaptchaSiteKey = viper.GetString("RECAPTCHA_SITE_KEY")
	cfg.RecaptchaSecretKey = viper.GetString("RECAPTCHA_SECRET_KEY")
	cfg.RecaptchaMinScore = viper.GetFloat64("RECAPTCHA_MIN_SCORE")
	if (cfg.RecaptchaSiteKey == "") != (cfg.RecaptchaSecretKey == "") {
		log.Println("Warning: Only one of RECAPTCHA_SITE_KEY and RECAPTCHA_SECRET_KEY is set. Captcha verification is disabled.")
	}

	cfg.RatesAPIURL = viper.GetString("RATES_API_URL")
	cfg.RatesCacheTTL = parseDurationOr("RATES_CACHE_TTL", 24*time.Hour)

	cfg.MeetingFeedURL = viper.GetString("MEETING_FEED_URL")
	if cfg.MeetingFeedURL == "" {
		log.Println("Warning: MEETING_FEED_URL not set. Meeting lookups will return no results.")
	}
	cfg.MeetingFeedCacheTTL = parseDurationOr("MEETING_FEED_CACHE_TTL", time.Hour)

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	cfg.SMTPUsername = viper.GetString("SMTP_USERNAME")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.EmailFromAddress = viper.GetString("EMAIL_FROM_ADDRESS")
	cfg.EmailSubject = viper.GetString("EMAIL_SUBJECT")
	if cfg.SMTPHost == "" {
		log.Println("Warning: SMTP_HOST not set. Receipt emails will not be sent.")
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.PublicRateLimit = viper.GetString("PUBLIC_RATE_LIMIT")

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s (%q). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func parseDecimalOr(key string, fallback decimal.Decimal) decimal.Decimal {
	raw := viper.GetString(key)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s (%q). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
