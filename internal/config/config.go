package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment    string `env:"ENV" envDefault:"development"`
	Port           string `env:"PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile        string `env:"LOG_FILE"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"text"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	// Outbound HTTP timeout shared by the content client and the webhook relay
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	Content ContentConfig
	Contact ContactConfig
	Site    SiteConfig
	Redis   RedisConfig

	// Warnings collects non-fatal problems found while loading (malformed JSON values).
	Warnings []string
}

// ContentConfig configures the remote content backends
type ContentConfig struct {
	APIURL            string   `env:"WORDPRESS_API_URL"`
	HomepageURL       string   `env:"HOMEPAGE_API_URL"`
	HomepageToken     string   `env:"HOMEPAGE_API_TOKEN"`
	FallbackFile      string   `env:"HOMEPAGE_FALLBACK_FILE"`
	ServicePath       string   `env:"SERVICE_PAGE_PATH" envDefault:"/digitala-tjanster/"`
	ServiceCandidates []string `env:"SERVICE_PAGE_SLUGS" envDefault:"tjanster,digitala-tjanster,digitala-tjanster-2" envSeparator:","`
}

// ContactConfig configures the contact submission gate
type ContactConfig struct {
	WebhookURL      string        `env:"CONTACT_FORM_WEBHOOK"`
	RateLimitWindow time.Duration `env:"CONTACT_RATE_LIMIT_WINDOW" envDefault:"1m"`
	RateLimitMax    int           `env:"CONTACT_RATE_LIMIT_MAX" envDefault:"3"`
	MinFillTime     time.Duration `env:"CONTACT_MIN_FILL_TIME" envDefault:"2s"`
	SweepInterval   time.Duration `env:"CONTACT_LEDGER_SWEEP_INTERVAL" envDefault:"10m"`
}

// SiteConfig holds the public site identity used by placeholders and navigation
type SiteConfig struct {
	Name              string `env:"SITE_NAME" envDefault:"Webbplats"`
	Description       string `env:"SITE_DESCRIPTION"`
	BaseURL           string `env:"SITE_BASE_URL" envDefault:"http://localhost:3000"`
	DefaultOGImage    string `env:"DEFAULT_OG_IMAGE_URL" envDefault:"/globe.svg"`
	DefaultOGImageAlt string `env:"DEFAULT_OG_IMAGE_ALT" envDefault:"Förhandsvisning"`
	NavCTALabel       string `env:"NAV_CTA_LABEL" envDefault:"Kontakta oss"`
	NavCTAHref        string `env:"NAV_CTA_HREF" envDefault:"/kontakt/"`
	ContactEmail      string `env:"COMPANY_EMAIL"`

	NavPrimaryJSON     string `env:"NAV_PRIMARY"`
	ContactAddressJSON string `env:"COMPANY_ADDRESS"`

	// Parsed from the JSON values above, with typed fallbacks.
	NavItems       []NavItem
	ContactAddress *Address
}

// RedisConfig configures the optional shared content cache
type RedisConfig struct {
	Address  string `env:"REDIS_ADDRESS"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// NavItem is one primary navigation link
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Address is the company postal address. Text is set when the source was a plain string.
type Address struct {
	Area    string `json:"area,omitempty"`
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	Text    string `json:"text,omitempty"`
}

// UnmarshalJSON accepts either an address object or a single string.
func (a *Address) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*a = Address{Text: text}
		return nil
	}
	type plain Address
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Address(p)
	return nil
}

// IsZero reports whether no address part is set.
func (a *Address) IsZero() bool {
	return a == nil || *a == Address{}
}

// DefaultNavItems is used when NAV_PRIMARY is unset or malformed.
func DefaultNavItems() []NavItem {
	return []NavItem{
		{Label: "Hem", Href: "/"},
		{Label: "Tjänster", Href: "/tjanster/"},
		{Label: "Blogg", Href: "/blogg/"},
		{Label: "Om oss", Href: "/om-oss/"},
		{Label: "Kontakt", Href: "/kontakt/"},
	}
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Try multiple locations for .env file
	envLocations := []string{
		"internal/config/env/.env.development",
		".env",
	}

	// If ENV is set, try to load that specific file first
	envName := os.Getenv("ENV")
	if envName != "" {
		envLocations = append([]string{fmt.Sprintf("internal/config/env/.env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	return Parse()
}

// Parse builds a Config from the current process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Site.BaseURL = strings.TrimRight(cfg.Site.BaseURL, "/")

	// Derive the content API from the site when not explicitly set
	if cfg.Content.APIURL == "" {
		cfg.Content.APIURL = cfg.Site.BaseURL + "/wp-json/wp/v2"
	}
	cfg.Content.APIURL = strings.TrimRight(cfg.Content.APIURL, "/")

	cfg.Site.NavItems = DefaultNavItems()
	if raw := strings.TrimSpace(cfg.Site.NavPrimaryJSON); raw != "" {
		var items []NavItem
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("NAV_PRIMARY is not valid JSON, using defaults: %v", err))
		} else {
			cfg.Site.NavItems = items
		}
	}

	if raw := strings.TrimSpace(cfg.Site.ContactAddressJSON); raw != "" {
		var addr Address
		if err := json.Unmarshal([]byte(raw), &addr); err != nil {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("COMPANY_ADDRESS is not valid JSON, ignoring: %v", err))
		} else if !addr.IsZero() {
			cfg.Site.ContactAddress = &addr
		}
	}

	if cfg.Contact.RateLimitMax <= 0 {
		return nil, fmt.Errorf("CONTACT_RATE_LIMIT_MAX must be positive, got %d", cfg.Contact.RateLimitMax)
	}
	if cfg.Contact.RateLimitWindow <= 0 {
		return nil, fmt.Errorf("CONTACT_RATE_LIMIT_WINDOW must be positive, got %s", cfg.Contact.RateLimitWindow)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.IsProduction() {
			cfg.LogFile = "/app/logs/site.log"
		} else {
			cfg.LogFile = "./logs/site.log"
		}
	}

	return cfg, nil
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
