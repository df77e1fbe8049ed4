package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Defaults for the VeChain mainnet deployment of the GalaxyMember contract.
const (
	DefaultNetwork  = "main"
	DefaultCallURL  = "https://api.vechain.energy/v1/call/main"
	DefaultContract = "0x93B8cD34A7Fc4f53271b9011161F7A2B5fEA9D1F"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Contract query
	Network       string        // env: VECHAIN_NETWORK, selects an entry from the YAML networks list
	CallURL       string        // env: VECHAIN_CALL_URL
	Contract      string        // env: GALAXY_CONTRACT
	LookupTimeout time.Duration // env: LOOKUP_TIMEOUT, bounds a single contract call

	// Upstream health check, backs /readyz
	HealthCheckInterval time.Duration // env: HEALTH_CHECK_INTERVAL
	HealthCheckToken    string        // env: HEALTH_CHECK_TOKEN, a token id known to exist

	// Sessions and rate limiting. Both use Redis when REDIS_URL is set,
	// otherwise in-process memory.
	RedisURL           string
	SessionTTL         time.Duration
	RateLimitPerMinute int

	// CORS
	CORSOrigins string // Comma-separated allowed origins for the JSON API, e.g. "https://example.com,https://app.example.com"

	// Site Branding
	SiteTitle  string // env: SITE_TITLE, default: "GalaxyMember Token Info"
	SiteFooter string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                 getEnv("ENV", "development"),
		ServerAddr:          getEnv("SERVER_ADDR", ":3000"),
		BaseURL:             getEnv("BASE_URL", "http://localhost:3000"),
		Network:             getEnv("VECHAIN_NETWORK", DefaultNetwork),
		CallURL:             getEnv("VECHAIN_CALL_URL", ""),
		Contract:            getEnv("GALAXY_CONTRACT", ""),
		LookupTimeout:       getDuration("LOOKUP_TIMEOUT", 15*time.Second),
		HealthCheckInterval: getDuration("HEALTH_CHECK_INTERVAL", 5*time.Minute),
		HealthCheckToken:    getEnv("HEALTH_CHECK_TOKEN", "1"),
		RedisURL:            getEnv("REDIS_URL", ""),
		SessionTTL:          getDuration("SESSION_TTL", 24*time.Hour),
		RateLimitPerMinute:  getInt("RATE_LIMIT_PER_MINUTE", 100),
		CORSOrigins:         getEnv("CORS_ORIGINS", "*"),

		SiteTitle:  getEnv("SITE_TITLE", "GalaxyMember Token Info"),
		SiteFooter: getEnv("SITE_FOOTER", "Made with ❤️ by"),
	}
}

// ApplyNetwork fills CallURL and Contract from the selected network of the
// YAML file. Values set through the environment always win; anything still
// empty afterwards falls back to the mainnet defaults.
func (c *Config) ApplyNetwork(y *YAMLConfig) {
	if n := y.GetNetwork(c.Network); n != nil {
		if c.CallURL == "" {
			c.CallURL = n.CallURL
		}
		if c.Contract == "" {
			c.Contract = n.Contract
		}
	}
	if c.CallURL == "" {
		c.CallURL = DefaultCallURL
	}
	if c.Contract == "" {
		c.Contract = DefaultContract
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Invalid %s %q, using %v", key, value, fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("Invalid %s %q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
