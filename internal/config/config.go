// Package config handles application configuration and environment loading.
package config

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	JWTSecret string // HS256 shared secret; empty disables bearer tokens
	Issuer    string // required iss claim when set
	Audience  string // required aud claim when set
	NameClaim string // JWT claim holding the principal name (default: "sub")

	// OIDC settings. When OIDCIssuerURL or JWKSURL is set, bearer tokens are
	// verified against the provider's keys instead of JWTSecret.
	OIDCIssuerURL  string   // OIDC discovery base URL
	JWKSURL        string   // direct JWKS URL (skips discovery)
	AllowedIssuers []string // accepted iss values (default: OIDCIssuerURL)

	// API key settings
	APIKeyEnabled bool              // Enable API key auth (default: true)
	APIKeyHeader  string            // Header name for API keys (default: X-API-Key)
	APIKeys       map[string]string // SHA-256 hex of key -> principal name
}

// LookupPrincipalByAPIKeyHash returns the principal configured for keyHash.
func (a *AuthConfig) LookupPrincipalByAPIKeyHash(keyHash string) (string, bool) {
	name, ok := a.APIKeys[keyHash]
	return name, ok
}

// OIDCEnabled reports whether bearer tokens come from an external OIDC provider.
func (a *AuthConfig) OIDCEnabled() bool {
	return a.OIDCIssuerURL != "" || a.JWKSURL != ""
}

// Config holds the configuration for the access gate server.
type Config struct {
	MetaDBPath string // path to SQLite metadata file
	ListenAddr string // HTTP listen address (default ":8080")
	PolicyFile string // policy YAML; empty uses the built-in policy
	// DirectoryFile is an optional principal/group directory YAML synced into
	// the metastore on startup.
	DirectoryFile string
	LogLevel      string // log level: debug, info, warn, error (default "info")
	Env           string // environment: "development" (default) or "production"

	// Rate limiting
	RateLimitRPS   float64 // sustained requests per second (default 100)
	RateLimitBurst int     // burst capacity (default 200)

	// CORS
	CORSAllowedOrigins []string // allowed origins for CORS (default: ["*"])

	// Audit retention
	AuditRetention     time.Duration // entries older than this are purged (default 720h, 0 disables)
	AuditPurgeSchedule string        // cron spec for the purge job (default "@daily")

	// BootstrapAdmin is the principal seeded as admin and placed in the
	// system group on startup.
	BootstrapAdmin string

	ShutdownTimeout time.Duration // graceful shutdown budget (default 15s)

	// Auth holds authentication configuration.
	Auth AuthConfig

	// Warnings collects non-fatal warnings generated during config loading.
	// These are logged by the caller after the logger is initialised.
	Warnings []string
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction returns true when the server is running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		MetaDBPath:         os.Getenv("META_DB_PATH"),
		ListenAddr:         os.Getenv("LISTEN_ADDR"),
		PolicyFile:         os.Getenv("POLICY_FILE"),
		DirectoryFile:      os.Getenv("DIRECTORY_FILE"),
		LogLevel:           os.Getenv("LOG_LEVEL"),
		Env:                os.Getenv("ENV"),
		AuditPurgeSchedule: os.Getenv("AUDIT_PURGE_SCHEDULE"),
		BootstrapAdmin:     os.Getenv("BOOTSTRAP_ADMIN"),
	}

	// Rate limiting
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitRPS = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitBurst = n
		}
	}

	// CORS
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORSAllowedOrigins = splitList(v)
	}

	cfg.AuditRetention = 720 * time.Hour
	if v := os.Getenv("AUDIT_RETENTION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AUDIT_RETENTION %q: %w", v, err)
		}
		cfg.AuditRetention = d
	}
	cfg.ShutdownTimeout = 15 * time.Second
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		cfg.ShutdownTimeout = d
	}

	// Auth config
	cfg.Auth = AuthConfig{
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Issuer:        os.Getenv("AUTH_ISSUER"),
		Audience:      os.Getenv("AUTH_AUDIENCE"),
		NameClaim:     os.Getenv("AUTH_NAME_CLAIM"),
		OIDCIssuerURL: os.Getenv("OIDC_ISSUER_URL"),
		JWKSURL:       os.Getenv("JWKS_URL"),
		APIKeyEnabled: true,
		APIKeyHeader:  os.Getenv("AUTH_API_KEY_HEADER"),
	}
	if v := os.Getenv("AUTH_ALLOWED_ISSUERS"); v != "" {
		cfg.Auth.AllowedIssuers = splitList(v)
	}
	if cfg.Auth.OIDCEnabled() && cfg.Auth.Audience == "" {
		return nil, fmt.Errorf("AUTH_AUDIENCE must be set when OIDC_ISSUER_URL or JWKS_URL is configured")
	}
	if os.Getenv("AUTH_API_KEY_ENABLED") == "false" {
		cfg.Auth.APIKeyEnabled = false
	}
	keys, err := parseAPIKeys(os.Getenv("API_KEYS"))
	if err != nil {
		return nil, err
	}
	cfg.Auth.APIKeys = keys

	// Auth config defaults
	if cfg.Auth.APIKeyHeader == "" {
		cfg.Auth.APIKeyHeader = "X-API-Key"
	}
	if cfg.Auth.NameClaim == "" {
		cfg.Auth.NameClaim = "sub"
	}

	// Defaults
	if cfg.MetaDBPath == "" {
		cfg.MetaDBPath = "mrp_access.sqlite"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.RateLimitRPS == 0 {
		cfg.RateLimitRPS = 100
	}
	if cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = 200
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}
	if cfg.AuditPurgeSchedule == "" {
		cfg.AuditPurgeSchedule = "@daily"
	}
	if cfg.BootstrapAdmin == "" {
		cfg.BootstrapAdmin = "admin"
	}
	if cfg.Auth.JWTSecret == "" && !cfg.Auth.OIDCEnabled() {
		cfg.Warnings = append(cfg.Warnings, "neither JWT_SECRET nor OIDC_ISSUER_URL/JWKS_URL set; bearer tokens are rejected and only API keys authenticate")
	}
	if cfg.Auth.JWTSecret != "" && cfg.Auth.OIDCEnabled() {
		cfg.Warnings = append(cfg.Warnings, "JWT_SECRET ignored because OIDC is configured")
	}

	// Production mode: insecure defaults are fatal errors.
	if cfg.IsProduction() {
		if cfg.Auth.JWTSecret == "" && !cfg.Auth.OIDCEnabled() {
			return nil, fmt.Errorf("JWT_SECRET or OIDC_ISSUER_URL/JWKS_URL must be set in production (ENV=production)")
		}
		if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
			return nil, fmt.Errorf("CORS wildcard (*) is not allowed in production (ENV=production)")
		}
	}

	return cfg, nil
}

// parseAPIKeys reads "principal:key" pairs separated by commas. Keys are kept
// only as SHA-256 hex digests.
func parseAPIKeys(v string) (map[string]string, error) {
	out := map[string]string{}
	for _, pair := range splitList(v) {
		name, key, ok := strings.Cut(pair, ":")
		name, key = strings.TrimSpace(name), strings.TrimSpace(key)
		if !ok || name == "" || key == "" {
			return nil, fmt.Errorf("invalid API_KEYS entry %q: want principal:key", pair)
		}
		out[HashAPIKey(key)] = name
	}
	return out, nil
}

// HashAPIKey returns the SHA-256 hex digest of an API key.
func HashAPIKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return hex.EncodeToString(h[:])
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadDotEnv reads a .env file and sets any variables not already in the environment.
// Lines must be in KEY=VALUE format. Comments (#) and blank lines are skipped.
func LoadDotEnv(path string) error {
	f, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return nil // .env not found is not an error
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = stripQuotes(strings.TrimSpace(value))
		// Only set if not already in the environment (env vars take precedence)
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("setenv %s: %w", key, err)
			}
		}
	}
	return scanner.Err()
}

// stripQuotes removes surrounding double or single quotes from a value.
// Only strips if both the first and last characters are matching quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
