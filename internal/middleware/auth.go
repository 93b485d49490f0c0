package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"mrp-access/internal/config"
	"mrp-access/internal/domain"
)

// APIKeyLookup maps the SHA-256 hex digest of an API key to a principal name.
type APIKeyLookup interface {
	LookupPrincipalByAPIKeyHash(keyHash string) (string, bool)
}

// PrincipalLookup finds registered principals by name.
type PrincipalLookup interface {
	GetByName(ctx context.Context, name string) (*domain.Principal, error)
}

// Authenticator turns a bearer token or API key into a ContextPrincipal.
// Only principals registered in the store are accepted.
type Authenticator struct {
	validator  JWTValidator
	apiKeys    APIKeyLookup
	principals PrincipalLookup
	cfg        config.AuthConfig
	logger     *slog.Logger
}

// NewAuthenticator creates an Authenticator. A nil validator disables bearer
// tokens and a nil apiKeys disables API keys.
func NewAuthenticator(validator JWTValidator, apiKeys APIKeyLookup, principals PrincipalLookup, cfg config.AuthConfig, logger *slog.Logger) *Authenticator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Authenticator{
		validator:  validator,
		apiKeys:    apiKeys,
		principals: principals,
		cfg:        cfg,
		logger:     logger,
	}
}

// Middleware tries a JWT first, then an API key. Returns 401 if both fail.
func (a *Authenticator) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := a.fromBearer(r)
			if name == "" {
				name = a.fromAPIKey(r)
			}
			if name == "" {
				writeUnauthorized(w, "unauthorized: provide a valid JWT Bearer token or API key")
				return
			}
			if a.principals == nil {
				writeUnauthorized(w, "unauthorized: principal lookup unavailable")
				return
			}
			p, err := a.principals.GetByName(r.Context(), name)
			if err != nil {
				a.logger.Warn("authenticated caller is not a registered principal",
					"principal", name, "request_id", RequestIDFromContext(r.Context()), "error", err)
				writeUnauthorized(w, "unauthorized: unknown principal")
				return
			}
			ctx := domain.WithPrincipal(r.Context(), domain.ContextPrincipal{
				Name:    p.Name,
				IsAdmin: p.IsAdmin,
				Type:    p.Type,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *Authenticator) fromBearer(r *http.Request) string {
	if a.validator == nil {
		return ""
	}
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	claims, err := a.validator.Validate(r.Context(), strings.TrimPrefix(auth, "Bearer "))
	if err != nil {
		a.logger.Debug("bearer token rejected", "error", err)
		return ""
	}
	return claims.Claim(a.cfg.NameClaim)
}

func (a *Authenticator) fromAPIKey(r *http.Request) string {
	if !a.cfg.APIKeyEnabled || a.apiKeys == nil {
		return ""
	}
	key := r.Header.Get(a.cfg.APIKeyHeader)
	if key == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(key))
	name, ok := a.apiKeys.LookupPrincipalByAPIKeyHash(hex.EncodeToString(hash[:]))
	if !ok {
		return ""
	}
	return name
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    http.StatusUnauthorized,
		"message": msg,
	})
}
