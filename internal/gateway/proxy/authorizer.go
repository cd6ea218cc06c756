package proxy

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const bearerPrefix = "Bearer "

// TokenValidator checks an Authorization header value with the identity
// service. A nil return means the token is good.
type TokenValidator interface {
	Validate(ctx context.Context, authHeader string) error
}

// AuthServiceValidator calls the auth service's /validate endpoint,
// forwarding the caller's header value untouched. There is no cache and no
// deduplication: every request costs one validation round trip.
type AuthServiceValidator struct {
	baseURL string
	client  *http.Client
}

func NewAuthServiceValidator(baseURL string, timeout time.Duration) *AuthServiceValidator {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AuthServiceValidator{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (v *AuthServiceValidator) Validate(ctx context.Context, authHeader string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/validate", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", authHeader)

	resp, err := v.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("token validation status %d", resp.StatusCode)
	}
	return nil
}

// RequireValidToken gates a protected route. A missing or non-Bearer header
// answers 401 without any network call; otherwise the downstream handler
// runs only after validation has resolved successfully.
func RequireValidToken(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if err := validator.Validate(r.Context(), header); err != nil {
				slog.Default().InfoContext(r.Context(), "request rejected",
					"module", "proxy.authorizer",
					"operation", "validate_token",
					"outcome", "unauthorized",
					"path", r.URL.Path,
					"error", err,
				)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

var _ TokenValidator = (*AuthServiceValidator)(nil)
