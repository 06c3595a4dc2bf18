package v1handler

import (
	"context"
	"net/http"
	"strings"

	"foodtrace/internal/config"
	"foodtrace/pkg/auth"
	"foodtrace/pkg/controller"
	"foodtrace/pkg/domain"
	"foodtrace/pkg/serrors"
)

type contextKey string

// PrincipalKey is the context key of the authenticated domain.Principal.
const PrincipalKey contextKey = "principal"

const (
	scopeConsumer     = domain.ScopeConsumer
	scopeManufacturer = domain.ScopeManufacturer
)

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key access tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates bearer tokens and enforces route scopes.
type SecHandler struct {
	validator *auth.Validator
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	v, err := auth.NewValidator(opts.PublicKey)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &SecHandler{validator: v}, nil
}

// HandleBearerAuth validates token and stores its principal in the context.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	p, err := s.validator.Validate(token)
	if err != nil {
		return ctx, err //nolint: wrapcheck
	}

	return context.WithValue(ctx, PrincipalKey, p), nil
}

// Require returns a middleware admitting requests that carry a valid bearer
// token of the given scope. A missing or invalid token is answered with 401,
// a token of another scope with 403.
func (s *SecHandler) Require(scope domain.Scope) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				controller.WriteError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "Not authenticated"))

				return
			}

			ctx, err := s.HandleBearerAuth(r.Context(), token)
			if err != nil {
				controller.WriteError(r.Context(), w, err)

				return
			}
			if p := GetPrincipalFromContext(ctx); p.Scope != scope {
				controller.WriteError(ctx, w, serrors.With(serrors.ErrForbidden,
					"Insufficient permissions: %s scope required", scope))

				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)

	return token, token != ""
}

// GetPrincipalFromContext returns the authenticated principal, or the zero
// value outside authenticated routes.
func GetPrincipalFromContext(ctx context.Context) domain.Principal {
	p, _ := ctx.Value(PrincipalKey).(domain.Principal)

	return p
}
