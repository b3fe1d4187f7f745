package middleware

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// CustomClaims contains the custom claims from Auth0 JWT
type CustomClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Validate implements validator.CustomClaims
func (c CustomClaims) Validate(ctx context.Context) error {
	return nil
}

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// ClaimsKey is the context key for JWT claims
	ClaimsKey contextKey = "claims"
	// UserIDKey is the context key for the authenticated subject
	UserIDKey contextKey = "user_id"
)

// TokenValidator validates a raw bearer token
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (interface{}, error)
}

// AuthMiddleware provides JWT validation middleware
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware creates a new AuthMiddleware with Auth0 configuration
func NewAuthMiddleware(domain, audience string) (*AuthMiddleware, error) {
	issuerURL, err := url.Parse("https://" + domain + "/")
	if err != nil {
		return nil, err
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)

	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{audience},
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &CustomClaims{}
		}),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, err
	}

	return NewAuthMiddlewareWithValidator(jwtValidator), nil
}

// NewAuthMiddlewareWithValidator creates an AuthMiddleware around any validator
func NewAuthMiddlewareWithValidator(v TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: v}
}

// Authenticate returns an Echo middleware that rejects requests without a valid token
func (m *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthorizedError(c, "Missing authorization header")
			}

			token, ok := bearerToken(authHeader)
			if !ok {
				return unauthorizedError(c, "Invalid authorization header format")
			}

			claims, err := m.validate(c.Request().Context(), token)
			if err != nil {
				log.Debug().Err(err).Msg("Token validation failed")
				return unauthorizedError(c, "Invalid token")
			}

			setClaims(c, claims)
			return next(c)
		}
	}
}

// OptionalAuthenticate returns an Echo middleware that attaches the user when
// a valid token is present and lets the request through anonymously otherwise
func (m *AuthMiddleware) OptionalAuthenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return next(c)
			}

			claims, err := m.validate(c.Request().Context(), token)
			if err != nil {
				log.Debug().Err(err).Msg("Ignoring invalid token on optional auth route")
				return next(c)
			}

			setClaims(c, claims)
			return next(c)
		}
	}
}

func (m *AuthMiddleware) validate(ctx context.Context, token string) (*validator.ValidatedClaims, error) {
	claims, err := m.validator.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	validatedClaims, ok := claims.(*validator.ValidatedClaims)
	if !ok || validatedClaims.RegisteredClaims.Subject == "" {
		return nil, errInvalidClaims
	}
	return validatedClaims, nil
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func setClaims(c echo.Context, claims *validator.ValidatedClaims) {
	ctx := context.WithValue(c.Request().Context(), ClaimsKey, claims)
	ctx = context.WithValue(ctx, UserIDKey, claims.RegisteredClaims.Subject)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetUserID extracts the authenticated subject from the context. It is empty
// for anonymous requests.
func GetUserID(c echo.Context) string {
	if id, ok := c.Request().Context().Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetClaims extracts the validated claims from the context
func GetClaims(c echo.Context) *validator.ValidatedClaims {
	if claims, ok := c.Request().Context().Value(ClaimsKey).(*validator.ValidatedClaims); ok {
		return claims
	}
	return nil
}

// GetCustomClaims extracts the custom claims from the context
func GetCustomClaims(c echo.Context) *CustomClaims {
	claims := GetClaims(c)
	if claims == nil {
		return nil
	}
	if custom, ok := claims.CustomClaims.(*CustomClaims); ok {
		return custom
	}
	return nil
}

// GetDisplayName returns the best human readable name for the user: the name
// claim, then the email claim, then the subject
func GetDisplayName(c echo.Context) string {
	if custom := GetCustomClaims(c); custom != nil {
		if name := strings.TrimSpace(custom.Name); name != "" {
			return name
		}
		if email := strings.TrimSpace(custom.Email); email != "" {
			return email
		}
	}
	return GetUserID(c)
}
