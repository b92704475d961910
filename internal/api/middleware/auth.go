package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/simfut/league-api/internal/api/metrics"
	"github.com/simfut/league-api/internal/core/domain"
	"github.com/simfut/league-api/internal/core/ports"
)

// contextKeyAuth is the echo context key under which the request's
// AuthContext is stored. Read it back with AuthFrom.
const contextKeyAuth = "auth_context"

// Auth extracts and verifies a bearer token and attaches an AuthContext to
// the request. It never rejects: a missing, malformed, badly signed or
// expired token downgrades to anonymous and the request proceeds, so public
// endpoints stay reachable with a garbage token. Protected operations
// re-check identity through the authorization guard, which is what turns
// anonymity into a 401. The user store is never consulted here: the role
// embedded in the token is trusted until expiry.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(contextKeyAuth, resolveAuth(c, tokens))
			return next(c)
		}
	}
}

func resolveAuth(c echo.Context, tokens ports.TokenService) domain.AuthContext {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		metrics.TokenVerificationsTotal.WithLabelValues("absent").Inc()
		return domain.Anonymous()
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		metrics.TokenVerificationsTotal.WithLabelValues("malformed").Inc()
		return domain.Anonymous()
	}

	claims, err := tokens.Verify(parts[1])
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues(verifyResult(err)).Inc()
		return domain.Anonymous()
	}

	metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
	return domain.Authenticated(claims.Subject, claims.Role)
}

func verifyResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "invalid_signature"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	default:
		return "malformed"
	}
}

// AuthFrom returns the AuthContext attached by Auth. Requests that never
// passed through the middleware read as anonymous.
func AuthFrom(c echo.Context) domain.AuthContext {
	if auth, ok := c.Get(contextKeyAuth).(domain.AuthContext); ok {
		return auth
	}
	return domain.Anonymous()
}
