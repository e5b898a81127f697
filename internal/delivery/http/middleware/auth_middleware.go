package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "usersvc/internal/delivery/context"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware guards routes that require a valid session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the subject's user ID
// on the request context. An absent or malformed Authorization header answers
// "Missing credentials"; every token validation failure answers the single
// "Invalid or expired token" message, whatever the underlying cause.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrMissingCredentials, "authorization header missing")
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return errors.Wrap(domainerrors.ErrMissingCredentials, "authorization header is not a bearer token")
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		if tokenString == "" {
			return errors.Wrap(domainerrors.ErrMissingCredentials, "bearer token empty")
		}

		userID, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			// Collapse expired and forged tokens into one answer.
			return errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}
