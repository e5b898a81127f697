package service

import "errors"

// Validation failure kinds. The distinction exists for internal diagnostics
// only; at the HTTP boundary both collapse into the same 401 response so
// callers cannot tell an expired token from a forged one.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenService defines the interface for issuing and validating session tokens.
// Tokens are self-contained and signed; validation needs no server-side state.
type TokenService interface {
	// Issue creates a signed session token carrying the user ID,
	// valid from now until now plus the configured TTL.
	Issue(userID int64) (string, error)

	// Validate checks the token's signature and expiry and returns the user ID
	// it was issued for. Fails with ErrTokenExpired or ErrTokenInvalid.
	Validate(token string) (int64, error)
}
