// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"usersvc/config"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"
)

// supportedMethods is the closed set of signing algorithms the service
// accepts from configuration. Asymmetric methods and "none" are rejected.
var supportedMethods = map[string]*jwt.SigningMethodHMAC{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Secret, method and TTL are resolved once at startup and immutable afterwards.
type jwtService struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
}

// sessionClaims is the payload of a session token: the subject user plus the
// registered iat/exp claims.
type sessionClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService. A missing secret or an
// unsupported algorithm is a startup error, so the process fails fast instead
// of at the first request.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.JWTSecret == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	method, ok := supportedMethods[cfg.Auth.JWTAlgorithm]
	if !ok {
		return nil, errors.Errorf("unsupported jwt algorithm: %q", cfg.Auth.JWTAlgorithm)
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	return &jwtService{
		secret: []byte(cfg.Auth.JWTSecret),
		method: method,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed session token for the given user.
func (s *jwtService) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Validate checks the token's signature and expiry and returns the embedded
// user ID. Expiry is reported as ErrTokenExpired; every other failure
// (bad signature, malformed structure, wrong algorithm, missing subject)
// collapses into ErrTokenInvalid.
func (s *jwtService) Validate(tokenString string) (int64, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Pin the signing method. A token declaring any other algorithm,
		// including "none", never reaches signature verification.
		if token.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, errors.Wrap(service.ErrTokenExpired, err.Error())
		}

		return 0, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	if claims.UserID <= 0 {
		return 0, errors.Wrap(service.ErrTokenInvalid, "missing user_id claim")
	}

	return claims.UserID, nil
}
