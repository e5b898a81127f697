// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"usersvc/internal/delivery/http/response"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/errors"
	"usersvc/internal/infra/metrics"
	"usersvc/internal/usecase"
)

// RegisterRequest is the wire shape of the registration payload.
type RegisterRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	Username   string `json:"username" validate:"required"`
	PublicName string `json:"public_name"`
	Birthdate  string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
}

// LoginRequest is the wire shape of the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler holds dependencies for the credential flow handlers.
type AuthHandler struct {
	uc      usecase.UserUsecase
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, logger *slog.Logger, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		uc:      uc,
		logger:  logger,
		metrics: m,
	}
}

// Register handles the user registration request. A successful registration
// answers a confirmation only; the client logs in separately for a token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		Username:   req.Username,
		PublicName: req.PublicName,
	}
	if req.Birthdate != "" {
		birthdate, err := time.Parse(time.DateOnly, req.Birthdate)
		if err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "birthdate must be YYYY-MM-DD")
		}
		input.Birthdate = &birthdate
	}

	if _, err := h.uc.Register(c.Request().Context(), input); err != nil {
		h.metrics.Registrations.WithLabelValues(metrics.SourceAPI, metrics.OutcomeFailure).Inc()

		return errors.WithStack(err)
	}

	h.metrics.Registrations.WithLabelValues(metrics.SourceAPI, metrics.OutcomeSuccess).Inc()

	return response.Msg(c, http.StatusOK, "User created")
}

// Login handles the credential check and issues a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.metrics.Logins.WithLabelValues(metrics.SourceAPI, metrics.OutcomeFailure).Inc()

		return errors.WithStack(err)
	}

	h.metrics.Logins.WithLabelValues(metrics.SourceAPI, metrics.OutcomeSuccess).Inc()

	return c.JSON(http.StatusOK, response.TokenBody{
		AccessToken: output.AccessToken,
		UserID:      output.UserID,
	})
}
