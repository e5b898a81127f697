package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/delivery/http/response"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/errors"
	"usersvc/internal/usecase"
)

// ProfileHandler serves the authenticated user's own record.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns the caller's own record. Runs behind Authenticate, so
// the user ID is already on the context.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrUnauthorized, "no authenticated user on context")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewProfileBody(user))
}

// DeleteProfile permanently removes the caller's account.
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrUnauthorized, "no authenticated user on context")
	}

	if err := h.uc.DeleteProfile(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
