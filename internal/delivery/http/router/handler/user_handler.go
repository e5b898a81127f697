package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"usersvc/internal/delivery/http/response"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/errors"
	"usersvc/internal/usecase"
)

// UserHandler serves the public directory lookups.
type UserHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetByUsername looks up a user by their public handle.
func (h *UserHandler) GetByUsername(c echo.Context) error {
	username := c.Param("username")
	if username == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "username path parameter missing")
	}

	user, err := h.uc.GetByUsername(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewUserSummaryBody(user))
}

// GetByID looks up a user by their numeric ID.
func (h *UserHandler) GetByID(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "user_id must be an integer")
	}

	user, err := h.uc.GetByID(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewUserSummaryBody(user))
}

// Search returns users whose username or public name matches the q query
// parameter, with skip/limit pagination.
func (h *UserHandler) Search(c echo.Context) error {
	input := &usecase.SearchInput{
		Query: c.QueryParam("q"),
	}

	if raw := c.QueryParam("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "skip must be an integer")
		}
		input.Skip = skip
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "limit must be an integer")
		}
		input.Limit = limit
	}

	users, err := h.uc.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewUserSummaryBodies(users))
}
