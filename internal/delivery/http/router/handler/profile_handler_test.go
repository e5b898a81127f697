package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/delivery/http/middleware"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/errors"
	mockUsecase "usersvc/internal/mocks/usecase"
)

func newProfileHandlerServer(t *testing.T) (*echo.Echo, *mockUsecase.MockProfileUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockProfileUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	// Stand-in for the auth middleware: trusts a pre-set user ID.
	asUser := func(userID int64) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				deliverycontext.SetUserID(c, userID)

				return next(c)
			}
		}
	}

	h := NewProfileHandler(uc, logger)
	e.GET("/profile", h.GetProfile, asUser(7))
	e.DELETE("/profile", h.DeleteProfile, asUser(7))

	return e, uc
}

func TestGetProfile_Success(t *testing.T) {
	e, uc := newProfileHandlerServer(t)

	birthdate := time.Date(1990, 4, 21, 0, 0, 0, 0, time.UTC)
	uc.On("GetProfile", mock.Anything, int64(7)).Return(&entity.User{
		ID:         7,
		Email:      "ana@example.com",
		Username:   "ana",
		PublicName: "Ana",
		Birthdate:  &birthdate,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"user_id":7,"email":"ana@example.com","username":"ana","public_name":"Ana","birthdate":"1990-04-21"}`,
		rec.Body.String())
}

func TestGetProfile_NoBirthdateSerializesNull(t *testing.T) {
	// The birthdate key is always present on the profile body, null when the
	// record has none.
	e, uc := newProfileHandlerServer(t)

	uc.On("GetProfile", mock.Anything, int64(7)).Return(&entity.User{
		ID:         7,
		Email:      "ana@example.com",
		Username:   "ana",
		PublicName: "Ana",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"user_id":7,"email":"ana@example.com","username":"ana","public_name":"Ana","birthdate":null}`,
		rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"birthdate":null`)
}

func TestGetProfile_DeletedAccount(t *testing.T) {
	// The token still authenticates, but the record is gone.
	e, uc := newProfileHandlerServer(t)

	uc.On("GetProfile", mock.Anything, int64(7)).
		Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile not found"))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"User not found"}`, rec.Body.String())
}

func TestDeleteProfile_Success(t *testing.T) {
	e, uc := newProfileHandlerServer(t)

	uc.On("DeleteProfile", mock.Anything, int64(7)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/profile", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
