package router

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

	"usersvc/config"
	"usersvc/internal/delivery/http/middleware"
	"usersvc/internal/delivery/http/router/handler"
	"usersvc/internal/delivery/http/validator"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/errors"
	"usersvc/internal/infra/auth"
	"usersvc/internal/infra/metrics"
	mockUsecase "usersvc/internal/mocks/usecase"
)

type routerFixtures struct {
	server      *echo.Echo
	userUC      *mockUsecase.MockUserUsecase
	profileUC   *mockUsecase.MockProfileUsecase
	directoryUC *mockUsecase.MockDirectoryUsecase
	issueToken  func(userID int64) string
}

// newRouterFixtures wires the full HTTP surface with a real token service
// and mocked usecases, so routes, middleware and error mapping are all
// exercised together.
func newRouterFixtures(t *testing.T) *routerFixtures {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			JWTSecret:    "integration-test-secret",
			JWTAlgorithm: "HS256",
			TokenTTL:     time.Hour,
		},
	}
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()

	userUC := mockUsecase.NewMockUserUsecase(t)
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	directoryUC := mockUsecase.NewMockDirectoryUsecase(t)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(userUC, logger, m),
		ProfileHandler: handler.NewProfileHandler(profileUC, logger),
		UserHandler:    handler.NewUserHandler(directoryUC, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
		Metrics:        m,
	}).RegisterRoutes(e)

	return &routerFixtures{
		server:      e,
		userUC:      userUC,
		profileUC:   profileUC,
		directoryUC: directoryUC,
		issueToken: func(userID int64) string {
			token, err := tokenSvc.Issue(userID)
			require.NoError(t, err)

			return token
		},
	}
}

func (f *routerFixtures) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	return rec
}

func TestRouter_RootBanner(t *testing.T) {
	f := newRouterFixtures(t)

	rec := f.do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"User Service running!"}`, rec.Body.String())
}

func TestRouter_HealthCheck(t *testing.T) {
	f := newRouterFixtures(t)

	rec := f.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_MetricsExposition(t *testing.T) {
	f := newRouterFixtures(t)

	rec := f.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_ProfileRequiresToken(t *testing.T) {
	f := newRouterFixtures(t)

	rec := f.do(http.MethodGet, "/profile", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Missing credentials"}`, rec.Body.String())
}

func TestRouter_ProfileWithToken(t *testing.T) {
	f := newRouterFixtures(t)

	f.profileUC.On("GetProfile", mock.Anything, int64(7)).
		Return(&entity.User{ID: 7, Email: "ana@example.com", Username: "ana", PublicName: "Ana"}, nil)

	rec := f.do(http.MethodGet, "/profile", f.issueToken(7))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"user_id":7,"email":"ana@example.com","username":"ana","public_name":"Ana","birthdate":null}`,
		rec.Body.String())
}

func TestRouter_TokenOutlivesDeletedAccount(t *testing.T) {
	// Tokens are not revoked on account deletion. The token still passes the
	// auth gate; the profile lookup is what reports the account gone.
	f := newRouterFixtures(t)
	token := f.issueToken(7)

	f.profileUC.On("DeleteProfile", mock.Anything, int64(7)).Return(nil).Once()
	f.profileUC.On("GetProfile", mock.Anything, int64(7)).
		Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")).Once()

	deleteRec := f.do(http.MethodDelete, "/profile", token)
	require.Equal(t, http.StatusNoContent, deleteRec.Code)

	getRec := f.do(http.MethodGet, "/profile", token)
	require.Equal(t, http.StatusNotFound, getRec.Code)
	assert.JSONEq(t, `{"detail":"User not found"}`, getRec.Body.String())
}

func TestRouter_DirectoryIsPublic(t *testing.T) {
	f := newRouterFixtures(t)

	f.directoryUC.On("GetByUsername", mock.Anything, "ana").
		Return(&entity.User{ID: 7, Email: "ana@example.com", Username: "ana", PublicName: "Ana"}, nil)

	rec := f.do(http.MethodGet, "/users/by-username/ana", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
