package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"usersvc/internal/delivery/http/middleware"
	"usersvc/internal/delivery/http/validator"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/errors"
	"usersvc/internal/infra/metrics"
	mockUsecase "usersvc/internal/mocks/usecase"
	"usersvc/internal/usecase"
)

func newAuthHandlerServer(t *testing.T) (*echo.Echo, *mockUsecase.MockUserUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockUserUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAuthHandler(uc, logger, metrics.New())
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)

	return e, uc
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRegister_Success(t *testing.T) {
	e, uc := newAuthHandlerServer(t)

	uc.On("Register", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
		return input.Email == "ana@example.com" &&
			input.Username == "ana" &&
			input.Birthdate != nil &&
			input.Birthdate.Format(time.DateOnly) == "1990-04-21"
	})).Return(&usecase.RegisterOutput{User: &entity.User{ID: 7}}, nil)

	rec := postJSON(e, "/auth/register",
		`{"email":"ana@example.com","password":"secret123","username":"ana","birthdate":"1990-04-21"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"User created"}`, rec.Body.String())
}

func TestRegister_EmailTaken(t *testing.T) {
	e, uc := newAuthHandlerServer(t)

	uc.On("Register", mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrEmailTaken, "email already registered"))

	rec := postJSON(e, "/auth/register",
		`{"email":"ana@example.com","password":"secret123","username":"ana"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"Email exists"}`, rec.Body.String())
}

func TestRegister_UsernameTaken(t *testing.T) {
	e, uc := newAuthHandlerServer(t)

	uc.On("Register", mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered"))

	rec := postJSON(e, "/auth/register",
		`{"email":"ana@example.com","password":"secret123","username":"ana"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"Username exists"}`, rec.Body.String())
}

func TestRegister_InvalidPayload(t *testing.T) {
	e, _ := newAuthHandlerServer(t)

	cases := map[string]string{
		"malformed email":  `{"email":"not-an-email","password":"secret123","username":"ana"}`,
		"missing password": `{"email":"ana@example.com","username":"ana"}`,
		"missing username": `{"email":"ana@example.com","password":"secret123"}`,
		"bad birthdate":    `{"email":"ana@example.com","password":"secret123","username":"ana","birthdate":"21/04/1990"}`,
		"not json":         `email=ana`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := postJSON(e, "/auth/register", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRegister_NoLengthConstraints(t *testing.T) {
	// Payload shape mirrors the existing client contract: password and
	// username have no length rules beyond being present.
	e, uc := newAuthHandlerServer(t)

	uc.On("Register", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
		return input.Password == "secret" && input.Username == "al"
	})).Return(&usecase.RegisterOutput{User: &entity.User{ID: 8}}, nil)

	rec := postJSON(e, "/auth/register",
		`{"email":"al@example.com","password":"secret","username":"al"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"User created"}`, rec.Body.String())
}

func TestRegister_UpstreamFailure(t *testing.T) {
	e, uc := newAuthHandlerServer(t)

	uc.On("Register", mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrUpstreamUnavailable, "insert failed"))

	rec := postJSON(e, "/auth/register",
		`{"email":"ana@example.com","password":"secret123","username":"ana"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"detail":"Upstream service unavailable"}`, rec.Body.String())
}

func TestLogin_Success(t *testing.T) {
	e, uc := newAuthHandlerServer(t)

	uc.On("Login", mock.Anything, mock.MatchedBy(func(input *usecase.LoginInput) bool {
		return input.Email == "ana@example.com" && input.Password == "secret123"
	})).Return(&usecase.LoginOutput{AccessToken: "signed.session.token", UserID: 7}, nil)

	rec := postJSON(e, "/auth/login", `{"email":"ana@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"signed.session.token","user_id":7}`, rec.Body.String())
}

func TestLogin_FailureCauseIsNotDisclosed(t *testing.T) {
	// The usecase answers the same error for an unknown email and a wrong
	// password; the wire bodies must be byte-identical too.
	e, uc := newAuthHandlerServer(t)

	uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")).Twice()

	unknownRec := postJSON(e, "/auth/login", `{"email":"ghost@example.com","password":"whatever1"}`)
	wrongRec := postJSON(e, "/auth/login", `{"email":"ana@example.com","password":"wrongpass"}`)

	require.Equal(t, http.StatusBadRequest, unknownRec.Code)
	require.Equal(t, http.StatusBadRequest, wrongRec.Code)
	assert.Equal(t, unknownRec.Body.String(), wrongRec.Body.String())
	assert.JSONEq(t, `{"detail":"Invalid email or password"}`, wrongRec.Body.String())
}
