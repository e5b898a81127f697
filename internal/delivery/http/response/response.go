// Package response holds the wire shapes of the public API. The bodies are
// deliberately thin: errors carry a single "detail" field and simple
// confirmations carry a single "msg" field, so existing clients keep working.
package response

import (
	"time"

	"github.com/labstack/echo/v4"

	"usersvc/internal/domain/entity"
)

// DetailBody is the error envelope every non-2xx answer uses.
type DetailBody struct {
	Detail string `json:"detail"`
}

// MsgBody is the confirmation envelope for simple success answers.
type MsgBody struct {
	Msg string `json:"msg"`
}

// TokenBody is the login success payload.
type TokenBody struct {
	AccessToken string `json:"access_token"`
	UserID      int64  `json:"user_id"`
}

// ProfileBody is the authenticated user's own projection. Birthdate is
// nullable but always present. The password hash never leaves the service.
type ProfileBody struct {
	UserID     int64   `json:"user_id"`
	Email      string  `json:"email"`
	Username   string  `json:"username"`
	PublicName string  `json:"public_name"`
	Birthdate  *string `json:"birthdate"`
}

// UserSummaryBody is the public directory projection. Birthdate is private
// to the profile endpoint and never appears here.
type UserSummaryBody struct {
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	PublicName string `json:"public_name"`
	Email      string `json:"email"`
}

// Detail writes an error answer with the given status code.
func Detail(c echo.Context, statusCode int, detail string) error {
	return c.JSON(statusCode, DetailBody{Detail: detail})
}

// Msg writes a confirmation answer with the given status code.
func Msg(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, MsgBody{Msg: msg})
}

// NewProfileBody maps a domain user onto the profile projection.
func NewProfileBody(user *entity.User) ProfileBody {
	body := ProfileBody{
		UserID:     user.ID,
		Email:      user.Email,
		Username:   user.Username,
		PublicName: user.PublicName,
	}
	if user.Birthdate != nil {
		birthdate := user.Birthdate.Format(time.DateOnly)
		body.Birthdate = &birthdate
	}

	return body
}

// NewUserSummaryBody maps a domain user onto the public directory projection.
func NewUserSummaryBody(user *entity.User) UserSummaryBody {
	return UserSummaryBody{
		UserID:     user.ID,
		Username:   user.Username,
		PublicName: user.PublicName,
		Email:      user.Email,
	}
}

// NewUserSummaryBodies maps a slice of domain users for list answers.
func NewUserSummaryBodies(users []*entity.User) []UserSummaryBody {
	bodies := make([]UserSummaryBody, 0, len(users))
	for _, user := range users {
		bodies = append(bodies, NewUserSummaryBody(user))
	}

	return bodies
}
