package api

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/freshcart/freshcart-go/internal/model"
)

type RegisterRequest struct {
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	PhoneNumber string     `json:"phoneNumber"`
	Role        model.Role `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*model.AuthUser, error) {
	code, raw, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/auth/register",
		json:     req,
		noAuth:   true,
		fallback: "registration failed",
	})
	if err != nil {
		return nil, authMessage(err)
	}
	var user model.AuthUser
	if err := c.decode(code, raw, &user); err != nil {
		return nil, err
	}
	if user.Token == "" {
		c.log.Warn("no token in register response", zap.String("email", user.Email))
	}
	return &user, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*model.AuthUser, error) {
	code, raw, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/auth/login",
		json:     req,
		noAuth:   true,
		fallback: "login failed",
	})
	if err != nil {
		return nil, authMessage(err)
	}
	var user model.AuthUser
	if err := c.decode(code, raw, &user); err != nil {
		return nil, err
	}
	if user.Token == "" {
		c.log.Warn("no token in login response", zap.String("email", user.Email))
	}
	return &user, nil
}

// Auth rejections come back as JSON rather than plain text; prefer the
// embedded message or error field when one is present.
func authMessage(err error) error {
	var se *StatusError
	if !errors.As(err, &se) {
		return err
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if jsonErr := json.Unmarshal([]byte(se.Message), &body); jsonErr == nil {
		switch {
		case body.Message != "":
			se.Message = body.Message
		case body.Error != "":
			se.Message = body.Error
		}
	}
	return se
}
