package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"commuta_admin/internal/models"
)

type loginPayload struct {
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

// Login exchanges admin credentials for a bearer token and stores it in the session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	const fallback = "Login failed"

	status, raw, err := c.send(ctx, http.MethodPost, "/login", nil, http.Header{},
		loginPayload{EmailAddress: email, Password: password})
	if err != nil {
		return fmt.Errorf("unable to login: %w", err)
	}

	var res models.LoginResponse
	decodeErr := json.Unmarshal(raw, &res)
	if status < 200 || status > 299 || (decodeErr == nil && res.Error) {
		msg := fallback
		if decodeErr == nil && res.Message != "" {
			msg = res.Message
		}
		return &Error{Status: status, Message: msg}
	}
	if decodeErr != nil {
		return &Error{Status: status, Message: fallback, Err: fmt.Errorf("%w: %v", ErrMalformed, decodeErr)}
	}
	if err := validate.Struct(res); err != nil {
		return &Error{Status: status, Message: fallback, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}

	if err := c.sess.SetToken(ctx, res.Token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}
	return nil
}

// Logout forgets the stored token. The API has no logout endpoint.
func (c *Client) Logout(ctx context.Context) error {
	return c.sess.Clear(ctx)
}
