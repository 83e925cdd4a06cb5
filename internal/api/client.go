// Package api is the data-access layer for the Commuta admin REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"commuta_admin/internal/models"
)

// maxBody caps how much of a response is read.
const maxBody = 16 << 20

// TokenStore is the session the client reads the bearer token from.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Timeout bounds each request, overriding HTTPClient's own. Zero leaves
	// the client as is.
	Timeout time.Duration
}

// Client issues authenticated calls on behalf of one session.
type Client struct {
	baseURL string
	http    *http.Client
	sess    TokenStore
}

func New(cfg Config, sess TokenStore) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	if cfg.Timeout > 0 {
		timed := *hc
		timed.Timeout = cfg.Timeout
		hc = &timed
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    hc,
		sess:    sess,
	}
}

// call performs an authenticated request and returns the decoded envelope.
// fallback is the message used when the API gives none.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body any, fallback string) (*models.Envelope, error) {
	token, err := c.sess.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session token: %w", err)
	}
	if token == "" {
		return nil, ErrUnauthenticated
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	header.Set("Cache-Control", "no-cache")

	status, raw, err := c.send(ctx, method, path, query, header, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fallback, err)
	}

	var env models.Envelope
	decodeErr := json.Unmarshal(raw, &env)

	if status < 200 || status > 299 {
		msg := fallback
		if decodeErr == nil && env.Message != "" {
			msg = env.Message
		}
		return nil, &Error{Status: status, Message: msg}
	}
	if decodeErr != nil {
		return nil, &Error{Status: status, Message: fallback, Err: fmt.Errorf("%w: %v", ErrMalformed, decodeErr)}
	}
	if env.Error {
		msg := env.Message
		if msg == "" {
			msg = fallback
		}
		st := env.Status
		if st == 0 {
			st = status
		}
		return nil, &Error{Status: st, Message: msg}
	}
	return &env, nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, header http.Header, body any) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, nil, err
	}
	for k, vs := range header {
		req.Header[k] = vs
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, raw, nil
}

// fetch runs a GET and decodes envelope data into T.
func fetch[T any](ctx context.Context, c *Client, path string, query url.Values, fallback string) (T, error) {
	var out T
	env, err := c.call(ctx, http.MethodGet, path, query, nil, fallback)
	if err != nil {
		return out, err
	}
	if err := validate.Struct(env); err != nil {
		return out, &Error{Status: env.Status, Message: fallback, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, &Error{Status: env.Status, Message: fallback, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	return out, nil
}
