// Package session holds the admin API bearer token for a browser session.
// The token is read by every API call, written at login and cleared at logout.
package session

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned by a Store when the session has no token.
var ErrNotFound = errors.New("session: not found")

// Store persists tokens by session id.
type Store interface {
	Get(ctx context.Context, id string) (string, error)
	Put(ctx context.Context, id, token string) error
	Delete(ctx context.Context, id string) error
}

// Session is the token holder handed to the API client for one browser session.
type Session struct {
	store Store
	id    string
}

func New(store Store, id string) *Session {
	return &Session{store: store, id: id}
}

func (s *Session) ID() string { return s.id }

// Token returns "" without error when no token is stored.
func (s *Session) Token(ctx context.Context) (string, error) {
	tok, err := s.store.Get(ctx, s.id)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return tok, nil
}

func (s *Session) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return s.Clear(ctx)
	}
	return s.store.Put(ctx, s.id, token)
}

func (s *Session) Clear(ctx context.Context) error {
	err := s.store.Delete(ctx, s.id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}
