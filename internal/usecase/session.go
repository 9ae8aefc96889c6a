package usecase

import (
	"context"
	"errors"
	"portal_expositor/internal/domain/entities"
)

// ErrSessionRequired means the request reached an owner-scoped use case without
// an authenticated session in its context.
var ErrSessionRequired = errors.New("session required")

// Cache key prefixes. Every key of a resource starts with its prefix so a
// single Invalidate covers lists and details.
const (
	cacheStalls = "stalls"
	cacheFairs  = "exhibitor-fairs"
)

func sessionFrom(ctx context.Context) (entities.Session, error) {
	s, ok := entities.SessionFromContext(ctx)
	if !ok || s.OwnerID == "" {
		return entities.Session{}, ErrSessionRequired
	}
	return s, nil
}

func ownerFrom(ctx context.Context) (string, error) {
	s, err := sessionFrom(ctx)
	return s.OwnerID, err
}
