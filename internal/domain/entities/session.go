package entities

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Session is the authenticated context of one request: the bearer token the
// backend issued and what the portal learned from its claims.
type Session struct {
	Token     string
	OwnerID   string
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt.IsZero() || !now.Before(s.ExpiresAt)
}

// TokenDigest identifies the bearer token without keeping it around. Only the
// backend can verify a token, so anything the portal holds on behalf of a
// session is bound to this digest and not only to the owner claim.
func (s Session) TokenDigest() string {
	if s.Token == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(s.Token))
	return hex.EncodeToString(sum[:])
}

type sessionKey struct{}

// ContextWithSession attaches s to ctx for the gateways and use cases downstream.
func ContextWithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}
