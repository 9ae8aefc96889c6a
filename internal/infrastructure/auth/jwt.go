// Package auth inspects the bearer tokens issued by the portal backend. The
// portal has no signing key: it only reads the owner and the expiry.
package auth

import (
	"errors"
	"fmt"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase/interfaces"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenNoExpiry  = errors.New("token has no exp claim")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenNoOwner   = errors.New("token has no owner claim")
)

// Claims are the fields the portal reads. ownerId wins over sub when both are
// present.
type Claims struct {
	OwnerID string `json:"ownerId,omitempty"`
	jwt.RegisteredClaims
}

type Inspector struct {
	parser *jwt.Parser
	now    func() time.Time
}

var _ interfaces.ITokenInspector = (*Inspector)(nil)

func NewInspector() *Inspector {
	return &Inspector{parser: jwt.NewParser(), now: time.Now}
}

// Inspect decodes token without verifying its signature. Tokens that are not
// three segments, carry no numeric exp or expired are rejected.
func (i *Inspector) Inspect(token string) (entities.Session, error) {
	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return entities.Session{}, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
	if claims.ExpiresAt == nil {
		return entities.Session{}, ErrTokenNoExpiry
	}

	expiresAt := claims.ExpiresAt.Time
	if !i.now().Before(expiresAt) {
		return entities.Session{}, ErrTokenExpired
	}

	ownerID := claims.OwnerID
	if ownerID == "" {
		ownerID = claims.Subject
	}
	if ownerID == "" {
		return entities.Session{}, ErrTokenNoOwner
	}

	return entities.Session{Token: token, OwnerID: ownerID, ExpiresAt: expiresAt}, nil
}
