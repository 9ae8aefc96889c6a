package interfaces

import (
	"context"
	"portal_expositor/internal/domain/entities"
)

// IAuthGateway covers the public exhibitor-auth endpoints: none of them needs a
// session.
type IAuthGateway interface {
	Login(ctx context.Context, input entities.LoginPayload) (entities.LoginResult, error)
	ValidateToken(ctx context.Context, token string) (entities.PasswordTokenValidation, error)
	SetPassword(ctx context.Context, input entities.SetPasswordPayload) (entities.SetPasswordResult, error)
}

// ITokenInspector reads a bearer token without verifying its signature. The
// backend signs and verifies; the portal only needs the owner and the expiry.
type ITokenInspector interface {
	Inspect(token string) (entities.Session, error)
}
