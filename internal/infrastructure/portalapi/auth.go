package portalapi

import (
	"context"
	"net/http"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase/interfaces"
)

// AuthGateway calls the public exhibitor-auth endpoints.
type AuthGateway struct {
	client *Client
}

var _ interfaces.IAuthGateway = (*AuthGateway)(nil)

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

func (g *AuthGateway) Login(ctx context.Context, input entities.LoginPayload) (entities.LoginResult, error) {
	var out entities.LoginResult
	err := g.client.do(ctx, call{method: http.MethodPost, path: "exhibitor-auth/login", body: input, out: &out})
	return out, err
}

func (g *AuthGateway) ValidateToken(ctx context.Context, token string) (entities.PasswordTokenValidation, error) {
	var out entities.PasswordTokenValidation
	body := entities.ValidateTokenPayload{Token: token}
	err := g.client.do(ctx, call{method: http.MethodPost, path: "exhibitor-auth/validate-token", body: body, out: &out})
	return out, err
}

func (g *AuthGateway) SetPassword(ctx context.Context, input entities.SetPasswordPayload) (entities.SetPasswordResult, error) {
	var out entities.SetPasswordResult
	err := g.client.do(ctx, call{method: http.MethodPost, path: "exhibitor-auth/set-password", body: input, out: &out})
	return out, err
}
