package portalapi

import (
	"context"
	"net/http"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase/interfaces"
)

type OwnerGateway struct {
	client *Client
}

var _ interfaces.IOwnerGateway = (*OwnerGateway)(nil)

func NewOwnerGateway(client *Client) *OwnerGateway {
	return &OwnerGateway{client: client}
}

func (g *OwnerGateway) GetMe(ctx context.Context) (entities.OwnerMe, error) {
	var out entities.OwnerMe
	err := g.client.do(ctx, call{method: http.MethodGet, path: "owners/me", out: &out})
	return out, err
}

func (g *OwnerGateway) UpdateMe(ctx context.Context, input entities.UpdateOwnerMe) (entities.OwnerMe, error) {
	var out entities.OwnerMe
	err := g.client.do(ctx, call{method: http.MethodPatch, path: "owners/me", body: input, out: &out})
	return out, err
}
