package portalapi

import (
	"context"
	"net/http"
	"net/url"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase/interfaces"
)

type FairGateway struct {
	client *Client
}

var _ interfaces.IFairGateway = (*FairGateway)(nil)

func NewFairGateway(client *Client) *FairGateway {
	return &FairGateway{client: client}
}

func (g *FairGateway) List(ctx context.Context) (entities.FairList, error) {
	var out entities.FairList
	err := g.client.do(ctx, call{method: http.MethodGet, path: "exhibitor/fairs", out: &out})
	return out, err
}

func (g *FairGateway) LinkStall(ctx context.Context, fairID, stallID, purchaseID string) error {
	var query url.Values
	if purchaseID != "" {
		query = url.Values{"purchaseId": {purchaseID}}
	}
	var out entities.OKResult
	return g.client.do(ctx, call{method: http.MethodPost, path: fairStallPath(fairID, stallID), query: query, out: &out})
}

func (g *FairGateway) UnlinkStall(ctx context.Context, fairID, stallID string) error {
	var out entities.OKResult
	return g.client.do(ctx, call{method: http.MethodDelete, path: fairStallPath(fairID, stallID), out: &out})
}

func fairStallPath(fairID, stallID string) string {
	return "exhibitor/fairs/" + url.PathEscape(fairID) + "/stalls/" + url.PathEscape(stallID)
}
