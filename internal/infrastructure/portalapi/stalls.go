package portalapi

import (
	"context"
	"net/http"
	"net/url"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase/interfaces"
	"strconv"
)

type StallGateway struct {
	client *Client
}

var _ interfaces.IStallGateway = (*StallGateway)(nil)

func NewStallGateway(client *Client) *StallGateway {
	return &StallGateway{client: client}
}

func (g *StallGateway) List(ctx context.Context, page, pageSize int) (entities.StallPage, error) {
	var out entities.StallPage
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))
	err := g.client.do(ctx, call{method: http.MethodGet, path: "stalls", query: query, out: &out})
	return out, err
}

func (g *StallGateway) GetByID(ctx context.Context, stallID string) (entities.Stall, error) {
	var out entities.Stall
	err := g.client.do(ctx, call{method: http.MethodGet, path: "stalls/" + url.PathEscape(stallID), out: &out})
	return out, err
}

func (g *StallGateway) Create(ctx context.Context, input entities.UpsertStall) (entities.UpsertStallResult, error) {
	var out entities.UpsertStallResult
	err := g.client.do(ctx, call{method: http.MethodPost, path: "stalls", body: input, out: &out})
	return out, err
}

func (g *StallGateway) Update(ctx context.Context, stallID string, input entities.UpsertStall) (entities.UpsertStallResult, error) {
	var out entities.UpsertStallResult
	err := g.client.do(ctx, call{method: http.MethodPatch, path: "stalls/" + url.PathEscape(stallID), body: input, out: &out})
	return out, err
}

func (g *StallGateway) Delete(ctx context.Context, stallID string) error {
	var out entities.OKResult
	return g.client.do(ctx, call{method: http.MethodDelete, path: "stalls/" + url.PathEscape(stallID), out: &out})
}
