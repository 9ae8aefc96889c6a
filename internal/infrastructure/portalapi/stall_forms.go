package portalapi

import (
	"context"
	"net/http"
	"net/url"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase/interfaces"
)

// StallFormGateway calls the public stall form of a fair. These routes carry
// no bearer token; the document in the body is the visitor's only credential.
type StallFormGateway struct {
	client *Client
}

var _ interfaces.IStallFormGateway = (*StallFormGateway)(nil)

func NewStallFormGateway(client *Client) *StallFormGateway {
	return &StallFormGateway{client: client}
}

type documentBody struct {
	Document string `json:"document" validate:"required,cpfcnpj"`
}

type stallBody struct {
	Document string               `json:"document" validate:"required,cpfcnpj"`
	Stall    entities.UpsertStall `json:"stall"`
}

type stallRefBody struct {
	Document string `json:"document" validate:"required,cpfcnpj"`
	StallID  string `json:"stallId" validate:"required"`
}

func formPath(access entities.FormAccess, rest ...string) string {
	p := "public/fairs/" + url.PathEscape(access.FairID) + "/forms/stalls"
	for _, r := range rest {
		p += "/" + url.PathEscape(r)
	}
	return p
}

func (g *StallFormGateway) Validate(ctx context.Context, access entities.FormAccess) (entities.StallsFormContext, error) {
	var out entities.StallsFormContext
	err := g.client.do(ctx, call{method: http.MethodPost, path: formPath(access, "validate"), body: documentBody{Document: access.Document}, out: &out})
	return out, err
}

func (g *StallFormGateway) ListStalls(ctx context.Context, access entities.FormAccess) (entities.OwnerStalls, error) {
	var out entities.OwnerStalls
	err := g.client.do(ctx, call{method: http.MethodGet, path: formPath(access, "by-document", access.Document), out: &out})
	return out, err
}

func (g *StallFormGateway) Create(ctx context.Context, access entities.FormAccess, input entities.UpsertStall) (entities.UpsertStallResult, error) {
	var out entities.UpsertStallResult
	err := g.client.do(ctx, call{method: http.MethodPost, path: formPath(access, "create"), body: stallBody{Document: access.Document, Stall: input}, out: &out})
	return out, err
}

func (g *StallFormGateway) Update(ctx context.Context, access entities.FormAccess, stallID string, input entities.UpsertStall) (entities.UpsertStallResult, error) {
	var out entities.UpsertStallResult
	err := g.client.do(ctx, call{method: http.MethodPatch, path: formPath(access, stallID), body: stallBody{Document: access.Document, Stall: input}, out: &out})
	return out, err
}

func (g *StallFormGateway) Delete(ctx context.Context, access entities.FormAccess, stallID string) error {
	var out entities.OKResult
	return g.client.do(ctx, call{method: http.MethodDelete, path: formPath(access, stallID), body: documentBody{Document: access.Document}, out: &out})
}

func (g *StallFormGateway) Select(ctx context.Context, access entities.FormAccess, stallID string) (entities.StallFairLink, error) {
	var out entities.StallFairLink
	err := g.client.do(ctx, call{method: http.MethodPost, path: formPath(access, "select"), body: stallRefBody{Document: access.Document, StallID: stallID}, out: &out})
	return out, err
}

func (g *StallFormGateway) Unlink(ctx context.Context, access entities.FormAccess, stallID string) error {
	var out entities.OKResult
	return g.client.do(ctx, call{method: http.MethodPost, path: formPath(access, "unlink"), body: stallRefBody{Document: access.Document, StallID: stallID}, out: &out})
}
