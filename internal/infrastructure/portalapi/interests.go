package portalapi

import (
	"context"
	"net/http"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase/interfaces"
	"portal_expositor/pkg/upstream"
	"strings"
)

const msgInterestFallback = "Não foi possível enviar seu cadastro agora."

type InterestGateway struct {
	client *Client
}

var _ interfaces.IInterestGateway = (*InterestGateway)(nil)

func NewInterestGateway(client *Client) *InterestGateway {
	return &InterestGateway{client: client}
}

// Upsert registers the interest. A rejected form reports every backend message
// at once.
func (g *InterestGateway) Upsert(ctx context.Context, input entities.PublicInterest) (entities.PublicInterestResult, error) {
	var out entities.PublicInterestResult
	err := g.client.do(ctx, call{method: http.MethodPost, path: "public/interests/upsert", body: input, out: &out})
	if apiErr, ok := upstream.As(err); ok && apiErr.Kind == upstream.KindHTTP {
		if len(apiErr.Messages) > 0 {
			apiErr.Message = strings.Join(apiErr.Messages, " ")
		} else {
			apiErr.Message = msgInterestFallback
		}
	}
	return out, err
}
