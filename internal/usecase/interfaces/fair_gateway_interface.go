package interfaces

import (
	"context"
	"portal_expositor/internal/domain/entities"
)

// IFairGateway reaches /exhibitor/fairs. An empty purchaseID lets the backend
// pick the first compatible purchase.
type IFairGateway interface {
	List(ctx context.Context) (entities.FairList, error)
	LinkStall(ctx context.Context, fairID, stallID, purchaseID string) error
	UnlinkStall(ctx context.Context, fairID, stallID string) error
}
