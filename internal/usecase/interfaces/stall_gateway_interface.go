package interfaces

import (
	"context"
	"portal_expositor/internal/domain/entities"
)

// IStallGateway reaches the /stalls endpoints of the portal backend. The bearer
// token travels in ctx (entities.ContextWithSession).

type IStallGateway interface {
	List(ctx context.Context, page, pageSize int) (entities.StallPage, error)
	GetByID(ctx context.Context, stallID string) (entities.Stall, error)
	Create(ctx context.Context, input entities.UpsertStall) (entities.UpsertStallResult, error)
	Update(ctx context.Context, stallID string, input entities.UpsertStall) (entities.UpsertStallResult, error)
	Delete(ctx context.Context, stallID string) error
}
