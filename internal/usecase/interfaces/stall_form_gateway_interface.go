package interfaces

import (
	"context"
	"portal_expositor/internal/domain/entities"
)

// IStallFormGateway reaches public/fairs/:fairId/forms/stalls. The visitor is
// identified by the document of access, never by a bearer token.
type IStallFormGateway interface {
	Validate(ctx context.Context, access entities.FormAccess) (entities.StallsFormContext, error)
	ListStalls(ctx context.Context, access entities.FormAccess) (entities.OwnerStalls, error)
	Create(ctx context.Context, access entities.FormAccess, input entities.UpsertStall) (entities.UpsertStallResult, error)
	Update(ctx context.Context, access entities.FormAccess, stallID string, input entities.UpsertStall) (entities.UpsertStallResult, error)
	Delete(ctx context.Context, access entities.FormAccess, stallID string) error
	Select(ctx context.Context, access entities.FormAccess, stallID string) (entities.StallFairLink, error)
	Unlink(ctx context.Context, access entities.FormAccess, stallID string) error
}
