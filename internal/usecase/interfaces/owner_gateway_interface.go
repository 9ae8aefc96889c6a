package interfaces

import (
	"context"
	"portal_expositor/internal/domain/entities"
)

type IOwnerGateway interface {
	GetMe(ctx context.Context) (entities.OwnerMe, error)
	UpdateMe(ctx context.Context, input entities.UpdateOwnerMe) (entities.OwnerMe, error)
}
