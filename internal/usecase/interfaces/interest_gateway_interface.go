package interfaces

import (
	"context"
	"portal_expositor/internal/domain/entities"
)

type IInterestGateway interface {
	Upsert(ctx context.Context, input entities.PublicInterest) (entities.PublicInterestResult, error)
}
