package interfaces

import (
	"context"
	"portal_expositor/internal/domain/entities"
)

// IAddressLookup resolves a brazilian postal code (8 digits) to an address.

type IAddressLookup interface {
	Lookup(ctx context.Context, cep string) (entities.Address, error)
}
