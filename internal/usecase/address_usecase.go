package usecase

import (
	"context"
	"errors"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase/interfaces"
	"portal_expositor/pkg/debounce"
	"portal_expositor/pkg/format"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidCEP       = errors.New("invalid cep")
	ErrAddressNotFound  = errors.New("CEP não encontrado.")
	ErrLookupSuperseded = errors.New("lookup superseded by a newer one")
)

const DefaultCEPDebounce = 450 * time.Millisecond

type IAddressUseCase interface {
	Lookup(ctx context.Context, cep string) (entities.Address, error)
}

// AddressUseCase autofills an address from a postal code. Lookups of one
// owner are debounced: only the last of a burst reaches the network.
type AddressUseCase struct {
	lookup    interfaces.IAddressLookup
	debouncer *debounce.Debouncer
}

var _ IAddressUseCase = (*AddressUseCase)(nil)

func NewAddressUseCase(lookup interfaces.IAddressLookup, delay time.Duration) *AddressUseCase {
	if delay <= 0 {
		delay = DefaultCEPDebounce
	}
	return &AddressUseCase{lookup: lookup, debouncer: debounce.New(delay)}
}

func (u *AddressUseCase) Lookup(ctx context.Context, cep string) (entities.Address, error) {
	ownerID, err := ownerFrom(ctx)
	if err != nil {
		return entities.Address{}, err
	}
	digits := format.OnlyDigits(cep)
	if len(digits) != 8 {
		return entities.Address{}, ErrInvalidCEP
	}

	if err := u.debouncer.Wait(ctx, ownerID); err != nil {
		if errors.Is(err, debounce.ErrSuperseded) {
			return entities.Address{}, ErrLookupSuperseded
		}
		return entities.Address{}, err
	}

	addr, err := u.lookup.Lookup(ctx, digits)
	if err != nil {
		log.Info().Str("owner_id", ownerID).Str("cep", digits).Err(err).Msg("[address][usecase] lookup failed")
		return entities.Address{}, ErrAddressNotFound
	}
	return addr, nil
}
