package usecase

import (
	"context"
	"errors"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrFairNotFound        = errors.New("fair not found")
	ErrInvalidFairID       = errors.New("invalid fair id")
	ErrNoPurchaseAvailable = errors.New("no purchase with remaining quantity for this stall size")
	ErrPurchaseMismatch    = errors.New("purchase does not match the stall size")
)

type IFairUseCase interface {
	List(ctx context.Context) ([]entities.FairView, error)
	LinkStall(ctx context.Context, fairID, stallID, purchaseID string) error
	UnlinkStall(ctx context.Context, fairID, stallID string) error
}

type FairUseCase struct {
	fairs  interfaces.IFairGateway
	stalls IStallUseCase
	cache  interfaces.IQueryCache
	now    func() time.Time
}

var _ IFairUseCase = (*FairUseCase)(nil)

func NewFairUseCase(fairs interfaces.IFairGateway, stalls IStallUseCase, cache interfaces.IQueryCache) *FairUseCase {
	return &FairUseCase{fairs: fairs, stalls: stalls, cache: cache, now: time.Now}
}

// List returns every fair of the owner with its derived payment and link view.
func (u *FairUseCase) List(ctx context.Context) ([]entities.FairView, error) {
	fairs, err := u.list(ctx)
	if err != nil {
		return nil, err
	}
	today := u.now()
	views := make([]entities.FairView, 0, len(fairs))
	for _, f := range fairs {
		views = append(views, entities.BuildFairView(f, today))
	}
	return views, nil
}

func (u *FairUseCase) list(ctx context.Context) ([]entities.ExhibitorFair, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	v, err := u.cache.Fetch(ctx, session, cacheFairs+"/list", func(ctx context.Context) (any, error) {
		res, err := u.fairs.List(ctx)
		if err != nil {
			return nil, err
		}
		return res.Items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entities.ExhibitorFair), nil
}

// LinkStall puts a stall in a fair. Without a purchaseID the only compatible
// purchase is pinned when there is exactly one; with several the backend
// picks. A fair with no remaining slot of the stall's size is refused locally.
func (u *FairUseCase) LinkStall(ctx context.Context, fairID, stallID, purchaseID string) error {
	fairID, stallID, purchaseID = strings.TrimSpace(fairID), strings.TrimSpace(stallID), strings.TrimSpace(purchaseID)
	if fairID == "" {
		return ErrInvalidFairID
	}
	if stallID == "" {
		return ErrInvalidStallID
	}
	ownerID, err := ownerFrom(ctx)
	if err != nil {
		return err
	}

	fair, err := u.find(ctx, fairID)
	if err != nil {
		return err
	}
	stall, err := u.stalls.Get(ctx, stallID)
	if err != nil {
		return err
	}

	compatible := fair.CompatiblePurchases(stall.StallSize)
	if len(compatible) == 0 {
		log.Info().Str("owner_id", ownerID).Str("fair_id", fairID).Str("stall_size", string(stall.StallSize)).Msg("[fair][usecase] no purchase available")
		return ErrNoPurchaseAvailable
	}
	if purchaseID != "" {
		if !containsPurchase(compatible, purchaseID) {
			return ErrPurchaseMismatch
		}
	} else if len(compatible) == 1 {
		purchaseID = compatible[0].ID
	}

	if err := u.fairs.LinkStall(ctx, fairID, stallID, purchaseID); err != nil {
		log.Warn().Str("owner_id", ownerID).Str("fair_id", fairID).Str("stall_id", stallID).Err(err).Msg("[fair][usecase] link failed")
		return err
	}
	u.invalidate(ownerID)
	log.Info().Str("owner_id", ownerID).Str("fair_id", fairID).Str("stall_id", stallID).Str("purchase_id", purchaseID).Msg("[fair][usecase] stall linked")
	return nil
}

func (u *FairUseCase) UnlinkStall(ctx context.Context, fairID, stallID string) error {
	fairID, stallID = strings.TrimSpace(fairID), strings.TrimSpace(stallID)
	if fairID == "" {
		return ErrInvalidFairID
	}
	if stallID == "" {
		return ErrInvalidStallID
	}
	ownerID, err := ownerFrom(ctx)
	if err != nil {
		return err
	}

	if err := u.fairs.UnlinkStall(ctx, fairID, stallID); err != nil {
		log.Warn().Str("owner_id", ownerID).Str("fair_id", fairID).Str("stall_id", stallID).Err(err).Msg("[fair][usecase] unlink failed")
		return err
	}
	u.invalidate(ownerID)
	log.Info().Str("owner_id", ownerID).Str("fair_id", fairID).Str("stall_id", stallID).Msg("[fair][usecase] stall unlinked")
	return nil
}

func (u *FairUseCase) find(ctx context.Context, fairID string) (entities.ExhibitorFair, error) {
	fairs, err := u.list(ctx)
	if err != nil {
		return entities.ExhibitorFair{}, err
	}
	for _, f := range fairs {
		if f.FairID == fairID {
			return f, nil
		}
	}
	return entities.ExhibitorFair{}, ErrFairNotFound
}

func (u *FairUseCase) invalidate(ownerID string) {
	u.cache.Invalidate(ownerID, cacheFairs)
	u.cache.Invalidate(ownerID, cacheStalls)
}

func containsPurchase(purchases []entities.Purchase, id string) bool {
	for _, p := range purchases {
		if p.ID == id {
			return true
		}
	}
	return false
}
