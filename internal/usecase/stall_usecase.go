package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase/interfaces"
	"portal_expositor/pkg/upstream"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrStallNotFound  = errors.New("stall not found")
	ErrInvalidStallID = errors.New("invalid stall id")
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type IStallUseCase interface {
	List(ctx context.Context, page, pageSize int) (entities.StallPage, error)
	Get(ctx context.Context, stallID string) (entities.Stall, error)
	Delete(ctx context.Context, stallID string) error
}

type StallUseCase struct {
	stalls interfaces.IStallGateway
	cache  interfaces.IQueryCache
}

var _ IStallUseCase = (*StallUseCase)(nil)

func NewStallUseCase(stalls interfaces.IStallGateway, cache interfaces.IQueryCache) *StallUseCase {
	return &StallUseCase{stalls: stalls, cache: cache}
}

func (u *StallUseCase) List(ctx context.Context, page, pageSize int) (entities.StallPage, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return entities.StallPage{}, err
	}
	page, pageSize = normalizePage(page, pageSize)

	key := fmt.Sprintf("%s/list?page=%d&pageSize=%d", cacheStalls, page, pageSize)
	v, err := u.cache.Fetch(ctx, session, key, func(ctx context.Context) (any, error) {
		return u.stalls.List(ctx, page, pageSize)
	})
	if err != nil {
		return entities.StallPage{}, err
	}
	return v.(entities.StallPage), nil
}

// Get reads one stall. When the backend has no usable detail endpoint the
// owner's pages are scanned instead.
func (u *StallUseCase) Get(ctx context.Context, stallID string) (entities.Stall, error) {
	stallID = strings.TrimSpace(stallID)
	if stallID == "" {
		return entities.Stall{}, ErrInvalidStallID
	}
	session, err := sessionFrom(ctx)
	if err != nil {
		return entities.Stall{}, err
	}
	ownerID := session.OwnerID

	v, err := u.cache.Fetch(ctx, session, cacheStalls+"/detail/"+stallID, func(ctx context.Context) (any, error) {
		stall, err := u.stalls.GetByID(ctx, stallID)
		if err == nil {
			return stall, nil
		}
		if !detailUnavailable(err) {
			return nil, err
		}
		log.Info().Str("owner_id", ownerID).Str("stall_id", stallID).Int("status", upstream.StatusOf(err)).Msg("[stall][usecase] detail unavailable, scanning list")
		return u.scan(ctx, stallID)
	})
	if err != nil {
		return entities.Stall{}, err
	}
	return v.(entities.Stall), nil
}

func detailUnavailable(err error) bool {
	switch upstream.StatusOf(err) {
	case http.StatusNotFound, http.StatusMethodNotAllowed, http.StatusNotImplemented:
		return true
	}
	return false
}

func (u *StallUseCase) scan(ctx context.Context, stallID string) (entities.Stall, error) {
	for page := 1; ; page++ {
		res, err := u.stalls.List(ctx, page, maxPageSize)
		if err != nil {
			return entities.Stall{}, err
		}
		for _, s := range res.Items {
			if s.ID == stallID {
				return s, nil
			}
		}
		if len(res.Items) == 0 || page >= res.Meta.TotalPages {
			return entities.Stall{}, ErrStallNotFound
		}
	}
}

func (u *StallUseCase) Delete(ctx context.Context, stallID string) error {
	stallID = strings.TrimSpace(stallID)
	if stallID == "" {
		return ErrInvalidStallID
	}
	ownerID, err := ownerFrom(ctx)
	if err != nil {
		return err
	}

	if err := u.stalls.Delete(ctx, stallID); err != nil {
		log.Warn().Str("owner_id", ownerID).Str("stall_id", stallID).Err(err).Msg("[stall][usecase] delete failed")
		return err
	}
	u.cache.Invalidate(ownerID, cacheStalls)
	u.cache.Invalidate(ownerID, cacheFairs)
	log.Info().Str("owner_id", ownerID).Str("stall_id", stallID).Msg("[stall][usecase] deleted")
	return nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return page, min(pageSize, maxPageSize)
}
