package usecase

import (
	"context"
	"errors"
	"fmt"
	"portal_expositor/internal/domain/entities"
	mock_interfaces "portal_expositor/internal/usecase/interfaces/mocks"
	"portal_expositor/pkg/upstream"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestStallUseCase_List(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		uc := NewStallUseCase(nil, nil)
		if _, err := uc.List(context.Background(), 1, 10); !errors.Is(err, ErrSessionRequired) {
			t.Fatalf("expected ErrSessionRequired, got %v", err)
		}
	})

	t.Run("normalizes pagination and uses an owner scoped key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIStallGateway(ctrl)
		cache := mock_interfaces.NewMockIQueryCache(ctrl)
		uc := NewStallUseCase(gw, cache)

		cache.EXPECT().Fetch(gomock.Any(), gomock.Any(), "stalls/list?page=1&pageSize=100", gomock.Any()).DoAndReturn(
			func(ctx context.Context, s entities.Session, _ string, fetch func(context.Context) (any, error)) (any, error) {
				if s.OwnerID != "owner-1" || s.Token != "tok-owner-1" {
					t.Fatalf("unexpected cache scope: %+v", s)
				}
				return fetch(ctx)
			},
		)
		gw.EXPECT().List(gomock.Any(), 1, 100).Return(entities.StallPage{Items: []entities.Stall{{ID: "s1"}}}, nil)

		page, err := uc.List(ownerCtx("owner-1"), 0, 500)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Items) != 1 || page.Items[0].ID != "s1" {
			t.Fatalf("unexpected page: %+v", page)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIStallGateway(ctrl)
		uc := NewStallUseCase(gw, passthroughCache(ctrl))

		gw.EXPECT().List(gomock.Any(), 2, 10).Return(entities.StallPage{}, errors.New("down"))

		if _, err := uc.List(ownerCtx("owner-1"), 2, 0); err == nil || err.Error() != "down" {
			t.Fatalf("expected down, got %v", err)
		}
	})
}

func TestStallUseCase_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewStallUseCase(nil, nil)
		if _, err := uc.Get(ownerCtx("o"), "  "); !errors.Is(err, ErrInvalidStallID) {
			t.Fatalf("expected ErrInvalidStallID, got %v", err)
		}
	})

	t.Run("detail endpoint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIStallGateway(ctrl)
		uc := NewStallUseCase(gw, passthroughCache(ctrl))

		gw.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Stall{ID: "s1", PdvName: "Pastel"}, nil)

		s, err := uc.Get(ownerCtx("o"), "s1")
		if err != nil || s.PdvName != "Pastel" {
			t.Fatalf("unexpected result: %+v err=%v", s, err)
		}
	})

	for _, status := range []int{404, 405, 501} {
		t.Run(fmt.Sprintf("falls back to list scan on %d", status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gw := mock_interfaces.NewMockIStallGateway(ctrl)
			uc := NewStallUseCase(gw, passthroughCache(ctrl))

			gw.EXPECT().GetByID(gomock.Any(), "s3").Return(entities.Stall{}, &upstream.APIError{Kind: upstream.KindHTTP, Status: status})
			gw.EXPECT().List(gomock.Any(), 1, 100).Return(entities.StallPage{
				Items: []entities.Stall{{ID: "s1"}},
				Meta:  entities.PageMeta{Page: 1, PageSize: 100, TotalPages: 2},
			}, nil)
			gw.EXPECT().List(gomock.Any(), 2, 100).Return(entities.StallPage{
				Items: []entities.Stall{{ID: "s3", PdvName: "found"}},
				Meta:  entities.PageMeta{Page: 2, PageSize: 100, TotalPages: 2},
			}, nil)

			s, err := uc.Get(ownerCtx("o"), "s3")
			if err != nil || s.PdvName != "found" {
				t.Fatalf("unexpected result: %+v err=%v", s, err)
			}
		})
	}

	t.Run("scan exhausts pages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIStallGateway(ctrl)
		uc := NewStallUseCase(gw, passthroughCache(ctrl))

		gw.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Stall{}, &upstream.APIError{Kind: upstream.KindHTTP, Status: 404})
		gw.EXPECT().List(gomock.Any(), 1, 100).Return(entities.StallPage{
			Items: []entities.Stall{{ID: "s1"}},
			Meta:  entities.PageMeta{Page: 1, TotalPages: 1},
		}, nil)

		if _, err := uc.Get(ownerCtx("o"), "nope"); !errors.Is(err, ErrStallNotFound) {
			t.Fatalf("expected ErrStallNotFound, got %v", err)
		}
	})

	t.Run("other upstream errors do not scan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIStallGateway(ctrl)
		uc := NewStallUseCase(gw, passthroughCache(ctrl))

		unauthorized := &upstream.APIError{Kind: upstream.KindHTTP, Status: 401}
		gw.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Stall{}, unauthorized)

		if _, err := uc.Get(ownerCtx("o"), "s1"); !upstream.IsUnauthorized(err) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})
}

func TestStallUseCase_Delete(t *testing.T) {
	t.Run("success invalidates stalls and fairs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIStallGateway(ctrl)
		cache := mock_interfaces.NewMockIQueryCache(ctrl)
		uc := NewStallUseCase(gw, cache)

		gw.EXPECT().Delete(gomock.Any(), "s1").Return(nil)
		cache.EXPECT().Invalidate("owner-1", "stalls")
		cache.EXPECT().Invalidate("owner-1", "exhibitor-fairs")

		if err := uc.Delete(ownerCtx("owner-1"), "s1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("failure keeps the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIStallGateway(ctrl)
		cache := mock_interfaces.NewMockIQueryCache(ctrl)
		uc := NewStallUseCase(gw, cache)

		gw.EXPECT().Delete(gomock.Any(), "s1").Return(errors.New("linked to a fair"))

		if err := uc.Delete(ownerCtx("owner-1"), "s1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
