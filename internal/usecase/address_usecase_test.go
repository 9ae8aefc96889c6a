package usecase

import (
	"context"
	"errors"
	"portal_expositor/internal/domain/entities"
	mock_interfaces "portal_expositor/internal/usecase/interfaces/mocks"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

func TestAddressUseCase_Lookup(t *testing.T) {
	t.Run("invalid cep never waits", func(t *testing.T) {
		uc := NewAddressUseCase(nil, time.Hour)
		if _, err := uc.Lookup(ownerCtx("o"), "0131-0"); !errors.Is(err, ErrInvalidCEP) {
			t.Fatalf("expected ErrInvalidCEP, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lookup := mock_interfaces.NewMockIAddressLookup(ctrl)
		uc := NewAddressUseCase(lookup, time.Millisecond)

		lookup.EXPECT().Lookup(gomock.Any(), "01310100").Return(entities.Address{City: "São Paulo", State: "SP"}, nil)

		addr, err := uc.Lookup(ownerCtx("o"), "01310-100")
		if err != nil || addr.City != "São Paulo" {
			t.Fatalf("unexpected result: %+v err=%v", addr, err)
		}
	})

	t.Run("failures degrade to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lookup := mock_interfaces.NewMockIAddressLookup(ctrl)
		uc := NewAddressUseCase(lookup, time.Millisecond)

		lookup.EXPECT().Lookup(gomock.Any(), "99999999").Return(entities.Address{}, errors.New("timeout"))

		_, err := uc.Lookup(ownerCtx("o"), "99999999")
		if !errors.Is(err, ErrAddressNotFound) || err.Error() != "CEP não encontrado." {
			t.Fatalf("expected ErrAddressNotFound, got %v", err)
		}
	})

	t.Run("burst of one owner hits the network once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lookup := mock_interfaces.NewMockIAddressLookup(ctrl)
		uc := NewAddressUseCase(lookup, 40*time.Millisecond)

		lookup.EXPECT().Lookup(gomock.Any(), "01310200").Return(entities.Address{City: "São Paulo"}, nil).Times(1)

		var wg sync.WaitGroup
		var firstErr error
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, firstErr = uc.Lookup(ownerCtx("o"), "01310100")
		}()
		time.Sleep(10 * time.Millisecond)

		addr, err := uc.Lookup(ownerCtx("o"), "01310200")
		wg.Wait()

		if err != nil || addr.City != "São Paulo" {
			t.Fatalf("expected the last lookup to win, got %+v err=%v", addr, err)
		}
		if !errors.Is(firstErr, ErrLookupSuperseded) {
			t.Fatalf("expected ErrLookupSuperseded, got %v", firstErr)
		}
	})

	t.Run("requires a session", func(t *testing.T) {
		uc := NewAddressUseCase(nil, time.Millisecond)
		if _, err := uc.Lookup(context.Background(), "01310100"); !errors.Is(err, ErrSessionRequired) {
			t.Fatalf("expected ErrSessionRequired, got %v", err)
		}
	})
}
