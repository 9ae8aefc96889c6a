package usecase

import (
	"context"
	"errors"
	"portal_expositor/internal/domain/entities"
	mock_interfaces "portal_expositor/internal/usecase/interfaces/mocks"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestInterestUseCase_Register(t *testing.T) {
	t.Run("normalizes before sending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIInterestGateway(ctrl)
		uc := NewInterestUseCase(gw)

		blank := "   "
		gw.EXPECT().Upsert(gomock.Any(), entities.PublicInterest{
			PersonType: entities.PersonTypePJ,
			Document:   "12345678000190",
			FullName:   "Pastelaria Zé",
			Email:      "contato@ze.com",
			Phone:      "11988887777",
		}).Return(entities.PublicInterestResult{OwnerID: "o1"}, nil)

		res, err := uc.Register(context.Background(), entities.PublicInterest{
			PersonType:        "pj",
			Document:          "12.345.678/0001-90",
			FullName:          "  Pastelaria Zé ",
			Email:             " Contato@Ze.COM",
			Phone:             "(11) 98888-7777",
			StallsDescription: &blank,
		})
		if err != nil || res.OwnerID != "o1" {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})

	t.Run("invalid form is rejected locally", func(t *testing.T) {
		uc := NewInterestUseCase(nil)
		short := "curta"

		_, err := uc.Register(context.Background(), entities.PublicInterest{
			PersonType:        entities.PersonTypePF,
			Document:          "123",
			FullName:          "M",
			Email:             "not-an-email",
			Phone:             "1199",
			StallsDescription: &short,
		})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(vErr.Messages) != 5 {
			t.Fatalf("expected 5 issues, got %v", vErr.Messages)
		}
		if vErr.Messages[0] != "Informe um CPF (11 dígitos) ou CNPJ (14 dígitos)." {
			t.Fatalf("unexpected first message %q", vErr.Messages[0])
		}
	})
}
