package usecase

import (
	"context"
	"errors"
	"fmt"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase/interfaces"
	"portal_expositor/pkg/format"
	"portal_expositor/pkg/upstream"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	titleFormDocument   = "Documento inválido"
	messageFormDocument = "Informe um CPF (11 dígitos) ou CNPJ (14 dígitos)."
)

var (
	// ErrFormAccessRequired means a public form route ran without a fair and
	// document in its context.
	ErrFormAccessRequired = errors.New("form access required")
	// ErrFormRefused means the backend would not serve the document on this
	// fair. The public form has no session, so a 401 never means an expiry.
	ErrFormRefused = errors.New("document refused for this fair")
)

func formRefusal(err error) error {
	if upstream.IsUnauthorized(err) {
		return fmt.Errorf("%w: %w", ErrFormRefused, err)
	}
	return err
}

// IStallFormUseCase serves the public stall form of a fair. Creating and
// editing stalls goes through the wizard mounted with the same access.
type IStallFormUseCase interface {
	Open(ctx context.Context, fairID, document string) (entities.StallsFormView, error)
	ListStalls(ctx context.Context) ([]entities.FormStall, error)
	DeleteStall(ctx context.Context, stallID string) error
	SelectStall(ctx context.Context, stallID string) (entities.StallFairLink, error)
	UnlinkStall(ctx context.Context, stallID string) error
}

type StallFormUseCase struct {
	forms interfaces.IStallFormGateway
	now   func() time.Time
}

var _ IStallFormUseCase = (*StallFormUseCase)(nil)

func NewStallFormUseCase(forms interfaces.IStallFormGateway) *StallFormUseCase {
	return &StallFormUseCase{forms: forms, now: time.Now}
}

// NewFormAccess keeps the digits of document and refuses anything that is not
// a CPF or CNPJ.
func NewFormAccess(fairID, document string) (entities.FormAccess, error) {
	access := entities.FormAccess{FairID: strings.TrimSpace(fairID), Document: format.OnlyDigits(document)}
	if !access.Valid() {
		return entities.FormAccess{}, newValidationError(titleFormDocument, []string{messageFormDocument})
	}
	return access, nil
}

func formFrom(ctx context.Context) (entities.FormAccess, error) {
	a, ok := entities.FormAccessFromContext(ctx)
	if !ok || !a.Valid() {
		return entities.FormAccess{}, ErrFormAccessRequired
	}
	return a, nil
}

// Open validates the document for the fair and reads its window as of now.
func (u *StallFormUseCase) Open(ctx context.Context, fairID, document string) (entities.StallsFormView, error) {
	access, err := NewFormAccess(fairID, document)
	if err != nil {
		return entities.StallsFormView{}, err
	}

	fc, err := u.forms.Validate(ctx, access)
	if err != nil {
		log.Info().Str("fair_id", access.FairID).Err(err).Msg("[stall-form][usecase] document refused")
		return entities.StallsFormView{}, formRefusal(err)
	}

	view := entities.StallsFormView{Context: fc, Banner: fc.Banner(u.now())}
	log.Info().Str("fair_id", access.FairID).Str("window", string(view.Banner.State)).Int("linked", fc.LinkedStallsQty).Msg("[stall-form][usecase] opened")
	return view, nil
}

// ListStalls reads the document's stalls and which of them are linked to the
// fair; both calls run together.
func (u *StallFormUseCase) ListStalls(ctx context.Context) ([]entities.FormStall, error) {
	access, err := formFrom(ctx)
	if err != nil {
		return nil, err
	}

	var owned entities.OwnerStalls
	var fc entities.StallsFormContext
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		owned, err = u.forms.ListStalls(egCtx, access)
		return err
	})
	eg.Go(func() error {
		var err error
		fc, err = u.forms.Validate(egCtx, access)
		return err
	})
	if err := eg.Wait(); err != nil {
		log.Warn().Str("fair_id", access.FairID).Err(err).Msg("[stall-form][usecase] list failed")
		return nil, formRefusal(err)
	}

	out := make([]entities.FormStall, 0, len(owned.Stalls))
	for _, s := range owned.Stalls {
		out = append(out, entities.FormStall{Stall: s, Linked: fc.Linked(s.ID)})
	}
	return out, nil
}

func (u *StallFormUseCase) DeleteStall(ctx context.Context, stallID string) error {
	access, stallID, err := u.target(ctx, stallID)
	if err != nil {
		return err
	}
	if err := u.forms.Delete(ctx, access, stallID); err != nil {
		log.Warn().Str("fair_id", access.FairID).Str("stall_id", stallID).Err(err).Msg("[stall-form][usecase] delete failed")
		return formRefusal(err)
	}
	log.Info().Str("fair_id", access.FairID).Str("stall_id", stallID).Msg("[stall-form][usecase] stall deleted")
	return nil
}

func (u *StallFormUseCase) SelectStall(ctx context.Context, stallID string) (entities.StallFairLink, error) {
	access, stallID, err := u.target(ctx, stallID)
	if err != nil {
		return entities.StallFairLink{}, err
	}
	link, err := u.forms.Select(ctx, access, stallID)
	if err != nil {
		log.Warn().Str("fair_id", access.FairID).Str("stall_id", stallID).Err(err).Msg("[stall-form][usecase] select failed")
		return entities.StallFairLink{}, formRefusal(err)
	}
	log.Info().Str("fair_id", access.FairID).Str("stall_id", stallID).Str("stall_fair_id", link.StallFairID).Msg("[stall-form][usecase] stall linked")
	return link, nil
}

func (u *StallFormUseCase) UnlinkStall(ctx context.Context, stallID string) error {
	access, stallID, err := u.target(ctx, stallID)
	if err != nil {
		return err
	}
	if err := u.forms.Unlink(ctx, access, stallID); err != nil {
		log.Warn().Str("fair_id", access.FairID).Str("stall_id", stallID).Err(err).Msg("[stall-form][usecase] unlink failed")
		return formRefusal(err)
	}
	log.Info().Str("fair_id", access.FairID).Str("stall_id", stallID).Msg("[stall-form][usecase] stall unlinked")
	return nil
}

func (u *StallFormUseCase) target(ctx context.Context, stallID string) (entities.FormAccess, string, error) {
	access, err := formFrom(ctx)
	if err != nil {
		return entities.FormAccess{}, "", err
	}
	stallID = strings.TrimSpace(stallID)
	if stallID == "" {
		return entities.FormAccess{}, "", ErrInvalidStallID
	}
	return access, stallID, nil
}
