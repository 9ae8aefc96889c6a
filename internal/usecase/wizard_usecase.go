package usecase

import (
	"context"
	"errors"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/domain/wizard"
	"portal_expositor/internal/usecase/interfaces"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrWizardNotFound   = errors.New("wizard session not found")
	ErrSubmitInProgress = errors.New("submit already in progress")
)

// IWizardUseCase drives a stall wizard kept server side between requests.
type IWizardUseCase interface {
	Start(ctx context.Context, stallID string) (wizard.Session, error)
	Get(ctx context.Context, id string) (wizard.Session, error)
	Cancel(ctx context.Context, id string) error

	SetBasic(ctx context.Context, id string, draft wizard.BasicDraft) (wizard.Session, error)
	SetInfra(ctx context.Context, id string, draft wizard.InfraDraft) (wizard.Session, error)

	AddCategory(ctx context.Context, id, name string) (wizard.Session, error)
	RenameCategory(ctx context.Context, id string, catIdx int, name string) (wizard.Session, error)
	RemoveCategory(ctx context.Context, id string, catIdx int) (wizard.Session, error)
	AddProducts(ctx context.Context, id string, catIdx int, products []wizard.ProductDraft) (wizard.Session, error)
	EditProduct(ctx context.Context, id string, catIdx, prodIdx int, product wizard.ProductDraft) (wizard.Session, error)
	RemoveProduct(ctx context.Context, id string, catIdx, prodIdx int) (wizard.Session, error)

	StartDrag(ctx context.Context, id string, kind wizard.DragKind, catIdx, from int) (wizard.Session, error)
	MoveDrag(ctx context.Context, id string, kind wizard.DragKind, catIdx, over int) (wizard.Session, error)
	EndDrag(ctx context.Context, id string) (wizard.Session, error)
	CancelDrag(ctx context.Context, id string) (wizard.Session, error)

	Next(ctx context.Context, id string) (wizard.Session, error)
	Back(ctx context.Context, id string) (wizard.Session, error)
	Submit(ctx context.Context, id string) (wizard.Session, error)
}

type WizardUseCase struct {
	repo   interfaces.IWizardSessionRepository
	stalls IStallUseCase
	writer interfaces.IStallGateway
	forms  interfaces.IStallFormGateway
	cache  interfaces.IQueryCache
	newID  func() string
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(repo interfaces.IWizardSessionRepository, stalls IStallUseCase, writer interfaces.IStallGateway, forms interfaces.IStallFormGateway, cache interfaces.IQueryCache) *WizardUseCase {
	return &WizardUseCase{repo: repo, stalls: stalls, writer: writer, forms: forms, cache: cache, newID: uuid.NewString}
}

// holder is who may touch a wizard: an authenticated token, or a visitor of
// the public stall form identified by fair and document.
type holder struct {
	session entities.Session
	form    *entities.FormAccess
}

func holderFrom(ctx context.Context) (holder, error) {
	if s, err := sessionFrom(ctx); err == nil {
		return holder{session: s}, nil
	}
	if a, ok := entities.FormAccessFromContext(ctx); ok && a.Valid() {
		return holder{form: &a}, nil
	}
	return holder{}, ErrSessionRequired
}

func (h holder) holds(s wizard.Session) bool {
	if h.form != nil {
		return s.HeldByForm(*h.form)
	}
	return s.HeldBy(h.session.OwnerID, h.session.TokenDigest())
}

func (h holder) logEvent(e *zerolog.Event) *zerolog.Event {
	if h.form != nil {
		return e.Str("fair_id", h.form.FairID).Bool("public", true)
	}
	return e.Str("owner_id", h.session.OwnerID)
}

// Start mounts a wizard. An empty stallID starts a create wizard; otherwise
// the drafts are seeded from the saved stall.
func (u *WizardUseCase) Start(ctx context.Context, stallID string) (wizard.Session, error) {
	h, err := holderFrom(ctx)
	if err != nil {
		return wizard.Session{}, err
	}

	stallID = strings.TrimSpace(stallID)
	var w *wizard.Wizard
	if h.form != nil {
		w, err = u.publicWizard(ctx, *h.form, stallID)
	} else {
		w, err = u.ownerWizard(ctx, stallID)
	}
	if err != nil {
		return wizard.Session{}, err
	}

	s := wizard.Session{ID: u.newID(), Form: h.form, Wizard: w}
	if h.form == nil {
		s.OwnerID = h.session.OwnerID
		s.TokenDigest = h.session.TokenDigest()
	}
	s, err = u.repo.Create(ctx, s)
	if err != nil {
		return wizard.Session{}, err
	}
	h.logEvent(log.Info()).Str("wizard_id", s.ID).Str("mode", string(w.Mode)).Str("stall_id", w.StallID).Msg("[wizard][usecase] started")
	return s, nil
}

func (u *WizardUseCase) ownerWizard(ctx context.Context, stallID string) (*wizard.Wizard, error) {
	if stallID == "" {
		return wizard.New(), nil
	}
	stall, err := u.stalls.Get(ctx, stallID)
	if err != nil {
		return nil, err
	}
	return wizard.FromStall(stall), nil
}

// publicWizard checks the document against the fair before mounting anything.
// An edit wizard may only open one of the document's own stalls.
func (u *WizardUseCase) publicWizard(ctx context.Context, access entities.FormAccess, stallID string) (*wizard.Wizard, error) {
	if stallID == "" {
		if _, err := u.forms.Validate(ctx, access); err != nil {
			return nil, formRefusal(err)
		}
		return wizard.New(), nil
	}
	owned, err := u.forms.ListStalls(ctx, access)
	if err != nil {
		return nil, formRefusal(err)
	}
	for _, stall := range owned.Stalls {
		if stall.ID == stallID {
			return wizard.FromStall(stall), nil
		}
	}
	return nil, ErrStallNotFound
}

func (u *WizardUseCase) Get(ctx context.Context, id string) (wizard.Session, error) {
	h, err := holderFrom(ctx)
	if err != nil {
		return wizard.Session{}, err
	}
	s, err := u.repo.Get(ctx, id)
	if err != nil {
		return wizard.Session{}, err
	}
	if s.ID == "" || !h.holds(s) {
		return wizard.Session{}, ErrWizardNotFound
	}
	return s, nil
}

func (u *WizardUseCase) Cancel(ctx context.Context, id string) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	log.Info().Str("wizard_id", id).Msg("[wizard][usecase] cancelled")
	return u.repo.Delete(ctx, id)
}

func (u *WizardUseCase) SetBasic(ctx context.Context, id string, draft wizard.BasicDraft) (wizard.Session, error) {
	return u.edit(ctx, id, func(w *wizard.Wizard) error { return w.SetBasic(draft) })
}

func (u *WizardUseCase) SetInfra(ctx context.Context, id string, draft wizard.InfraDraft) (wizard.Session, error) {
	return u.edit(ctx, id, func(w *wizard.Wizard) error { return w.SetInfra(draft) })
}

func (u *WizardUseCase) AddCategory(ctx context.Context, id, name string) (wizard.Session, error) {
	return u.edit(ctx, id, func(w *wizard.Wizard) error { return w.AddCategory(name) })
}

func (u *WizardUseCase) RenameCategory(ctx context.Context, id string, catIdx int, name string) (wizard.Session, error) {
	return u.edit(ctx, id, func(w *wizard.Wizard) error { return w.RenameCategory(catIdx, name) })
}

func (u *WizardUseCase) RemoveCategory(ctx context.Context, id string, catIdx int) (wizard.Session, error) {
	return u.edit(ctx, id, func(w *wizard.Wizard) error { return w.RemoveCategory(catIdx) })
}

func (u *WizardUseCase) AddProducts(ctx context.Context, id string, catIdx int, products []wizard.ProductDraft) (wizard.Session, error) {
	return u.edit(ctx, id, func(w *wizard.Wizard) error { return w.AddProducts(catIdx, products) })
}

func (u *WizardUseCase) EditProduct(ctx context.Context, id string, catIdx, prodIdx int, product wizard.ProductDraft) (wizard.Session, error) {
	return u.edit(ctx, id, func(w *wizard.Wizard) error { return w.EditProduct(catIdx, prodIdx, product) })
}

func (u *WizardUseCase) RemoveProduct(ctx context.Context, id string, catIdx, prodIdx int) (wizard.Session, error) {
	return u.edit(ctx, id, func(w *wizard.Wizard) error { return w.RemoveProduct(catIdx, prodIdx) })
}

func (u *WizardUseCase) StartDrag(ctx context.Context, id string, kind wizard.DragKind, catIdx, from int) (wizard.Session, error) {
	return u.edit(ctx, id, func(w *wizard.Wizard) error { return w.StartDrag(kind, catIdx, from) })
}

func (u *WizardUseCase) MoveDrag(ctx context.Context, id string, kind wizard.DragKind, catIdx, over int) (wizard.Session, error) {
	return u.edit(ctx, id, func(w *wizard.Wizard) error { return w.MoveDrag(kind, catIdx, over) })
}

func (u *WizardUseCase) EndDrag(ctx context.Context, id string) (wizard.Session, error) {
	return u.edit(ctx, id, func(w *wizard.Wizard) error { return w.EndDrag() })
}

func (u *WizardUseCase) CancelDrag(ctx context.Context, id string) (wizard.Session, error) {
	return u.edit(ctx, id, func(w *wizard.Wizard) error {
		w.CancelDrag()
		return nil
	})
}

func (u *WizardUseCase) Next(ctx context.Context, id string) (wizard.Session, error) {
	return u.edit(ctx, id, func(w *wizard.Wizard) error { return w.Next() })
}

// Back on the first step cancels the wizard and drops its session.
func (u *WizardUseCase) Back(ctx context.Context, id string) (wizard.Session, error) {
	s, err := u.edit(ctx, id, func(w *wizard.Wizard) error { return w.Back() })
	if err != nil {
		return s, err
	}
	if s.Wizard.Status == wizard.StatusCancelled {
		log.Info().Str("wizard_id", id).Msg("[wizard][usecase] cancelled from first step")
		if err := u.repo.Delete(ctx, id); err != nil {
			return wizard.Session{}, err
		}
	}
	return s, nil
}

// Submit validates every step, sends the payload and tears the session down on
// success. A failed validation leaves the wizard on the failing step; a failed
// request leaves it where it was with the drafts intact. A public wizard is
// saved through the stall form of its fair.
func (u *WizardUseCase) Submit(ctx context.Context, id string) (wizard.Session, error) {
	h, err := holderFrom(ctx)
	if err != nil {
		return wizard.Session{}, err
	}

	var payload entities.UpsertStall
	var invalid error
	s, err := u.mutate(ctx, h, id, func(s *wizard.Session) error {
		p, err := s.Wizard.PrepareSubmit()
		if _, ok := wizard.AsNotice(err); ok {
			// keep the jump to the failing step
			invalid = err
			return nil
		}
		if err != nil {
			return err
		}
		payload = p
		s.Submitting = true
		return nil
	})
	if err != nil {
		return s, err
	}
	if invalid != nil {
		log.Info().Str("wizard_id", id).Int("step", int(s.Wizard.Step)).Msg("[wizard][usecase] submit blocked by validation")
		return s, invalid
	}

	h.logEvent(log.Info()).Str("wizard_id", id).Str("mode", string(s.Wizard.Mode)).Msg("[wizard][usecase] submitting")

	res, err := u.save(ctx, h, s.Wizard, payload)
	if err != nil {
		h.logEvent(log.Warn()).Str("wizard_id", id).Err(err).Msg("[wizard][usecase] submit failed")
		if cur, mErr := u.repo.Mutate(ctx, id, func(s *wizard.Session) error {
			s.Submitting = false
			return nil
		}); mErr == nil && cur.ID != "" {
			s = cur
		}
		return s, err
	}

	s.Wizard.Finish(res.StallID)
	s.Submitting = false
	if err := u.repo.Delete(ctx, id); err != nil {
		return wizard.Session{}, err
	}
	if h.form == nil {
		u.cache.Invalidate(h.session.OwnerID, cacheStalls)
		u.cache.Invalidate(h.session.OwnerID, cacheFairs)
	}
	h.logEvent(log.Info()).Str("wizard_id", id).Str("stall_id", s.Wizard.StallID).Msg("[wizard][usecase] submitted")
	return s, nil
}

func (u *WizardUseCase) save(ctx context.Context, h holder, w *wizard.Wizard, payload entities.UpsertStall) (entities.UpsertStallResult, error) {
	if h.form != nil {
		var res entities.UpsertStallResult
		var err error
		if w.Mode == wizard.ModeEdit {
			res, err = u.forms.Update(ctx, *h.form, w.StallID, payload)
		} else {
			res, err = u.forms.Create(ctx, *h.form, payload)
		}
		return res, formRefusal(err)
	}
	switch {
	case w.Mode == wizard.ModeEdit:
		return u.writer.Update(ctx, w.StallID, payload)
	default:
		return u.writer.Create(ctx, payload)
	}
}

// edit applies fn to the wizard of id. Validation notices are returned with the
// unchanged session so the caller can still render it.
func (u *WizardUseCase) edit(ctx context.Context, id string, fn func(w *wizard.Wizard) error) (wizard.Session, error) {
	h, err := holderFrom(ctx)
	if err != nil {
		return wizard.Session{}, err
	}
	return u.mutate(ctx, h, id, func(s *wizard.Session) error { return fn(s.Wizard) })
}

func (u *WizardUseCase) mutate(ctx context.Context, h holder, id string, fn func(s *wizard.Session) error) (wizard.Session, error) {
	s, err := u.repo.Mutate(ctx, id, func(s *wizard.Session) error {
		if !h.holds(*s) {
			return ErrWizardNotFound
		}
		if s.Submitting {
			return ErrSubmitInProgress
		}
		return fn(s)
	})
	if errors.Is(err, ErrWizardNotFound) {
		return wizard.Session{}, err
	}
	if err != nil {
		return s, err
	}
	if s.ID == "" {
		return wizard.Session{}, ErrWizardNotFound
	}
	return s, nil
}
