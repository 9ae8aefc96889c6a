package repository

import (
	"context"
	"errors"
	"portal_expositor/internal/domain/wizard"
	"portal_expositor/internal/usecase/interfaces"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultWizardSessionTTL = 2 * time.Hour

var ErrWizardSessionExists = errors.New("wizard session already exists")

// WizardSessionMemoryRepository keeps wizard drafts in process memory.
//
// Sessions slide: every successful Mutate pushes ExpiresAt to now+ttl. Expired
// sessions are dropped lazily on access and on Create.
type WizardSessionMemoryRepository struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]wizard.Session
}

var _ interfaces.IWizardSessionRepository = (*WizardSessionMemoryRepository)(nil)

func NewWizardSessionMemoryRepository(ttl time.Duration) *WizardSessionMemoryRepository {
	if ttl <= 0 {
		ttl = DefaultWizardSessionTTL
	}
	return &WizardSessionMemoryRepository{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]wizard.Session),
	}
}

func (r *WizardSessionMemoryRepository) Create(ctx context.Context, s wizard.Session) (wizard.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)

	if _, ok := r.sessions[s.ID]; ok {
		return wizard.Session{}, ErrWizardSessionExists
	}
	s.CreatedAt = now
	s.UpdatedAt = now
	s.ExpiresAt = now.Add(r.ttl)
	r.sessions[s.ID] = s.Clone()
	return s.Clone(), nil
}

func (r *WizardSessionMemoryRepository) Get(ctx context.Context, id string) (wizard.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.liveLocked(id)
	if !ok {
		return wizard.Session{}, nil
	}
	return s.Clone(), nil
}

func (r *WizardSessionMemoryRepository) Mutate(ctx context.Context, id string, fn func(s *wizard.Session) error) (wizard.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.liveLocked(id)
	if !ok {
		return wizard.Session{}, nil
	}

	next := cur.Clone()
	if err := fn(&next); err != nil {
		return cur.Clone(), err
	}

	now := r.now()
	next.ID = cur.ID
	next.OwnerID = cur.OwnerID
	next.TokenDigest = cur.TokenDigest
	next.Form = cur.Form
	next.CreatedAt = cur.CreatedAt
	next.UpdatedAt = now
	next.ExpiresAt = now.Add(r.ttl)
	r.sessions[id] = next
	return next.Clone(), nil
}

func (r *WizardSessionMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// DeleteHeldBy drops the sessions opened by ownerID with the token of
// tokenDigest. Sessions of the owner's other tokens stay.
func (r *WizardSessionMemoryRepository) DeleteHeldBy(ctx context.Context, ownerID, tokenDigest string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, s := range r.sessions {
		if s.HeldBy(ownerID, tokenDigest) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

func (r *WizardSessionMemoryRepository) liveLocked(id string) (wizard.Session, bool) {
	s, ok := r.sessions[id]
	if !ok {
		return wizard.Session{}, false
	}
	if s.Expired(r.now()) {
		delete(r.sessions, id)
		return wizard.Session{}, false
	}
	return s, true
}

func (r *WizardSessionMemoryRepository) sweepLocked(now time.Time) {
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			log.Debug().Str("wizard_id", id).Str("owner_id", s.OwnerID).Msg("[wizard][repository] session expired")
		}
	}
}
