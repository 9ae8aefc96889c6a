package wizard

import (
	"portal_expositor/internal/domain/entities"
	"time"
)

// Session is one mounted wizard kept server side for its owner. Nothing here is
// ever written to disk. TokenDigest binds it to the bearer token that opened it;
// a wizard opened from the public stall form has no owner and is bound to Form.
type Session struct {
	ID          string               `json:"id"`
	OwnerID     string               `json:"ownerId,omitempty"`
	TokenDigest string               `json:"-"`
	Form        *entities.FormAccess `json:"-"`
	Wizard      *Wizard              `json:"wizard"`
	Submitting  bool                 `json:"submitting"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	ExpiresAt   time.Time            `json:"expiresAt"`
}

// HeldBy reports whether the session was opened by ownerID with the token
// whose digest is tokenDigest.
func (s Session) HeldBy(ownerID, tokenDigest string) bool {
	return s.Form == nil && ownerID != "" && s.OwnerID == ownerID && s.TokenDigest == tokenDigest
}

// HeldByForm reports whether the session was opened from the public form with
// the same fair and document.
func (s Session) HeldByForm(access entities.FormAccess) bool {
	return s.Form != nil && *s.Form == access
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Clone deep-copies the session so callers never share draft slices.
func (s Session) Clone() Session {
	if s.Wizard != nil {
		s.Wizard = s.Wizard.Clone()
	}
	if s.Form != nil {
		a := *s.Form
		s.Form = &a
	}
	return s
}

func (w *Wizard) Clone() *Wizard {
	cp := *w
	cp.Menu = cloneMenu(w.Menu)
	cp.Infra.Equipments = make([]EquipmentDraft, len(w.Infra.Equipments))
	copy(cp.Infra.Equipments, w.Infra.Equipments)
	return &cp
}
