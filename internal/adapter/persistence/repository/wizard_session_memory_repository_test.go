package repository

import (
	"context"
	"errors"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/domain/wizard"
	"sync"
	"testing"
	"time"
)

func newTestRepo(ttl time.Duration) (*WizardSessionMemoryRepository, *time.Time) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	r := NewWizardSessionMemoryRepository(ttl)
	r.now = func() time.Time { return now }
	return r, &now
}

func TestWizardSessionMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get return independent copies", func(t *testing.T) {
		r, _ := newTestRepo(time.Hour)
		created, err := r.Create(ctx, wizard.Session{ID: "w1", OwnerID: "o1", Wizard: wizard.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		created.Wizard.Basic.PdvName = "changed outside"

		got, err := r.Get(ctx, "w1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Wizard.Basic.PdvName != "" {
			t.Fatalf("stored draft was mutated through a returned copy")
		}
		if got.ExpiresAt.Sub(got.CreatedAt) != time.Hour {
			t.Fatalf("expected ttl of 1h, got %v", got.ExpiresAt.Sub(got.CreatedAt))
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		r, _ := newTestRepo(time.Hour)
		_, _ = r.Create(ctx, wizard.Session{ID: "w1", OwnerID: "o1", Wizard: wizard.New()})
		if _, err := r.Create(ctx, wizard.Session{ID: "w1", OwnerID: "o2", Wizard: wizard.New()}); !errors.Is(err, ErrWizardSessionExists) {
			t.Fatalf("expected ErrWizardSessionExists, got %v", err)
		}
	})

	t.Run("unknown id yields zero session", func(t *testing.T) {
		r, _ := newTestRepo(time.Hour)
		called := false
		got, err := r.Mutate(ctx, "nope", func(*wizard.Session) error { called = true; return nil })
		if err != nil || got.ID != "" || called {
			t.Fatalf("expected zero session without calling fn, got %+v err=%v called=%v", got, err, called)
		}
	})

	t.Run("mutate stores only on success and slides expiry", func(t *testing.T) {
		r, now := newTestRepo(time.Hour)
		_, _ = r.Create(ctx, wizard.Session{ID: "w1", OwnerID: "o1", TokenDigest: "d1", Wizard: wizard.New()})

		boom := errors.New("boom")
		_, err := r.Mutate(ctx, "w1", func(s *wizard.Session) error {
			s.Wizard.Basic.PdvName = "lost"
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if got, _ := r.Get(ctx, "w1"); got.Wizard.Basic.PdvName != "" {
			t.Fatalf("failed mutation must not be stored")
		}

		*now = now.Add(50 * time.Minute)
		got, err := r.Mutate(ctx, "w1", func(s *wizard.Session) error {
			s.Wizard.Basic.PdvName = "kept"
			s.OwnerID = "someone else"
			s.TokenDigest = "other"
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Wizard.Basic.PdvName != "kept" || !got.HeldBy("o1", "d1") {
			t.Fatalf("unexpected session after mutate: %+v", got)
		}
		if !got.ExpiresAt.Equal(now.Add(time.Hour)) {
			t.Fatalf("expected expiry to slide, got %v", got.ExpiresAt)
		}
	})

	t.Run("a public form session keeps its access", func(t *testing.T) {
		r, _ := newTestRepo(time.Hour)
		access := entities.FormAccess{FairID: "f1", Document: "12345678901"}
		_, _ = r.Create(ctx, wizard.Session{ID: "w1", Form: &access, Wizard: wizard.New()})

		got, err := r.Mutate(ctx, "w1", func(s *wizard.Session) error {
			s.Form = &entities.FormAccess{FairID: "f1", Document: "98765432100"}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.HeldByForm(access) || got.HeldBy("", "") {
			t.Fatalf("expected the form access to survive mutate, got %+v", got.Form)
		}
		if n, _ := r.DeleteHeldBy(ctx, "", ""); n != 0 {
			t.Fatalf("token teardown must not reach public sessions, deleted %d", n)
		}
	})

	t.Run("expired sessions disappear", func(t *testing.T) {
		r, now := newTestRepo(time.Hour)
		_, _ = r.Create(ctx, wizard.Session{ID: "w1", OwnerID: "o1", Wizard: wizard.New()})
		*now = now.Add(time.Hour)

		if got, _ := r.Get(ctx, "w1"); got.ID != "" {
			t.Fatalf("expected expired session to be gone")
		}
	})

	t.Run("delete held by a token", func(t *testing.T) {
		r, _ := newTestRepo(time.Hour)
		_, _ = r.Create(ctx, wizard.Session{ID: "w1", OwnerID: "o1", TokenDigest: "d1", Wizard: wizard.New()})
		_, _ = r.Create(ctx, wizard.Session{ID: "w2", OwnerID: "o1", TokenDigest: "d1", Wizard: wizard.New()})
		_, _ = r.Create(ctx, wizard.Session{ID: "w3", OwnerID: "o2", TokenDigest: "d1", Wizard: wizard.New()})
		_, _ = r.Create(ctx, wizard.Session{ID: "w4", OwnerID: "o1", TokenDigest: "d2", Wizard: wizard.New()})

		n, err := r.DeleteHeldBy(ctx, "o1", "d1")
		if err != nil || n != 2 {
			t.Fatalf("expected 2 deleted, got %d err=%v", n, err)
		}
		if got, _ := r.Get(ctx, "w3"); got.ID != "w3" {
			t.Fatalf("other owners must keep their sessions")
		}
		if got, _ := r.Get(ctx, "w4"); got.ID != "w4" {
			t.Fatalf("other tokens of the owner must keep their sessions")
		}
		if err := r.Delete(ctx, "w3"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, _ := r.Get(ctx, "w3"); got.ID != "" {
			t.Fatalf("expected w3 deleted")
		}
	})

	t.Run("concurrent mutations are serialized", func(t *testing.T) {
		r, _ := newTestRepo(time.Hour)
		_, _ = r.Create(ctx, wizard.Session{ID: "w1", OwnerID: "o1", Wizard: wizard.New()})

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = r.Mutate(ctx, "w1", func(s *wizard.Session) error {
					s.Wizard.Basic.TeamQty++
					return nil
				})
			}()
		}
		wg.Wait()

		got, _ := r.Get(ctx, "w1")
		if got.Wizard.Basic.TeamQty != 51 {
			t.Fatalf("expected 51 after 50 increments from 1, got %d", got.Wizard.Basic.TeamQty)
		}
	})
}
