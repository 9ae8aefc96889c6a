package usecase

import (
	"context"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/domain/wizard"
	mock_interfaces "portal_expositor/internal/usecase/interfaces/mocks"
	"time"

	"go.uber.org/mock/gomock"
)

func ownerCtx(ownerID string) context.Context {
	return entities.ContextWithSession(context.Background(), entities.Session{
		Token:     "tok-" + ownerID,
		OwnerID:   ownerID,
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

// tokenDigest is the digest of the token ownerCtx puts in the session.
func tokenDigest(ownerID string) string {
	return entities.Session{Token: "tok-" + ownerID}.TokenDigest()
}

func formCtx(access entities.FormAccess) context.Context {
	return entities.ContextWithFormAccess(context.Background(), access)
}

// passthroughCache runs every fetch. Invalidations are left to each test.
func passthroughCache(ctrl *gomock.Controller) *mock_interfaces.MockIQueryCache {
	cache := mock_interfaces.NewMockIQueryCache(ctrl)
	cache.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ entities.Session, _ string, fetch func(context.Context) (any, error)) (any, error) {
			return fetch(ctx)
		},
	).AnyTimes()
	return cache
}

// sessionStore backs a mocked wizard repository with one map.
type sessionStore struct {
	sessions map[string]wizard.Session
	deleted  []string
}

func newSessionStore(ctrl *gomock.Controller, seed ...wizard.Session) (*mock_interfaces.MockIWizardSessionRepository, *sessionStore) {
	store := &sessionStore{sessions: map[string]wizard.Session{}}
	for _, s := range seed {
		store.sessions[s.ID] = s.Clone()
	}
	repo := mock_interfaces.NewMockIWizardSessionRepository(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s wizard.Session) (wizard.Session, error) {
			store.sessions[s.ID] = s.Clone()
			return s, nil
		},
	).AnyTimes()
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (wizard.Session, error) {
			return store.sessions[id].Clone(), nil
		},
	).AnyTimes()
	repo.EXPECT().Mutate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, fn func(*wizard.Session) error) (wizard.Session, error) {
			cur, ok := store.sessions[id]
			if !ok {
				return wizard.Session{}, nil
			}
			next := cur.Clone()
			if err := fn(&next); err != nil {
				return cur.Clone(), err
			}
			store.sessions[id] = next
			return next.Clone(), nil
		},
	).AnyTimes()
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) error {
			delete(store.sessions, id)
			store.deleted = append(store.deleted, id)
			return nil
		},
	).AnyTimes()
	return repo, store
}
