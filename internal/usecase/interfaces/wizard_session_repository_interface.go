package interfaces

import (
	"context"
	"portal_expositor/internal/domain/wizard"
)

// IWizardSessionRepository keeps wizard sessions in memory.
//
// Get and Mutate return a zero Session (empty ID) when the id is unknown or
// expired; fn is not called in that case.
// Mutate runs fn on a private copy under the session lock and stores the copy
// only when fn succeeds.
type IWizardSessionRepository interface {
	Create(ctx context.Context, s wizard.Session) (wizard.Session, error)
	Get(ctx context.Context, id string) (wizard.Session, error)
	Mutate(ctx context.Context, id string, fn func(s *wizard.Session) error) (wizard.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteHeldBy(ctx context.Context, ownerID, tokenDigest string) (int, error)
}
