package interfaces

import (
	"context"
	"portal_expositor/internal/domain/entities"
)

// IQueryCache keeps fetched backend reads per owner for a short stale time.
//
// Keys are logical resource names such as "stalls/list?page=1&pageSize=10".
// Fetch binds entries to the session's token; Invalidate marks every key of
// the owner starting with prefix as stale, whichever token fetched it.
type IQueryCache interface {
	Fetch(ctx context.Context, s entities.Session, key string, fetch func(ctx context.Context) (any, error)) (any, error)
	Invalidate(ownerID, prefix string)
	Purge(ownerID string)
}
