// Package cache keeps backend reads per owner for a short stale time.
package cache

import (
	"context"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase/interfaces"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const DefaultStaleTime = 30 * time.Second

type entry struct {
	key       string
	value     any
	fetchedAt time.Time
	stale     bool
}

// owned holds the entries of one owner. gen moves on every Invalidate and
// Purge; a fetch started under an older gen is returned to its callers but
// never stored.
type owned struct {
	gen     uint64
	entries map[string]*entry
}

// QueryCache is an owner-scoped read-through cache. Entries are bound to the
// token that fetched them: a token that never reached the backend can not read
// what another token of the same owner fetched. Concurrent misses of the same
// token and key share one fetch.
type QueryCache struct {
	staleTime time.Duration
	now       func() time.Time

	mu     sync.Mutex
	owners map[string]*owned
	group  singleflight.Group
}

var _ interfaces.IQueryCache = (*QueryCache)(nil)

func NewQueryCache(staleTime time.Duration) *QueryCache {
	if staleTime <= 0 {
		staleTime = DefaultStaleTime
	}
	return &QueryCache{
		staleTime: staleTime,
		now:       time.Now,
		owners:    make(map[string]*owned),
	}
}

// Fetch returns the fresh entry for key or runs fetch. The fetch runs detached
// from the caller's cancellation so one aborted request does not fail the
// others sharing it; the caller still returns as soon as its ctx is done.
func (c *QueryCache) Fetch(ctx context.Context, s entities.Session, key string, fetch func(ctx context.Context) (any, error)) (any, error) {
	slot := s.TokenDigest() + "\x00" + key
	v, gen, ok := c.fresh(s.OwnerID, slot)
	if ok {
		return v, nil
	}

	flight := s.OwnerID + "\x00" + slot + "\x00" + strconv.FormatUint(gen, 10)
	ch := c.group.DoChan(flight, func() (any, error) {
		v, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.store(s.OwnerID, slot, key, gen, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			log.Debug().Str("owner_id", s.OwnerID).Str("key", key).Err(res.Err).Msg("[cache][query] fetch failed")
			return nil, res.Err
		}
		if res.Shared {
			log.Debug().Str("owner_id", s.OwnerID).Str("key", key).Msg("[cache][query] fetch shared")
		}
		return res.Val, nil
	}
}

// Invalidate marks every key of ownerID starting with prefix as stale, for
// every token of that owner. Fetches already in flight are not stored.
func (c *QueryCache) Invalidate(ownerID, prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	o := c.ownerLocked(ownerID)
	o.gen++
	for _, e := range o.entries {
		if strings.HasPrefix(e.key, prefix) {
			e.stale = true
		}
	}
}

// Purge drops everything cached for ownerID.
func (c *QueryCache) Purge(ownerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	o := c.ownerLocked(ownerID)
	o.gen++
	o.entries = make(map[string]*entry)
}

func (c *QueryCache) fresh(ownerID, slot string) (any, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	o := c.ownerLocked(ownerID)
	e, ok := o.entries[slot]
	if !ok || e.stale || c.now().Sub(e.fetchedAt) >= c.staleTime {
		return nil, o.gen, false
	}
	return e.value, o.gen, true
}

func (c *QueryCache) store(ownerID, slot, key string, gen uint64, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	o := c.ownerLocked(ownerID)
	if o.gen != gen {
		log.Debug().Str("owner_id", ownerID).Str("key", key).Msg("[cache][query] invalidated while fetching, not stored")
		return
	}
	o.entries[slot] = &entry{key: key, value: v, fetchedAt: c.now()}
}

func (c *QueryCache) ownerLocked(ownerID string) *owned {
	o, ok := c.owners[ownerID]
	if !ok {
		o = &owned{entries: make(map[string]*entry)}
		c.owners[ownerID] = o
	}
	return o
}
