package ledger

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Registry keeps loaded ledgers for the most recently used households.
// Entries expire after ttl so writes made outside this process show up;
// concurrent loads of the same household share one backend round trip.
type Registry struct {
	currencies CurrencySource
	rates      RateStore
	opts       []Option

	cache *expirable.LRU[string, *Ledger]
	group singleflight.Group

	// generation is bumped by Invalidate; a load started under an older
	// generation is returned to its callers but never cached.
	mu         sync.Mutex
	generation map[string]uint64
}

// NewRegistry creates a registry holding at most size ledgers, each for at most ttl.
// A ttl of zero keeps entries until they are evicted or invalidated.
func NewRegistry(size int, ttl time.Duration, currencies CurrencySource, rates RateStore, opts ...Option) *Registry {
	return &Registry{
		currencies: currencies,
		rates:      rates,
		opts:       opts,
		cache:      expirable.NewLRU[string, *Ledger](size, nil, ttl),
		generation: make(map[string]uint64),
	}
}

func (r *Registry) currentGeneration(householdID string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation[householdID]
}

// Get returns the household's ledger, loading it on a miss or after expiry.
func (r *Registry) Get(ctx context.Context, householdID string) (*Ledger, error) {
	if l, ok := r.cache.Get(householdID); ok {
		return l, nil
	}

	gen := r.currentGeneration(householdID)
	key := householdID + "@" + strconv.FormatUint(gen, 10)
	v, err, _ := r.group.Do(key, func() (any, error) {
		if l, ok := r.cache.Get(householdID); ok {
			return l, nil
		}
		l := New(householdID, r.currencies, r.rates, r.opts...)
		if err := l.Reload(ctx); err != nil {
			return nil, err
		}
		r.mu.Lock()
		if r.generation[householdID] == gen {
			r.cache.Add(householdID, l)
		}
		r.mu.Unlock()
		return l, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Ledger), nil
}

// Invalidate drops a household's ledger. Loads already in flight are not cached.
func (r *Registry) Invalidate(householdID string) {
	r.mu.Lock()
	r.generation[householdID]++
	r.cache.Remove(householdID)
	r.mu.Unlock()
}

// Len returns the number of cached ledgers, expired ones included until they are swept.
func (r *Registry) Len() int {
	return r.cache.Len()
}
