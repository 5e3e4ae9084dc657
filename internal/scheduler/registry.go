package scheduler

import (
	"sync"

	"go.uber.org/zap"
)

// Registry hands out one Store per (itinerary, destination) pair. Stores are
// created on first access and dropped when the owning view goes away.
type Registry struct {
	mu      sync.RWMutex
	stores  map[string]*Store
	gateway Gateway
	ranges  RangeSource
	logger  *zap.Logger
}

func NewRegistry(gateway Gateway, ranges RangeSource, logger *zap.Logger) *Registry {
	return &Registry{
		stores:  make(map[string]*Store),
		gateway: gateway,
		ranges:  ranges,
		logger:  logger,
	}
}

func storeKey(itineraryID, destinationID string) string {
	return itineraryID + ":" + destinationID
}

func (r *Registry) Get(itineraryID, destinationID string) *Store {
	key := storeKey(itineraryID, destinationID)

	r.mu.RLock()
	store, ok := r.stores[key]
	r.mu.RUnlock()
	if ok {
		return store
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if store, ok = r.stores[key]; ok {
		return store
	}
	store = NewStore(itineraryID, destinationID, r.gateway, r.ranges, r.logger)
	r.stores[key] = store
	return store
}

// Release tears down the store for the pair. The next Get starts fresh.
func (r *Registry) Release(itineraryID, destinationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, storeKey(itineraryID, destinationID))
}
