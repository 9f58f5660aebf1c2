package subscription

import (
	"context"
	"sync"
)

// repository is the in-memory ledger. Ids start at 1 and follow
// creation order; the sequence is independent from other entity types.
type repository struct {
	mu            sync.RWMutex
	subscriptions []Subscription
	nextID        int
}

func NewRepository() Repository {
	return &repository{nextID: 1}
}

func (r *repository) Create(ctx context.Context, sub Subscription) (*Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub.ID = r.nextID
	r.nextID++
	r.subscriptions = append(r.subscriptions, sub)

	out := sub
	return &out, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Subscription, len(r.subscriptions))
	copy(out, r.subscriptions)
	return out, nil
}
