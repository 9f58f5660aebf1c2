package trainer

import (
	"context"
	"sync"
)

// repository is the in-memory directory. The id counter is owned by the
// repository: ids start at 1, are assigned in creation order and never
// reused.
type repository struct {
	mu       sync.RWMutex
	trainers []Trainer
	nextID   int
}

func NewRepository() Repository {
	return &repository{nextID: 1}
}

func (r *repository) Create(ctx context.Context, t Trainer) (*Trainer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID
	r.nextID++
	r.trainers = append(r.trainers, t)

	out := t
	return &out, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Trainer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Trainer, len(r.trainers))
	copy(out, r.trainers)
	return out, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Trainer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.trainers {
		if t.ID == id {
			out := t
			return &out, nil
		}
	}
	return nil, ErrTrainerNotFound
}
