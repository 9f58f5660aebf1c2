package class

import (
	"context"
	"strings"
	"sync"
)

// repository is the in-memory catalog. Entries keep insertion order and
// duplicate names are permitted; FindByName returns the first match.
type repository struct {
	mu      sync.RWMutex
	classes []FitnessClass
}

func NewRepository() Repository {
	return &repository{}
}

func (r *repository) Create(ctx context.Context, name string, intensity Intensity, basePrice float64) (*FitnessClass, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := FitnessClass{
		Name:      name,
		Intensity: intensity,
		BasePrice: basePrice,
	}
	r.classes = append(r.classes, c)

	out := c
	return &out, nil
}

func (r *repository) GetAll(ctx context.Context) ([]FitnessClass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]FitnessClass, len(r.classes))
	copy(out, r.classes)
	return out, nil
}

func (r *repository) FindByName(ctx context.Context, name string) (*FitnessClass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.classes {
		if strings.EqualFold(c.Name, name) {
			out := c
			return &out, nil
		}
	}
	return nil, ErrClassNotFound
}
