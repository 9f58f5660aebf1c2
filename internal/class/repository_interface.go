package class

import (
	"context"
	"errors"
)

var ErrClassNotFound = errors.New("class not found")

type Repository interface {
	Create(ctx context.Context, name string, intensity Intensity, basePrice float64) (*FitnessClass, error)
	GetAll(ctx context.Context) ([]FitnessClass, error)
	FindByName(ctx context.Context, name string) (*FitnessClass, error)
}
