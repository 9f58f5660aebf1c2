package trainer

import (
	"context"
	"errors"
)

var ErrTrainerNotFound = errors.New("trainer not found")

type Repository interface {
	Create(ctx context.Context, t Trainer) (*Trainer, error)
	GetAll(ctx context.Context) ([]Trainer, error)
	FindByID(ctx context.Context, id int) (*Trainer, error)
}
