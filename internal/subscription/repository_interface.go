package subscription

import "context"

type Repository interface {
	Create(ctx context.Context, sub Subscription) (*Subscription, error)
	GetAll(ctx context.Context) ([]Subscription, error)
}
