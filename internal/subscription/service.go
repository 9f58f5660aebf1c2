package subscription

import (
	"context"
	"errors"
	"strings"

	"fitzone/internal/class"
	"fitzone/internal/logger"
	"fitzone/internal/metrics"
)

var ErrInvalidSubscription = errors.New("invalid subscription data")

type Service interface {
	CreateSubscription(ctx context.Context, req CreateSubscriptionRequest) (*Subscription, error)
	GetAllSubscriptions(ctx context.Context) ([]Subscription, error)
}

type service struct {
	repo      Repository
	classRepo class.Repository
	pricing   PricingStrategy
}

// NewService wires the ledger with an injected pricing strategy so the
// algorithm can be swapped without touching subscription creation.
func NewService(repo Repository, classRepo class.Repository, pricing PricingStrategy) Service {
	return &service{
		repo:      repo,
		classRepo: classRepo,
		pricing:   pricing,
	}
}

func (s *service) CreateSubscription(ctx context.Context, req CreateSubscriptionRequest) (*Subscription, error) {
	if req.SubscriberName == "" || req.Months <= 0 {
		return nil, ErrInvalidSubscription
	}

	// An empty class name is the sanctioned absent case and prices to
	// 0; a non-empty name must resolve against the catalog.
	var chosen *class.FitnessClass
	if strings.TrimSpace(req.ClassName) != "" {
		found, err := s.classRepo.FindByName(ctx, req.ClassName)
		if err != nil {
			return nil, class.ErrClassNotFound
		}
		chosen = found
	}

	sub := Subscription{
		SubscriberName: req.SubscriberName,
		Months:         req.Months,
		IsPremium:      req.IsPremium,
		Price:          s.pricing.CalculatePrice(chosen, req.Months, req.IsPremium),
	}
	if chosen != nil {
		sub.ClassName = chosen.Name
	}

	created, err := s.repo.Create(ctx, sub)
	if err != nil {
		return nil, err
	}

	metrics.RecordSubscription(strings.ToLower(created.PlanLabel()))
	logger.Info("subscription created",
		"id", created.ID,
		"subscriber", created.SubscriberName,
		"class", created.ClassName,
		"months", created.Months,
		"premium", created.IsPremium,
		"price", created.Price,
	)
	return created, nil
}

func (s *service) GetAllSubscriptions(ctx context.Context) ([]Subscription, error) {
	return s.repo.GetAll(ctx)
}
