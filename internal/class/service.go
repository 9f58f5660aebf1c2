package class

import (
	"context"
	"errors"

	"fitzone/internal/logger"
	"fitzone/internal/metrics"
)

var ErrInvalidClass = errors.New("invalid class data")

type Service interface {
	CreateClass(ctx context.Context, req CreateClassRequest) (*FitnessClass, error)
	GetAllClasses(ctx context.Context) ([]FitnessClass, error)
	GetClassByName(ctx context.Context, name string) (*FitnessClass, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) CreateClass(ctx context.Context, req CreateClassRequest) (*FitnessClass, error) {
	if req.Name == "" || req.BasePrice < 0 {
		return nil, ErrInvalidClass
	}

	intensity, err := ParseIntensity(req.Intensity)
	if err != nil {
		return nil, ErrInvalidClass
	}

	c, err := s.repo.Create(ctx, req.Name, intensity, req.BasePrice)
	if err != nil {
		return nil, err
	}

	metrics.RecordClassCreated(string(c.Intensity))
	logger.Info("class added", "name", c.Name, "intensity", c.Intensity, "base_price", c.BasePrice)
	return c, nil
}

func (s *service) GetAllClasses(ctx context.Context) ([]FitnessClass, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetClassByName(ctx context.Context, name string) (*FitnessClass, error) {
	c, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, ErrClassNotFound
	}
	return c, nil
}
