package trainer

import (
	"context"
	"errors"

	"fitzone/internal/class"
	"fitzone/internal/logger"
	"fitzone/internal/metrics"
)

var ErrInvalidTrainer = errors.New("invalid trainer data")

type Service interface {
	CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*Trainer, error)
	GetAllTrainers(ctx context.Context) ([]Trainer, error)
	GetTrainerByID(ctx context.Context, id int) (*Trainer, error)
}

type service struct {
	repo      Repository
	classRepo class.Repository
}

func NewService(repo Repository, classRepo class.Repository) Service {
	return &service{
		repo:      repo,
		classRepo: classRepo,
	}
}

func (s *service) CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*Trainer, error) {
	if req.Name == "" || req.Email == "" {
		return nil, ErrInvalidTrainer
	}

	employment, err := ParseEmployment(req.Employment)
	if err != nil {
		return nil, ErrInvalidTrainer
	}

	t := Trainer{
		Name:       req.Name,
		Email:      req.Email,
		Employment: employment,
	}

	switch employment {
	case EmploymentPermanent:
		if req.MonthlySalary <= 0 {
			return nil, ErrInvalidTrainer
		}
		t.MonthlySalary = req.MonthlySalary
	case EmploymentExternal:
		if req.Company == "" || req.HourlyRate <= 0 {
			return nil, ErrInvalidTrainer
		}
		t.Company = req.Company
		t.HourlyRate = req.HourlyRate
	}

	// Specialization is optional; a non-empty one must name a catalog
	// class and is stored with the catalog's spelling.
	if req.Specialization != "" {
		chosen, err := s.classRepo.FindByName(ctx, req.Specialization)
		if err != nil {
			return nil, class.ErrClassNotFound
		}
		t.Specialization = chosen.Name
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}

	metrics.RecordTrainerRegistered(string(created.Employment))
	logger.Info("trainer registered", "id", created.ID, "name", created.Name, "employment", created.Employment)
	return created, nil
}

func (s *service) GetAllTrainers(ctx context.Context) ([]Trainer, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetTrainerByID(ctx context.Context, id int) (*Trainer, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrTrainerNotFound
	}
	return t, nil
}
