package report

import (
	"context"
	"sort"

	"fitzone/internal/class"
	"fitzone/internal/metrics"
	"fitzone/internal/trainer"
)

// UnassignedGroup collects trainers without a specialization.
const UnassignedGroup = "Unassigned"

// Group is one report entry: a class name and the trainers assigned to
// it. Classes with no trainers appear with an empty list.
type Group struct {
	ClassName string            `json:"class_name"`
	Trainers  []trainer.Trainer `json:"trainers"`
}

type Service interface {
	BuildReport(ctx context.Context) ([]Group, error)
}

type service struct {
	classRepo   class.Repository
	trainerRepo trainer.Repository
}

func NewService(classRepo class.Repository, trainerRepo trainer.Repository) Service {
	return &service{
		classRepo:   classRepo,
		trainerRepo: trainerRepo,
	}
}

// BuildReport groups trainers by assigned class name. Every distinct
// catalog class gets a group, trainers with a specialization not in the
// catalog get a dynamically created group under that name, and all
// group names sort lexicographically. Inputs are never mutated.
func (s *service) BuildReport(ctx context.Context) ([]Group, error) {
	classes, err := s.classRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	trainers, err := s.trainerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]trainer.Trainer)
	for _, c := range classes {
		if _, ok := groups[c.Name]; !ok {
			groups[c.Name] = []trainer.Trainer{}
		}
	}
	groups[UnassignedGroup] = []trainer.Trainer{}

	for _, t := range trainers {
		key := t.Specialization
		if key == "" {
			key = UnassignedGroup
		}
		groups[key] = append(groups[key], t)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Group, 0, len(names))
	for _, name := range names {
		out = append(out, Group{ClassName: name, Trainers: groups[name]})
	}

	metrics.RecordReportGenerated()
	return out, nil
}
