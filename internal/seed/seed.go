package seed

import (
	"context"

	"fitzone/internal/class"
	"fitzone/internal/trainer"
)

// SampleData loads the demo catalog and trainers.
func SampleData(ctx context.Context, classes class.Service, trainers trainer.Service) error {
	classReqs := []class.CreateClassRequest{
		{Name: "Yoga", Intensity: "light", BasePrice: 30.0},
		{Name: "CrossFit", Intensity: "hard", BasePrice: 45.0},
		{Name: "Pilates", Intensity: "medium", BasePrice: 35.0},
	}
	for _, req := range classReqs {
		if _, err := classes.CreateClass(ctx, req); err != nil {
			return err
		}
	}

	trainerReqs := []trainer.CreateTrainerRequest{
		{
			Name:           "Ana Popescu",
			Email:          "ana@fitzone.ro",
			Employment:     "permanent",
			Specialization: "Yoga",
			MonthlySalary:  2500.0,
		},
		{
			Name:           "Carlos Silva",
			Email:          "carlos@trainco.com",
			Employment:     "external",
			Specialization: "CrossFit",
			Company:        "TrainCo",
			HourlyRate:     60.0,
		},
	}
	for _, req := range trainerReqs {
		if _, err := trainers.CreateTrainer(ctx, req); err != nil {
			return err
		}
	}

	return nil
}
