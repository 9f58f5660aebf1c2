package trainer

import (
	"fmt"
	"strings"
)

// Employment is the trainer's employment variant, fixed at creation.
type Employment string

const (
	EmploymentPermanent Employment = "permanent"
	EmploymentExternal  Employment = "external"
)

func ParseEmployment(s string) (Employment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "permanent":
		return EmploymentPermanent, nil
	case "external":
		return EmploymentExternal, nil
	default:
		return "", fmt.Errorf("unknown employment type %q", s)
	}
}

// Trainer carries a shared field set plus variant-specific payload:
// MonthlySalary for permanent trainers, Company/HourlyRate for external
// ones. Specialization is a weak reference to a catalog class by name;
// empty means unassigned.
type Trainer struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Specialization string     `json:"specialization,omitempty"`
	Employment     Employment `json:"employment"`
	MonthlySalary  float64    `json:"monthly_salary,omitempty"`
	Company        string     `json:"company,omitempty"`
	HourlyRate     float64    `json:"hourly_rate,omitempty"`
}

// TypeLabel returns the display label for the employment variant.
func (t *Trainer) TypeLabel() string {
	if t.Employment == EmploymentExternal {
		return "External"
	}
	return "Permanent"
}

// Summary renders the canonical one-line text form of the trainer.
func (t *Trainer) Summary() string {
	spec := t.Specialization
	if spec == "" {
		spec = "unassigned"
	}
	s := fmt.Sprintf("[%d] %s (%s) - %s - %s", t.ID, t.Name, t.TypeLabel(), t.Email, spec)
	switch t.Employment {
	case EmploymentExternal:
		s += fmt.Sprintf(" (company: %s, hourly rate: %.2f)", t.Company, t.HourlyRate)
	default:
		s += fmt.Sprintf(" (salary: %.2f)", t.MonthlySalary)
	}
	return s
}

type CreateTrainerRequest struct {
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Employment     string  `json:"employment" binding:"required,oneof=permanent external"`
	Specialization string  `json:"specialization"`
	MonthlySalary  float64 `json:"monthly_salary"`
	Company        string  `json:"company"`
	HourlyRate     float64 `json:"hourly_rate"`
}
