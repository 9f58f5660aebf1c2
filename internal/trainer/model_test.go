package trainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEmployment(t *testing.T) {
	tests := []struct {
		input    string
		expected Employment
		wantErr  bool
	}{
		{input: "permanent", expected: EmploymentPermanent},
		{input: "External", expected: EmploymentExternal},
		{input: " EXTERNAL ", expected: EmploymentExternal},
		{input: "freelance", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEmployment(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTrainer_Summary(t *testing.T) {
	permanent := Trainer{
		ID:             1,
		Name:           "Ana Popescu",
		Email:          "ana@fitzone.ro",
		Specialization: "Yoga",
		Employment:     EmploymentPermanent,
		MonthlySalary:  2500.0,
	}
	assert.Equal(t,
		"[1] Ana Popescu (Permanent) - ana@fitzone.ro - Yoga (salary: 2500.00)",
		permanent.Summary(),
	)

	external := Trainer{
		ID:         2,
		Name:       "Carlos Silva",
		Email:      "carlos@trainco.com",
		Employment: EmploymentExternal,
		Company:    "TrainCo",
		HourlyRate: 60.0,
	}
	assert.Equal(t,
		"[2] Carlos Silva (External) - carlos@trainco.com - unassigned (company: TrainCo, hourly rate: 60.00)",
		external.Summary(),
	)
}
