package class

import (
	"fmt"
	"strings"
)

// Intensity scales a class's monthly price in the pricing engine.
type Intensity string

const (
	IntensityLight  Intensity = "light"
	IntensityMedium Intensity = "medium"
	IntensityHard   Intensity = "hard"
)

// ParseIntensity matches an intensity label case-insensitively.
func ParseIntensity(s string) (Intensity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return IntensityLight, nil
	case "medium":
		return IntensityMedium, nil
	case "hard":
		return IntensityHard, nil
	default:
		return "", fmt.Errorf("unknown intensity %q", s)
	}
}

type FitnessClass struct {
	Name      string    `json:"name"`
	Intensity Intensity `json:"intensity"`
	BasePrice float64   `json:"base_price"`
}

// Summary renders the canonical one-line text form of the class.
func (f *FitnessClass) Summary() string {
	return fmt.Sprintf("%s (intensity: %s, base price: %.2f)", f.Name, f.Intensity, f.BasePrice)
}

type CreateClassRequest struct {
	Name      string  `json:"name" binding:"required"`
	Intensity string  `json:"intensity" binding:"required,oneof=light medium hard"`
	BasePrice float64 `json:"base_price" binding:"gte=0"`
}
