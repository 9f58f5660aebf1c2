package subscription

import (
	"math"

	"fitzone/internal/class"
)

const (
	lightFactor  = 0.90
	mediumFactor = 1.00
	hardFactor   = 1.20

	yearDiscount     = 0.85
	halfYearDiscount = 0.92

	premiumSurcharge = 1.30
)

// PricingStrategy computes a subscription price from the chosen class,
// the duration in months and the premium flag. Implementations must be
// pure; the service invokes the strategy exactly once per subscription.
type PricingStrategy interface {
	CalculatePrice(chosen *class.FitnessClass, months int, isPremium bool) float64
}

// DefaultPricing applies, in order: the intensity factor on the monthly
// base price, the duration step discount on the subtotal, the premium
// surcharge, then rounds to 2 decimals. An absent class prices to 0.
// It never fails; months <= 0 just yields a degenerate zero subtotal.
type DefaultPricing struct{}

func NewDefaultPricing() PricingStrategy {
	return DefaultPricing{}
}

func (DefaultPricing) CalculatePrice(chosen *class.FitnessClass, months int, isPremium bool) float64 {
	monthly := 0.0
	if chosen != nil {
		monthly = chosen.BasePrice
		switch chosen.Intensity {
		case class.IntensityLight:
			monthly *= lightFactor
		case class.IntensityHard:
			monthly *= hardFactor
		default:
			monthly *= mediumFactor
		}
	}

	subtotal := monthly * float64(months)

	// Step function, not cumulative.
	switch {
	case months >= 12:
		subtotal *= yearDiscount
	case months >= 6:
		subtotal *= halfYearDiscount
	}

	if isPremium {
		subtotal *= premiumSurcharge
	}

	return roundTo2(subtotal)
}

// roundTo2 rounds half away from zero, which for non-negative prices
// matches rounding a plain decimal half-up to 2 places.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
