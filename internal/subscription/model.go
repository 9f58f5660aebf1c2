package subscription

import "fmt"

// Subscription is immutable once created. ClassName is a weak reference
// to the catalog class by name; Price is computed exactly once at
// creation and never recomputed, even if the class's base price changes
// later.
type Subscription struct {
	ID             int     `json:"id"`
	SubscriberName string  `json:"subscriber_name"`
	ClassName      string  `json:"class_name,omitempty"`
	Months         int     `json:"months"`
	IsPremium      bool    `json:"is_premium"`
	Price          float64 `json:"price"`
}

// PlanLabel returns the display label for the subscription plan.
func (s *Subscription) PlanLabel() string {
	if s.IsPremium {
		return "Premium"
	}
	return "Standard"
}

// Brief renders the canonical one-line text form of the subscription.
func (s *Subscription) Brief() string {
	cls := s.ClassName
	if cls == "" {
		cls = "N/A"
	}
	return fmt.Sprintf("[%d] %s - %s - %d months - %s - %.2f",
		s.ID, s.SubscriberName, cls, s.Months, s.PlanLabel(), s.Price)
}

type CreateSubscriptionRequest struct {
	SubscriberName string `json:"subscriber_name" binding:"required"`
	ClassName      string `json:"class_name"`
	Months         int    `json:"months" binding:"required,gt=0"`
	IsPremium      bool   `json:"is_premium"`
}
