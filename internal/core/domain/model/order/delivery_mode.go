package order

import (
	"fmt"

	"icetube/internal/pkg/errs"
)

// DeliveryMode tells whether the customer collects the order or a rider brings it.
type DeliveryMode int

const (
	UnknownDeliveryMode DeliveryMode = iota
	PickUp
	Deliver
)

func getDeliveryModeStrings() map[DeliveryMode]string {
	return map[DeliveryMode]string{
		UnknownDeliveryMode: "unknown",
		PickUp:              "pick_up",
		Deliver:             "deliver",
	}
}

// ParseDeliveryMode accepts "pick_up" or "deliver".
func ParseDeliveryMode(s string) (DeliveryMode, error) {
	switch s {
	case PickUp.String():
		return PickUp, nil
	case Deliver.String():
		return Deliver, nil
	default:
		return UnknownDeliveryMode, errs.NewValueIsInvalidErrorWithCause(
			"delivery mode",
			fmt.Errorf("%q is not one of pick_up, deliver", s),
		)
	}
}

func (m DeliveryMode) Validate() error {
	if m != PickUp && m != Deliver {
		return errs.NewValueIsInvalidErrorWithCause("delivery mode", fmt.Errorf("%d is not a valid delivery mode", m))
	}
	return nil
}

func (m DeliveryMode) String() string {
	if str, ok := getDeliveryModeStrings()[m]; ok {
		return str
	}
	return "unknown"
}
