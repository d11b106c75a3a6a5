package commands

import (
	"errors"
	"strings"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand is sent by the rider when the tubes are handed
// over. photoRef points to the stored proof-of-delivery photo.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	riderID  kernel.UUID
	orderID  kernel.UUID
	photoRef string

	guard guard.ConstructorGuard
}

func NewCompleteDeliveryCommand(riderID, orderID kernel.UUID, photoRef string) (CompleteDeliveryCommand, error) {
	var errList []error
	if err := riderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, err)
	}
	photoRef = strings.TrimSpace(photoRef)
	if photoRef == "" {
		errList = append(errList, errs.NewValueIsRequiredError("delivery photo"))
	}
	if err := errors.Join(errList...); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return CompleteDeliveryCommand{
		riderID:  riderID,
		orderID:  orderID,
		photoRef: photoRef,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CompleteDeliveryCommand) PhotoRef() string {
	return c.photoRef
}
