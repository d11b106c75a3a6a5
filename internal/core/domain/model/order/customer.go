package order

import (
	"errors"
	"strings"

	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer")

// Customer is the buyer an order is delivered to.
type Customer struct {
	name          string
	address       string
	contactNumber string

	guard guard.ConstructorGuard
}

// NewCustomer trims every field and requires all three.
func NewCustomer(name, address, contactNumber string) (Customer, error) {
	c := Customer{
		name:          strings.TrimSpace(name),
		address:       strings.TrimSpace(address),
		contactNumber: strings.TrimSpace(contactNumber),
		guard:         guard.NewConstructorGuard(),
	}

	var errList []error
	if c.name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer name"))
	}
	if c.address == "" {
		errList = append(errList, errs.NewValueIsRequiredError("address"))
	}
	if c.contactNumber == "" {
		errList = append(errList, errs.NewValueIsRequiredError("contact number"))
	}
	if err := errors.Join(errList...); err != nil {
		return Customer{}, err
	}

	return c, nil
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Address() string {
	return c.address
}

func (c Customer) ContactNumber() string {
	return c.contactNumber
}

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}
