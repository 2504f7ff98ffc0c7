package order

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Minimum lengths for the fields a customer submits on the sale page.
const (
	MinCustomerNameLength    = 2
	MinCustomerPhoneLength   = 10
	MinDeliveryAddressLength = 10
)

// Customer is a value object for the identity and delivery data a customer
// submits exactly once, when the order moves from Created to Pending.
// The delivery state (region) is optional; all other fields are required.
type Customer struct {
	name          string
	phone         string
	address       string
	deliveryState string

	guard kernel.ConstructorGuard
}

// NewCustomer creates validated customer data for an order submission.
// Validation failures carry field-level detail so a rejected submission can
// report which field failed and why.
func NewCustomer(name, phone, address, deliveryState string) (Customer, error) {
	customer := Customer{
		deliveryState: deliveryState,
		guard:         kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setPhone(phone),
		customer.setAddress(address),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate ensures the customer data was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the delivery address.
func (c Customer) Address() string {
	return c.address
}

// DeliveryState returns the delivery region, or "" when not supplied.
func (c Customer) DeliveryState() string {
	return c.deliveryState
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if utf8.RuneCountInString(name) < MinCustomerNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("must be at least %d characters", MinCustomerNameLength))
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if utf8.RuneCountInString(phone) < MinCustomerPhoneLength {
		return errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("must be at least %d characters", MinCustomerPhoneLength))
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if utf8.RuneCountInString(address) < MinDeliveryAddressLength {
		return errs.NewValueIsInvalidErrorWithCause("address",
			fmt.Errorf("must be at least %d characters", MinDeliveryAddressLength))
	}
	c.address = address
	return nil
}
