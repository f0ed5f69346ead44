package order

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// Type is the fulfillment channel of an order.
type Type int

const (
	// UnknownType is the zero value and means "type absent".
	UnknownType Type = iota
	EatIn
	Takeout
	Delivery
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "UNKNOWN",
		EatIn:       "EAT_IN",
		Takeout:     "TAKEOUT",
		Delivery:    "DELIVERY",
	}
}

// TypeFromString parses the wire names EAT_IN, TAKEOUT and DELIVERY.
// An empty string yields UnknownType without error so callers can report it as absent.
func TypeFromString(s string) (Type, error) {
	if s == "" {
		return UnknownType, nil
	}
	for t, name := range getTypeStrings() {
		if t != UnknownType && name == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid order type", s))
}

// Validate reports UnknownType as a missing value and anything else out of range as invalid.
func (t Type) Validate() error {
	if t == UnknownType {
		return errs.NewValueIsRequiredError("type")
	}
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateQuantity rejects negative quantities for every type except EatIn.
// EatIn orders accept any quantity, negative ones included.
func (t Type) ValidateQuantity(quantity int64) error {
	if t != EatIn && quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is less than 0", quantity),
		)
	}
	return nil
}
