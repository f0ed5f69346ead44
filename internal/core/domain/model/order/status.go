package order

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// Status is the lifecycle state of an order. Transitions are monotonic and
// gated by Type; see the package documentation for the full graph.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Waiting
	Accepted
	Served
	Delivering
	Delivered
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Waiting:    "WAITING",
		Accepted:   "ACCEPTED",
		Served:     "SERVED",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Completed:  "COMPLETED",
	}
}

// Validate rejects Unknown and out-of-range values, e.g. ones read back from storage.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Accept moves Waiting to Accepted.
func (s Status) Accept() (Status, error) {
	if err := s.require(Waiting, "accept"); err != nil {
		return Unknown, err
	}
	return Accepted, nil
}

// Serve moves Accepted to Served.
func (s Status) Serve() (Status, error) {
	if err := s.require(Accepted, "serve"); err != nil {
		return Unknown, err
	}
	return Served, nil
}

// StartDelivery moves a Delivery order from Served to Delivering.
func (s Status) StartDelivery(t Type) (Status, error) {
	if t != Delivery {
		return Unknown, errs.NewStateIsInvalidErrorWithCause(
			"type", fmt.Errorf("%s order cannot be delivered", t),
		)
	}
	if err := s.require(Served, "start delivery"); err != nil {
		return Unknown, err
	}
	return Delivering, nil
}

// CompleteDelivery moves Delivering to Delivered.
func (s Status) CompleteDelivery() (Status, error) {
	if err := s.require(Delivering, "complete delivery"); err != nil {
		return Unknown, err
	}
	return Delivered, nil
}

// Complete moves a Delivery order from Delivered, or any other order from
// Served, to Completed.
func (s Status) Complete(t Type) (Status, error) {
	expected := Served
	if t == Delivery {
		expected = Delivered
	}
	if err := s.require(expected, "complete"); err != nil {
		return Unknown, err
	}
	return Completed, nil
}

func (s Status) require(expected Status, action string) error {
	if s != expected {
		return errs.NewStateIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot %s from %s, expected %s", action, s, expected),
		)
	}
	return nil
}
