// Package table models the OrderTable aggregate: a physical table that guests
// occupy and that eat-in orders are opened against.
package table

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// ErrOrderTableIsNotConstructed is returned when an OrderTable bypassed its constructors.
var ErrOrderTableIsNotConstructed = errors.New("OrderTable must be created via NewOrderTable or RestoreOrderTable")

// OrderTable tracks whether a table is occupied and by how many guests.
// An unoccupied table always has zero guests.
type OrderTable struct {
	id             kernel.UUID
	name           string
	numberOfGuests int
	occupied       bool

	guard guard.ConstructorGuard
}

// NewOrderTable creates an empty, unoccupied table.
func NewOrderTable(id kernel.UUID, name string) (*OrderTable, error) {
	t := &OrderTable{guard: guard.NewConstructorGuard()}

	if err := errors.Join(t.setID(id), t.setName(name)); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreOrderTable rebuilds a table from storage.
func RestoreOrderTable(id kernel.UUID, name string, numberOfGuests int, occupied bool) (*OrderTable, error) {
	t, err := NewOrderTable(id, name)
	if err != nil {
		return nil, err
	}

	if numberOfGuests < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"numberOfGuests", fmt.Errorf("%d is less than 0", numberOfGuests),
		)
	}

	t.numberOfGuests = numberOfGuests
	t.occupied = occupied
	return t, nil
}

// Validate ensures the table was built through a constructor.
func (t *OrderTable) Validate() error {
	if t == nil {
		return ErrOrderTableIsNotConstructed
	}
	return t.guard.Validate(ErrOrderTableIsNotConstructed)
}

func (t *OrderTable) ID() kernel.UUID {
	return t.id
}

func (t *OrderTable) Name() string {
	return t.name
}

func (t *OrderTable) NumberOfGuests() int {
	return t.numberOfGuests
}

func (t *OrderTable) IsOccupied() bool {
	return t.occupied
}

// Sit marks the table occupied by the given number of guests.
func (t *OrderTable) Sit(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"numberOfGuests", fmt.Errorf("%d is less than 0", numberOfGuests),
		)
	}
	t.occupied = true
	t.numberOfGuests = numberOfGuests
	return nil
}

// Release frees the table: unoccupied, zero guests.
func (t *OrderTable) Release() {
	t.occupied = false
	t.numberOfGuests = 0
}

func (t *OrderTable) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *OrderTable) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}
