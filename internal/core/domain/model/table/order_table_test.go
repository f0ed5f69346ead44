package table_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderTable(t *testing.T) {
	tbl, err := table.NewOrderTable(kernel.NewUUID(), "table 1")
	require.NoError(t, err)
	assert.Equal(t, "table 1", tbl.Name())
	assert.False(t, tbl.IsOccupied())
	assert.Equal(t, 0, tbl.NumberOfGuests())

	_, err = table.NewOrderTable(kernel.NewUUID(), "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRestoreOrderTable(t *testing.T) {
	tbl, err := table.RestoreOrderTable(kernel.NewUUID(), "table 1", 3, true)
	require.NoError(t, err)
	assert.True(t, tbl.IsOccupied())
	assert.Equal(t, 3, tbl.NumberOfGuests())

	_, err = table.RestoreOrderTable(kernel.NewUUID(), "table 1", -1, true)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrderTable_SitAndRelease(t *testing.T) {
	tbl, err := table.NewOrderTable(kernel.NewUUID(), "table 1")
	require.NoError(t, err)

	require.NoError(t, tbl.Sit(4))
	assert.True(t, tbl.IsOccupied())
	assert.Equal(t, 4, tbl.NumberOfGuests())

	require.ErrorIs(t, tbl.Sit(-1), errs.ErrValueIsInvalid)
	assert.Equal(t, 4, tbl.NumberOfGuests())

	tbl.Release()
	assert.False(t, tbl.IsOccupied())
	assert.Equal(t, 0, tbl.NumberOfGuests())
}

func TestOrderTable_NotConstructed(t *testing.T) {
	var tbl *table.OrderTable
	require.ErrorIs(t, tbl.Validate(), table.ErrOrderTableIsNotConstructed)
	require.ErrorIs(t, (&table.OrderTable{}).Validate(), table.ErrOrderTableIsNotConstructed)
}
