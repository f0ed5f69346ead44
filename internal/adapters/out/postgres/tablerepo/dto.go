// Package tablerepo persists order tables in the order_tables table.
package tablerepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// OrderTableDTO is the order_tables row.
type OrderTableDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	NumberOfGuests int       `gorm:"not null"`
	Occupied       bool      `gorm:"not null"`
}

func (OrderTableDTO) TableName() string {
	return "order_tables"
}

func fromDomain(t *table.OrderTable) OrderTableDTO {
	return OrderTableDTO{
		ID:             t.ID().Bytes(),
		Name:           t.Name(),
		NumberOfGuests: t.NumberOfGuests(),
		Occupied:       t.IsOccupied(),
	}
}

func toDomain(dto OrderTableDTO) (*table.OrderTable, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return table.RestoreOrderTable(id, dto.Name, dto.NumberOfGuests, dto.Occupied)
}
