// Package menurepo persists menu aggregates in the menus and menu_products tables.
package menurepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuDTO is the menus row.
type MenuDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name         string           `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal  `gorm:"type:numeric(19,2);not null"`
	Displayed    bool             `gorm:"not null;index"`
	MenuGroupID  uuid.UUID        `gorm:"type:uuid;not null"`
	MenuProducts []MenuProductDTO `gorm:"foreignKey:MenuID;references:ID;constraint:OnDelete:CASCADE"`
}

func (MenuDTO) TableName() string {
	return "menus"
}

// MenuProductDTO is one menu_products row, ordered within its menu by Seq.
type MenuProductDTO struct {
	MenuID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int       `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int64     `gorm:"not null"`
}

func (MenuProductDTO) TableName() string {
	return "menu_products"
}

func fromDomain(m *menu.Menu) MenuDTO {
	products := m.MenuProducts()
	menuProducts := make([]MenuProductDTO, 0, len(products))
	for i, mp := range products {
		menuProducts = append(menuProducts, MenuProductDTO{
			MenuID:    m.ID().Bytes(),
			Seq:       i,
			ProductID: mp.ProductID().Bytes(),
			Quantity:  mp.Quantity(),
		})
	}

	return MenuDTO{
		ID:           m.ID().Bytes(),
		Name:         m.Name(),
		Price:        m.Price().Decimal(),
		Displayed:    m.IsDisplayed(),
		MenuGroupID:  m.MenuGroupID().Bytes(),
		MenuProducts: menuProducts,
	}
}

func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	groupID, err := kernel.UUIDFromBytes(dto.MenuGroupID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	menuProducts := make([]*menu.MenuProduct, 0, len(dto.MenuProducts))
	for _, mpDTO := range dto.MenuProducts {
		productID, idErr := kernel.UUIDFromBytes(mpDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}

		mp, mpErr := menu.NewMenuProduct(productID, mpDTO.Quantity)
		if mpErr != nil {
			return nil, mpErr
		}
		menuProducts = append(menuProducts, mp)
	}

	return menu.RestoreMenu(id, dto.Name, price, dto.Displayed, groupID, menuProducts)
}

func toDomainList(dtos []MenuDTO) ([]*menu.Menu, error) {
	menus := make([]*menu.Menu, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}

	return menus, nil
}

func toRawIDs(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}
