package repository

import "github.com/jhoicas/joyeria-api/internal/domain/entity"

// ItemFilter filtros del listado de piezas.
type ItemFilter struct {
	Search  string // coincide con SKU o nombre
	InStock bool   // solo piezas con Quantity > 0
	Limit   int
	Offset  int
}

// ItemRepository define el puerto de persistencia para JewelryItem (DIP).
type ItemRepository interface {
	Create(item *entity.JewelryItem) error
	GetByID(id string) (*entity.JewelryItem, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.JewelryItem, error)
	Update(item *entity.JewelryItem) error
	List(companyID string, filter ItemFilter) ([]*entity.JewelryItem, error)
	Delete(id string) error
}
