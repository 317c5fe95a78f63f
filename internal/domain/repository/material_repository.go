package repository

import "github.com/jhoicas/joyeria-api/internal/domain/entity"

// MaterialRepository define el puerto de persistencia del catálogo de metales y piedras (DIP).
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	// ListByCompany lista el catálogo; kind vacío devuelve metales y piedras.
	ListByCompany(companyID, kind string) ([]*entity.Material, error)
	UpdateRate(id string, ratePaise int64) error
}
