package repository

import "github.com/jhoicas/joyeria-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// FindByEmail busca por email sin importar la empresa (login).
	FindByEmail(email string) (*entity.User, error)
	Count() (int, error)
}
