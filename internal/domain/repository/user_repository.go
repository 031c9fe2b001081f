package repository

import "github.com/usahakita/backoffice-api/internal/domain/entity"

// UserRepository port persistence untuk User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
