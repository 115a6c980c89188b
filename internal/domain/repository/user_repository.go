package repository

import "github.com/wms-dojo/picking-trainer-api/internal/domain/entity"

// UserRepository は User の永続化ポート(DIP)。
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}
