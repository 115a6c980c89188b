package repository

import "github.com/wms-dojo/picking-trainer-api/internal/domain/entity"

// SessionRepository は TrainingSession の永続化ポート(DIP)。
type SessionRepository interface {
	Create(session *entity.TrainingSession) error
	GetByID(id string) (*entity.TrainingSession, error)
	Update(session *entity.TrainingSession) error
}
