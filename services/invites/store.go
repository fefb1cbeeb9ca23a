package invites

import (
	models "Damka/models/postgres"

	"gorm.io/gorm"
)

// GormStore persists invites in PostgreSQL.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) Save(invite *models.Invite) error {
	return s.DB.Create(invite).Error
}
