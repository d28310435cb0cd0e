package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminUsuario is a back-office operator. Shoppers never authenticate.
type AdminUsuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Rol          string    `gorm:"not null;default:'staff'"` // admin | staff
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AdminUsuario) TableName() string { return "admin_usuarios" }
