// Package model holds the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
// ReferrerUUID is a self-reference; deleting the referrer nulls it out rather
// than cascading into the referred accounts.
type UserModel struct {
	UUID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string     `gorm:"type:varchar(255);unique;not null"`
	Password     string     `gorm:"type:varchar(255);not null"`
	ReferrerUUID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Referrer     *UserModel         `gorm:"foreignKey:ReferrerUUID;references:UUID;constraint:OnDelete:SET NULL"`
	Referrals    []*UserModel       `gorm:"foreignKey:ReferrerUUID;references:UUID"`
	ReferralCode *ReferralCodeModel `gorm:"foreignKey:OwnerUUID;references:UUID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
