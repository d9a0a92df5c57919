package model

import (
	"time"

	"github.com/google/uuid"
)

// ReferralCodeModel mirrors the 'referral_codes' table. Both the code value
// and the owner are unique, so a user holds at most one active code.
type ReferralCodeModel struct {
	UUID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Code           string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	ExpirationTime time.Time `gorm:"not null"`
	OwnerUUID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReferralCodeModel) TableName() string {
	return "referral_codes"
}
