package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklistModel holds revoked access tokens until they expire on their own.
type TokenBlacklistModel struct {
	TokenBlacklistID uuid.UUID `gorm:"column:token_blacklist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"token_blacklist_id"`
	Token            string    `gorm:"column:token;type:text;uniqueIndex;not null" json:"token"`
	ExpiredAt        time.Time `gorm:"column:expired_at;not null" json:"expired_at"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
