package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfileModel maps the user_profiles table (1:1 with users).
type UserProfileModel struct {
	ProfileID        uuid.UUID `gorm:"column:profile_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"profile_id"`
	ProfileUserID    uuid.UUID `gorm:"column:profile_user_id;type:uuid;uniqueIndex;not null" json:"profile_user_id"`
	ProfileAvatarURL *string   `gorm:"column:profile_avatar_url" json:"profile_avatar_url,omitempty"`
	ProfileBio       *string   `gorm:"column:profile_bio;type:text" json:"profile_bio,omitempty"`
	ProfilePhone     *string   `gorm:"column:profile_phone;type:varchar(30)" json:"profile_phone,omitempty"`

	ProfileCreatedAt time.Time      `gorm:"column:profile_created_at;not null;autoCreateTime" json:"profile_created_at"`
	ProfileUpdatedAt time.Time      `gorm:"column:profile_updated_at;not null;autoUpdateTime" json:"profile_updated_at"`
	ProfileDeletedAt gorm.DeletedAt `gorm:"column:profile_deleted_at;index" json:"profile_deleted_at,omitempty"`
}

func (UserProfileModel) TableName() string { return "user_profiles" }
