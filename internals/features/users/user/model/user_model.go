package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel maps the users table.
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	UserFullName string    `gorm:"column:user_full_name;type:varchar(100);not null" json:"user_full_name"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(255);uniqueIndex;not null" json:"user_email"`
	UserPassword *string   `gorm:"column:user_password" json:"-"`
	UserGoogleID *string   `gorm:"column:user_google_id;type:varchar(255);uniqueIndex" json:"-"`
	UserIsActive bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

// HasPassword reports whether this account can do password login
// (Google-only accounts carry no hash).
func (u *UserModel) HasPassword() bool {
	return u.UserPassword != nil && *u.UserPassword != ""
}
