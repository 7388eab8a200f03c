package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnouncementModel maps the announcements table.
type AnnouncementModel struct {
	AnnouncementID          uuid.UUID `gorm:"column:announcement_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"announcement_id"`
	AnnouncementClassroomID uuid.UUID `gorm:"column:announcement_classroom_id;type:uuid;not null;index" json:"announcement_classroom_id"`
	AnnouncementAuthorID    uuid.UUID `gorm:"column:announcement_author_id;type:uuid;not null" json:"announcement_author_id"`
	AnnouncementTitle       string    `gorm:"column:announcement_title;type:varchar(180);not null" json:"announcement_title"`
	AnnouncementContent     string    `gorm:"column:announcement_content;type:text;not null" json:"announcement_content"`

	AnnouncementCreatedAt time.Time      `gorm:"column:announcement_created_at;not null;autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time      `gorm:"column:announcement_updated_at;not null;autoUpdateTime" json:"announcement_updated_at"`
	AnnouncementDeletedAt gorm.DeletedAt `gorm:"column:announcement_deleted_at;index" json:"announcement_deleted_at,omitempty"`
}

func (AnnouncementModel) TableName() string { return "announcements" }
