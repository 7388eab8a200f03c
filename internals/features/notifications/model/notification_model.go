package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel maps the notifications table.
type NotificationModel struct {
	NotificationID          uuid.UUID  `gorm:"column:notification_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID      uuid.UUID  `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationClassroomID *uuid.UUID `gorm:"column:notification_classroom_id;type:uuid;index" json:"notification_classroom_id,omitempty"`
	NotificationType        string     `gorm:"column:notification_type;type:varchar(30);not null" json:"notification_type"`
	NotificationTitle       string     `gorm:"column:notification_title;type:varchar(180);not null" json:"notification_title"`
	NotificationBody        *string    `gorm:"column:notification_body;type:text" json:"notification_body,omitempty"`
	NotificationReadAt      *time.Time `gorm:"column:notification_read_at" json:"notification_read_at,omitempty"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;not null;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }

// Notification types produced today.
const (
	NotificationTypeAnnouncement = "announcement"
)
