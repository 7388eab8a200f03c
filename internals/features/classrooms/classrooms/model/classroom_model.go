package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassroomModel maps the classrooms table.
type ClassroomModel struct {
	ClassroomID          uuid.UUID `gorm:"column:classroom_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"classroom_id"`
	ClassroomTeacherID   uuid.UUID `gorm:"column:classroom_teacher_id;type:uuid;not null;index" json:"classroom_teacher_id"`
	ClassroomName        string    `gorm:"column:classroom_name;type:varchar(120);not null" json:"classroom_name"`
	ClassroomSubject     *string   `gorm:"column:classroom_subject;type:varchar(120)" json:"classroom_subject,omitempty"`
	ClassroomCode        string    `gorm:"column:classroom_code;type:varchar(12);uniqueIndex;not null" json:"classroom_code"`
	ClassroomDescription *string   `gorm:"column:classroom_description;type:text" json:"classroom_description,omitempty"`
	ClassroomSchedule    *string   `gorm:"column:classroom_schedule;type:varchar(120)" json:"classroom_schedule,omitempty"`
	ClassroomRoom        *string   `gorm:"column:classroom_room;type:varchar(60)" json:"classroom_room,omitempty"`
	ClassroomColor       *string   `gorm:"column:classroom_color;type:varchar(20)" json:"classroom_color,omitempty"`

	ClassroomCreatedAt time.Time      `gorm:"column:classroom_created_at;not null;autoCreateTime" json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time      `gorm:"column:classroom_updated_at;not null;autoUpdateTime" json:"classroom_updated_at"`
	ClassroomDeletedAt gorm.DeletedAt `gorm:"column:classroom_deleted_at;index" json:"classroom_deleted_at,omitempty"`
}

func (ClassroomModel) TableName() string { return "classrooms" }
