package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentModel maps the assignments table.
type AssignmentModel struct {
	AssignmentID          uuid.UUID  `gorm:"column:assignment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	AssignmentClassroomID uuid.UUID  `gorm:"column:assignment_classroom_id;type:uuid;not null;index" json:"assignment_classroom_id"`
	AssignmentCreatedBy   uuid.UUID  `gorm:"column:assignment_created_by;type:uuid;not null" json:"assignment_created_by"`
	AssignmentTitle       string     `gorm:"column:assignment_title;type:varchar(180);not null" json:"assignment_title"`
	AssignmentType        string     `gorm:"column:assignment_type;type:varchar(12);not null;default:'assignment'" json:"assignment_type"`
	AssignmentDescription *string    `gorm:"column:assignment_description;type:text" json:"assignment_description,omitempty"`
	AssignmentDueAt       *time.Time `gorm:"column:assignment_due_at" json:"assignment_due_at,omitempty"`
	AssignmentPoints      float64    `gorm:"column:assignment_points;type:numeric(7,2);not null;default:100" json:"assignment_points"`
	AssignmentStatus      string     `gorm:"column:assignment_status;type:varchar(20);not null;default:'published'" json:"assignment_status"`

	AssignmentCreatedAt time.Time      `gorm:"column:assignment_created_at;not null;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time      `gorm:"column:assignment_updated_at;not null;autoUpdateTime" json:"assignment_updated_at"`
	AssignmentDeletedAt gorm.DeletedAt `gorm:"column:assignment_deleted_at;index" json:"assignment_deleted_at,omitempty"`
}

func (AssignmentModel) TableName() string { return "assignments" }
