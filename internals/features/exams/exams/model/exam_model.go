package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExamModel maps the exams table. The scheduled/open/closed status is
// derived from the availability window at read time and never stored.
type ExamModel struct {
	ExamID          uuid.UUID `gorm:"column:exam_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"exam_id"`
	ExamClassroomID uuid.UUID `gorm:"column:exam_classroom_id;type:uuid;not null;index" json:"exam_classroom_id"`
	ExamCreatedBy   uuid.UUID `gorm:"column:exam_created_by;type:uuid;not null" json:"exam_created_by"`
	ExamTitle       string    `gorm:"column:exam_title;type:varchar(180);not null" json:"exam_title"`
	ExamDescription *string   `gorm:"column:exam_description;type:text" json:"exam_description,omitempty"`

	ExamDurationMin   int     `gorm:"column:exam_duration_min;not null;default:60" json:"exam_duration_min"`
	ExamQuestionCount int     `gorm:"column:exam_question_count;not null;default:0" json:"exam_question_count"`
	ExamTotalMarks    float64 `gorm:"column:exam_total_marks;type:numeric(7,2);not null;default:0" json:"exam_total_marks"`

	ExamAvailableFrom  *time.Time `gorm:"column:exam_available_from" json:"exam_available_from,omitempty"`
	ExamAvailableUntil *time.Time `gorm:"column:exam_available_until" json:"exam_available_until,omitempty"`
	ExamMaxAttempts    int        `gorm:"column:exam_max_attempts;not null;default:1" json:"exam_max_attempts"`
	ExamLockOnStart    bool       `gorm:"column:exam_lock_on_start;not null;default:false" json:"exam_lock_on_start"`

	ExamCreatedAt time.Time      `gorm:"column:exam_created_at;not null;autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt time.Time      `gorm:"column:exam_updated_at;not null;autoUpdateTime" json:"exam_updated_at"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index" json:"exam_deleted_at,omitempty"`
}

func (ExamModel) TableName() string { return "exams" }
