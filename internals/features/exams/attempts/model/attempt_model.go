package model

import (
	"time"

	"github.com/google/uuid"
)

// ExamAttemptModel maps the exam_attempts table. One row per try; the number
// of rows per (exam, user) is capped by exam_max_attempts, enforced inside a
// transaction that locks the exam row.
type ExamAttemptModel struct {
	AttemptID     uuid.UUID `gorm:"column:attempt_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attempt_id"`
	AttemptExamID uuid.UUID `gorm:"column:attempt_exam_id;type:uuid;not null;index:idx_attempt_exam_user" json:"attempt_exam_id"`
	AttemptUserID uuid.UUID `gorm:"column:attempt_user_id;type:uuid;not null;index:idx_attempt_exam_user" json:"attempt_user_id"`
	AttemptNumber int       `gorm:"column:attempt_number;not null;default:1" json:"attempt_number"`

	AttemptStatus      string     `gorm:"column:attempt_status;type:varchar(20);not null;default:'in_progress'" json:"attempt_status"`
	AttemptStartedAt   time.Time  `gorm:"column:attempt_started_at;not null;autoCreateTime" json:"attempt_started_at"`
	AttemptDeadlineAt  time.Time  `gorm:"column:attempt_deadline_at;not null" json:"attempt_deadline_at"`
	AttemptSubmittedAt *time.Time `gorm:"column:attempt_submitted_at" json:"attempt_submitted_at,omitempty"`

	// grading outcome, written once on submit
	AttemptAutoScore *float64 `gorm:"column:attempt_auto_score;type:numeric(7,2)" json:"attempt_auto_score,omitempty"`

	// proctoring outcome, decremented as violations arrive
	AttemptSecurityScore int `gorm:"column:attempt_security_score;not null;default:100" json:"attempt_security_score"`
	AttemptTabSwitches   int `gorm:"column:attempt_tab_switches;not null;default:0" json:"attempt_tab_switches"`
}

func (ExamAttemptModel) TableName() string { return "exam_attempts" }

func (m *ExamAttemptModel) IsInProgress() bool {
	return m.AttemptStatus == "in_progress"
}
