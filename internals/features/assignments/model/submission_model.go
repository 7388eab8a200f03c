package model

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionModel maps the submissions table.
// (assignment_id, user_id) is unique: one submission per student.
type SubmissionModel struct {
	SubmissionID           uuid.UUID `gorm:"column:submission_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"submission_id"`
	SubmissionAssignmentID uuid.UUID `gorm:"column:submission_assignment_id;type:uuid;not null;uniqueIndex:uq_submission_assignment_user" json:"submission_assignment_id"`
	SubmissionUserID       uuid.UUID `gorm:"column:submission_user_id;type:uuid;not null;uniqueIndex:uq_submission_assignment_user;index" json:"submission_user_id"`
	SubmissionContent      *string   `gorm:"column:submission_content;type:text" json:"submission_content,omitempty"`
	SubmissionStatus       string    `gorm:"column:submission_status;type:varchar(20);not null;default:'submitted'" json:"submission_status"`
	SubmissionScore        *float64  `gorm:"column:submission_score;type:numeric(7,2)" json:"submission_score,omitempty"`

	SubmissionSubmittedAt time.Time `gorm:"column:submission_submitted_at;not null;autoCreateTime" json:"submission_submitted_at"`
	SubmissionUpdatedAt   time.Time `gorm:"column:submission_updated_at;not null;autoUpdateTime" json:"submission_updated_at"`
}

func (SubmissionModel) TableName() string { return "submissions" }
