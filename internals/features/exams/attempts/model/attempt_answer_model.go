package model

import (
	"time"

	"github.com/google/uuid"
)

// ExamAttemptAnswerModel maps the exam_attempt_answers table. One row per
// answered question; correctness and points are filled by the grader on
// submit and never taken from the client.
type ExamAttemptAnswerModel struct {
	AttemptAnswerID         uuid.UUID `gorm:"column:attempt_answer_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attempt_answer_id"`
	AttemptAnswerAttemptID  uuid.UUID `gorm:"column:attempt_answer_attempt_id;type:uuid;not null;uniqueIndex:uq_attempt_answer_question" json:"attempt_answer_attempt_id"`
	AttemptAnswerQuestionID uuid.UUID `gorm:"column:attempt_answer_question_id;type:uuid;not null;uniqueIndex:uq_attempt_answer_question" json:"attempt_answer_question_id"`

	AttemptAnswerSelectedOption *int    `gorm:"column:attempt_answer_selected_option" json:"attempt_answer_selected_option,omitempty"`
	AttemptAnswerText           *string `gorm:"column:attempt_answer_text;type:text" json:"attempt_answer_text,omitempty"`

	AttemptAnswerIsCorrect *bool   `gorm:"column:attempt_answer_is_correct" json:"attempt_answer_is_correct,omitempty"`
	AttemptAnswerPoints    float64 `gorm:"column:attempt_answer_points;type:numeric(6,2);not null;default:0" json:"attempt_answer_points"`

	AttemptAnswerCreatedAt time.Time `gorm:"column:attempt_answer_created_at;not null;autoCreateTime" json:"attempt_answer_created_at"`
}

func (ExamAttemptAnswerModel) TableName() string { return "exam_attempt_answers" }
