package model

import (
	"time"

	"github.com/google/uuid"
)

// ExamAnswerKeyModel maps the exam_question_answers table, 1:1 with
// exam_questions. Keys are only ever read server-side during grading and
// in teacher detail views.
type ExamAnswerKeyModel struct {
	ExamAnswerID            uuid.UUID `gorm:"column:exam_answer_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"exam_answer_id"`
	ExamAnswerQuestionID    uuid.UUID `gorm:"column:exam_answer_question_id;type:uuid;uniqueIndex;not null" json:"exam_answer_question_id"`
	ExamAnswerCorrectOption *int      `gorm:"column:exam_answer_correct_option" json:"exam_answer_correct_option,omitempty"`
	ExamAnswerCorrectText   *string   `gorm:"column:exam_answer_correct_text;type:text" json:"exam_answer_correct_text,omitempty"`

	ExamAnswerCreatedAt time.Time `gorm:"column:exam_answer_created_at;not null;autoCreateTime" json:"exam_answer_created_at"`
}

func (ExamAnswerKeyModel) TableName() string { return "exam_question_answers" }
