package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExamQuestionType string

const (
	ExamQuestionTypeMCQ  ExamQuestionType = "mcq"
	ExamQuestionTypeText ExamQuestionType = "text"
)

// ExamQuestionModel maps the exam_questions table. Options are an ordered
// JSON array of strings; only mcq questions carry them.
type ExamQuestionModel struct {
	ExamQuestionID        uuid.UUID        `gorm:"column:exam_question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"exam_question_id"`
	ExamQuestionExamID    uuid.UUID        `gorm:"column:exam_question_exam_id;type:uuid;not null;index" json:"exam_question_exam_id"`
	ExamQuestionPrompt    string           `gorm:"column:exam_question_prompt;type:text;not null" json:"exam_question_prompt"`
	ExamQuestionType      ExamQuestionType `gorm:"column:exam_question_type;type:varchar(8);not null" json:"exam_question_type"`
	ExamQuestionOptions   datatypes.JSON   `gorm:"column:exam_question_options;type:jsonb" json:"exam_question_options,omitempty"`
	ExamQuestionPoints    float64          `gorm:"column:exam_question_points;type:numeric(6,2);not null;default:1" json:"exam_question_points"`
	ExamQuestionSortOrder int              `gorm:"column:exam_question_sort_order;not null;default:0" json:"exam_question_sort_order"`

	ExamQuestionCreatedAt time.Time      `gorm:"column:exam_question_created_at;not null;autoCreateTime" json:"exam_question_created_at"`
	ExamQuestionDeletedAt gorm.DeletedAt `gorm:"column:exam_question_deleted_at;index" json:"exam_question_deleted_at,omitempty"`
}

func (ExamQuestionModel) TableName() string { return "exam_questions" }

func (m *ExamQuestionModel) IsMCQ() bool  { return m.ExamQuestionType == ExamQuestionTypeMCQ }
func (m *ExamQuestionModel) IsText() bool { return m.ExamQuestionType == ExamQuestionTypeText }
