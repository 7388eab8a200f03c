package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "kelasku_backend/internals/features/exams/exams/model"
	service "kelasku_backend/internals/features/exams/exams/service"
)

/* ==============================
   CREATE (POST /classrooms/:id/exams)
   Exam + questions + answer keys in one payload, one transaction.
============================== */

type CreateExamQuestionRequest struct {
	ExamQuestionPrompt string   `json:"exam_question_prompt" validate:"required"`
	ExamQuestionType   string   `json:"exam_question_type" validate:"required,oneof=mcq text"`
	ExamQuestionPoints float64  `json:"exam_question_points" validate:"required,gt=0"`
	Options            []string `json:"options" validate:"omitempty,max=10,dive,required"`

	// answer key; exactly one of these depending on type
	CorrectOptionIndex *int    `json:"correct_option_index" validate:"omitempty,gte=0"`
	CorrectTextAnswer  *string `json:"correct_text_answer" validate:"omitempty"`
}

type CreateExamRequest struct {
	ExamTitle          string     `json:"exam_title" validate:"required,max=180"`
	ExamDescription    *string    `json:"exam_description" validate:"omitempty"`
	ExamDurationMin    int        `json:"exam_duration_min" validate:"required,gt=0,lte=600"`
	ExamAvailableFrom  *time.Time `json:"exam_available_from" validate:"omitempty"`
	ExamAvailableUntil *time.Time `json:"exam_available_until" validate:"omitempty"`
	ExamMaxAttempts    int        `json:"exam_max_attempts" validate:"required,gte=1,lte=10"`
	ExamLockOnStart    bool       `json:"exam_lock_on_start"`

	Questions []CreateExamQuestionRequest `json:"questions" validate:"required,min=1,max=100,dive"`
}

// Validate applies the cross-field rules the tag syntax cannot express.
func (r *CreateExamRequest) ValidateQuestions() error {
	for i := range r.Questions {
		q := &r.Questions[i]
		switch q.ExamQuestionType {
		case "mcq":
			if len(q.Options) < 2 {
				return newFieldError(i, "mcq question needs at least 2 options")
			}
			if q.CorrectOptionIndex == nil {
				return newFieldError(i, "mcq question needs correct_option_index")
			}
			if *q.CorrectOptionIndex < 0 || *q.CorrectOptionIndex >= len(q.Options) {
				return newFieldError(i, "correct_option_index out of range")
			}
		case "text":
			if len(q.Options) > 0 {
				return newFieldError(i, "text question cannot carry options")
			}
		}
	}
	if r.ExamAvailableFrom != nil && r.ExamAvailableUntil != nil &&
		r.ExamAvailableUntil.Before(*r.ExamAvailableFrom) {
		return errWindowInverted
	}
	return nil
}

func (r *CreateExamRequest) ToModels(classroomID, createdBy uuid.UUID) (model.ExamModel, []model.ExamQuestionModel, []model.ExamAnswerKeyModel) {
	exam := model.ExamModel{
		ExamClassroomID:    classroomID,
		ExamCreatedBy:      createdBy,
		ExamTitle:          r.ExamTitle,
		ExamDescription:    r.ExamDescription,
		ExamDurationMin:    r.ExamDurationMin,
		ExamAvailableFrom:  r.ExamAvailableFrom,
		ExamAvailableUntil: r.ExamAvailableUntil,
		ExamMaxAttempts:    r.ExamMaxAttempts,
		ExamLockOnStart:    r.ExamLockOnStart,
		ExamQuestionCount:  len(r.Questions),
	}

	questions := make([]model.ExamQuestionModel, 0, len(r.Questions))
	keys := make([]model.ExamAnswerKeyModel, 0, len(r.Questions))
	for i, q := range r.Questions {
		exam.ExamTotalMarks += q.ExamQuestionPoints

		question := model.ExamQuestionModel{
			ExamQuestionPrompt:    q.ExamQuestionPrompt,
			ExamQuestionType:      model.ExamQuestionType(q.ExamQuestionType),
			ExamQuestionPoints:    q.ExamQuestionPoints,
			ExamQuestionSortOrder: i,
		}
		if len(q.Options) > 0 {
			b, _ := json.Marshal(q.Options)
			question.ExamQuestionOptions = datatypes.JSON(b)
		}
		questions = append(questions, question)

		keys = append(keys, model.ExamAnswerKeyModel{
			ExamAnswerCorrectOption: q.CorrectOptionIndex,
			ExamAnswerCorrectText:   q.CorrectTextAnswer,
		})
	}
	return exam, questions, keys
}

/* ==============================
   Responses
============================== */

type ExamResponse struct {
	ExamID             uuid.UUID  `json:"exam_id"`
	ExamClassroomID    uuid.UUID  `json:"exam_classroom_id"`
	ExamCreatedBy      uuid.UUID  `json:"exam_created_by"`
	ExamTitle          string     `json:"exam_title"`
	ExamDescription    *string    `json:"exam_description,omitempty"`
	ExamDurationMin    int        `json:"exam_duration_min"`
	ExamQuestionCount  int        `json:"exam_question_count"`
	ExamTotalMarks     float64    `json:"exam_total_marks"`
	ExamAvailableFrom  *time.Time `json:"exam_available_from,omitempty"`
	ExamAvailableUntil *time.Time `json:"exam_available_until,omitempty"`
	ExamMaxAttempts    int        `json:"exam_max_attempts"`
	ExamLockOnStart    bool       `json:"exam_lock_on_start"`
	ExamState          string     `json:"exam_state"`
	ExamCreatedAt      time.Time  `json:"exam_created_at"`
}

func NewExamResponse(m *model.ExamModel, now time.Time) ExamResponse {
	return ExamResponse{
		ExamID:             m.ExamID,
		ExamClassroomID:    m.ExamClassroomID,
		ExamCreatedBy:      m.ExamCreatedBy,
		ExamTitle:          m.ExamTitle,
		ExamDescription:    m.ExamDescription,
		ExamDurationMin:    m.ExamDurationMin,
		ExamQuestionCount:  m.ExamQuestionCount,
		ExamTotalMarks:     m.ExamTotalMarks,
		ExamAvailableFrom:  m.ExamAvailableFrom,
		ExamAvailableUntil: m.ExamAvailableUntil,
		ExamMaxAttempts:    m.ExamMaxAttempts,
		ExamLockOnStart:    m.ExamLockOnStart,
		ExamState:          string(service.GetExamState(m, now)),
		ExamCreatedAt:      m.ExamCreatedAt,
	}
}

// StudentQuestionResponse never carries the answer key.
type StudentQuestionResponse struct {
	ExamQuestionID        uuid.UUID `json:"exam_question_id"`
	ExamQuestionPrompt    string    `json:"exam_question_prompt"`
	ExamQuestionType      string    `json:"exam_question_type"`
	Options               []string  `json:"options,omitempty"`
	ExamQuestionPoints    float64   `json:"exam_question_points"`
	ExamQuestionSortOrder int       `json:"exam_question_sort_order"`
}

func NewStudentQuestionResponse(q *model.ExamQuestionModel) StudentQuestionResponse {
	resp := StudentQuestionResponse{
		ExamQuestionID:        q.ExamQuestionID,
		ExamQuestionPrompt:    q.ExamQuestionPrompt,
		ExamQuestionType:      string(q.ExamQuestionType),
		ExamQuestionPoints:    q.ExamQuestionPoints,
		ExamQuestionSortOrder: q.ExamQuestionSortOrder,
	}
	if len(q.ExamQuestionOptions) > 0 {
		_ = json.Unmarshal(q.ExamQuestionOptions, &resp.Options)
	}
	return resp
}

// TeacherQuestionResponse includes the key.
type TeacherQuestionResponse struct {
	StudentQuestionResponse
	CorrectOptionIndex *int    `json:"correct_option_index,omitempty"`
	CorrectTextAnswer  *string `json:"correct_text_answer,omitempty"`
}

func NewTeacherQuestionResponse(q *model.ExamQuestionModel, key *model.ExamAnswerKeyModel) TeacherQuestionResponse {
	resp := TeacherQuestionResponse{StudentQuestionResponse: NewStudentQuestionResponse(q)}
	if key != nil {
		resp.CorrectOptionIndex = key.ExamAnswerCorrectOption
		resp.CorrectTextAnswer = key.ExamAnswerCorrectText
	}
	return resp
}

type ExamDetailResponse struct {
	ExamResponse
	Questions interface{} `json:"questions"`
}
