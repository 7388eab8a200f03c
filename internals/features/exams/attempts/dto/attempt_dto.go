package dto

import (
	"time"

	"github.com/google/uuid"

	model "kelasku_backend/internals/features/exams/attempts/model"
)

/* ==============================
   SUBMIT (POST /attempts/:id/submit)
============================== */

type SubmitAnswerRequest struct {
	QuestionID     uuid.UUID `json:"question_id" validate:"required"`
	SelectedOption *int      `json:"selected_option" validate:"omitempty,gte=0"`
	Text           *string   `json:"text" validate:"omitempty"`
}

type SubmitAttemptRequest struct {
	Answers []SubmitAnswerRequest `json:"answers" validate:"required,dive"`
}

/* ==============================
   Responses
============================== */

type AttemptResponse struct {
	AttemptID          uuid.UUID  `json:"attempt_id"`
	AttemptExamID      uuid.UUID  `json:"attempt_exam_id"`
	AttemptUserID      uuid.UUID  `json:"attempt_user_id"`
	AttemptNumber      int        `json:"attempt_number"`
	AttemptStatus      string     `json:"attempt_status"`
	AttemptStartedAt   time.Time  `json:"attempt_started_at"`
	AttemptDeadlineAt  time.Time  `json:"attempt_deadline_at"`
	AttemptSubmittedAt *time.Time `json:"attempt_submitted_at,omitempty"`

	AttemptAutoScore     *float64 `json:"attempt_auto_score,omitempty"`
	AttemptSecurityScore int      `json:"attempt_security_score"`
	AttemptTabSwitches   int      `json:"attempt_tab_switches"`
}

func NewAttemptResponse(m *model.ExamAttemptModel) AttemptResponse {
	return AttemptResponse{
		AttemptID:            m.AttemptID,
		AttemptExamID:        m.AttemptExamID,
		AttemptUserID:        m.AttemptUserID,
		AttemptNumber:        m.AttemptNumber,
		AttemptStatus:        m.AttemptStatus,
		AttemptStartedAt:     m.AttemptStartedAt,
		AttemptDeadlineAt:    m.AttemptDeadlineAt,
		AttemptSubmittedAt:   m.AttemptSubmittedAt,
		AttemptAutoScore:     m.AttemptAutoScore,
		AttemptSecurityScore: m.AttemptSecurityScore,
		AttemptTabSwitches:   m.AttemptTabSwitches,
	}
}

// AnswerResultResponse is one graded answer in the result view.
type AnswerResultResponse struct {
	QuestionID     uuid.UUID `json:"question_id"`
	SelectedOption *int      `json:"selected_option,omitempty"`
	Text           *string   `json:"text,omitempty"`
	IsCorrect      *bool     `json:"is_correct,omitempty"`
	Points         float64   `json:"points"`
}

func NewAnswerResultResponse(m *model.ExamAttemptAnswerModel) AnswerResultResponse {
	return AnswerResultResponse{
		QuestionID:     m.AttemptAnswerQuestionID,
		SelectedOption: m.AttemptAnswerSelectedOption,
		Text:           m.AttemptAnswerText,
		IsCorrect:      m.AttemptAnswerIsCorrect,
		Points:         m.AttemptAnswerPoints,
	}
}

type AttemptResultResponse struct {
	AttemptResponse
	TotalMarks float64                `json:"total_marks"`
	Answers    []AnswerResultResponse `json:"answers"`
}

// AttemptWithUserResponse is the teacher's per-student listing row.
type AttemptWithUserResponse struct {
	AttemptResponse
	UserFullName string `json:"user_full_name"`
	UserEmail    string `json:"user_email"`
}
