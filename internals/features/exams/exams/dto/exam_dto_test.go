package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func intPtr(n int) *int { return &n }

func validMCQ(points float64) CreateExamQuestionRequest {
	return CreateExamQuestionRequest{
		ExamQuestionPrompt: "2 + 2 = ?",
		ExamQuestionType:   "mcq",
		ExamQuestionPoints: points,
		Options:            []string{"3", "4", "5"},
		CorrectOptionIndex: intPtr(1),
	}
}

func validText(points float64) CreateExamQuestionRequest {
	answer := "four"
	return CreateExamQuestionRequest{
		ExamQuestionPrompt: "Spell out 4",
		ExamQuestionType:   "text",
		ExamQuestionPoints: points,
		CorrectTextAnswer:  &answer,
	}
}

func TestValidateQuestions(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CreateExamRequest)
		wantErr bool
	}{
		{"valid mix", func(r *CreateExamRequest) {}, false},
		{"mcq with one option", func(r *CreateExamRequest) {
			r.Questions[0].Options = []string{"only"}
		}, true},
		{"mcq without key", func(r *CreateExamRequest) {
			r.Questions[0].CorrectOptionIndex = nil
		}, true},
		{"mcq key out of range", func(r *CreateExamRequest) {
			r.Questions[0].CorrectOptionIndex = intPtr(3)
		}, true},
		{"mcq key negative", func(r *CreateExamRequest) {
			r.Questions[0].CorrectOptionIndex = intPtr(-1)
		}, true},
		{"text with options", func(r *CreateExamRequest) {
			r.Questions[1].Options = []string{"a", "b"}
		}, true},
		{"inverted window", func(r *CreateExamRequest) {
			from := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
			until := from.Add(-time.Hour)
			r.ExamAvailableFrom = &from
			r.ExamAvailableUntil = &until
		}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := &CreateExamRequest{
				ExamTitle:       "Midterm",
				ExamDurationMin: 60,
				ExamMaxAttempts: 1,
				Questions:       []CreateExamQuestionRequest{validMCQ(5), validText(3)},
			}
			tc.mutate(req)
			err := req.ValidateQuestions()
			if tc.wantErr && err == nil {
				t.Fatal("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestToModelsAccumulatesTotals(t *testing.T) {
	classroomID := uuid.New()
	createdBy := uuid.New()
	req := &CreateExamRequest{
		ExamTitle:       "Midterm",
		ExamDurationMin: 45,
		ExamMaxAttempts: 2,
		Questions:       []CreateExamQuestionRequest{validMCQ(5), validText(3), validMCQ(2)},
	}

	exam, questions, keys := req.ToModels(classroomID, createdBy)

	if exam.ExamClassroomID != classroomID || exam.ExamCreatedBy != createdBy {
		t.Fatal("exam ownership fields not carried over")
	}
	if exam.ExamQuestionCount != 3 {
		t.Errorf("question count = %d, want 3", exam.ExamQuestionCount)
	}
	if exam.ExamTotalMarks != 10 {
		t.Errorf("total marks = %v, want 10", exam.ExamTotalMarks)
	}
	if len(questions) != 3 || len(keys) != 3 {
		t.Fatalf("got %d questions and %d keys, want 3 of each", len(questions), len(keys))
	}
	for i, q := range questions {
		if q.ExamQuestionSortOrder != i {
			t.Errorf("question %d sort order = %d", i, q.ExamQuestionSortOrder)
		}
	}
	if keys[0].ExamAnswerCorrectOption == nil || *keys[0].ExamAnswerCorrectOption != 1 {
		t.Error("mcq key not carried into the answer row")
	}
	if keys[1].ExamAnswerCorrectText == nil || *keys[1].ExamAnswerCorrectText != "four" {
		t.Error("text key not carried into the answer row")
	}
	if len(questions[1].ExamQuestionOptions) != 0 {
		t.Error("text question must not carry options")
	}
}
