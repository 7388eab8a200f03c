package service

import (
	"testing"

	"github.com/google/uuid"

	examModel "kelasku_backend/internals/features/exams/exams/model"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func mcqQuestion(points float64) examModel.ExamQuestionModel {
	return examModel.ExamQuestionModel{
		ExamQuestionID:     uuid.New(),
		ExamQuestionType:   examModel.ExamQuestionTypeMCQ,
		ExamQuestionPoints: points,
	}
}

func textQuestion(points float64) examModel.ExamQuestionModel {
	return examModel.ExamQuestionModel{
		ExamQuestionID:     uuid.New(),
		ExamQuestionType:   examModel.ExamQuestionTypeText,
		ExamQuestionPoints: points,
	}
}

func keyFor(q examModel.ExamQuestionModel, option *int, text *string) *examModel.ExamAnswerKeyModel {
	return &examModel.ExamAnswerKeyModel{
		ExamAnswerQuestionID:    q.ExamQuestionID,
		ExamAnswerCorrectOption: option,
		ExamAnswerCorrectText:   text,
	}
}

func TestGradeAttemptMCQ(t *testing.T) {
	attemptID := uuid.New()
	q1 := mcqQuestion(5)
	q2 := mcqQuestion(3)
	keys := map[string]*examModel.ExamAnswerKeyModel{
		q1.ExamQuestionID.String(): keyFor(q1, intPtr(2), nil),
		q2.ExamQuestionID.String(): keyFor(q2, intPtr(0), nil),
	}

	got := GradeAttempt(attemptID, []examModel.ExamQuestionModel{q1, q2}, keys, []SubmittedAnswer{
		{QuestionID: q1.ExamQuestionID, SelectedOption: intPtr(2)}, // correct
		{QuestionID: q2.ExamQuestionID, SelectedOption: intPtr(1)}, // wrong
	})

	if got.AutoScore != 5 {
		t.Fatalf("AutoScore = %v, want 5", got.AutoScore)
	}
	if len(got.Answers) != 2 {
		t.Fatalf("len(Answers) = %d, want 2", len(got.Answers))
	}
	if got.Answers[0].AttemptAnswerIsCorrect == nil || !*got.Answers[0].AttemptAnswerIsCorrect {
		t.Errorf("q1 should be correct")
	}
	if got.Answers[0].AttemptAnswerPoints != 5 {
		t.Errorf("q1 points = %v, want 5", got.Answers[0].AttemptAnswerPoints)
	}
	if got.Answers[1].AttemptAnswerIsCorrect == nil || *got.Answers[1].AttemptAnswerIsCorrect {
		t.Errorf("q2 should be wrong")
	}
	if got.Answers[1].AttemptAnswerPoints != 0 {
		t.Errorf("q2 points = %v, want 0", got.Answers[1].AttemptAnswerPoints)
	}
}

func TestGradeAttemptTextStaysUngraded(t *testing.T) {
	q := textQuestion(4)
	keys := map[string]*examModel.ExamAnswerKeyModel{
		q.ExamQuestionID.String(): keyFor(q, nil, strPtr("Photosynthesis")),
	}

	// even an answer matching the key verbatim earns nothing automatically
	cases := []struct {
		name   string
		answer *string
	}{
		{"matching answer", strPtr("Photosynthesis")},
		{"different answer", strPtr("respiration")},
		{"empty answer", strPtr("")},
		{"missing answer", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var submitted []SubmittedAnswer
			if tc.answer != nil {
				submitted = []SubmittedAnswer{{QuestionID: q.ExamQuestionID, Text: tc.answer}}
			}
			got := GradeAttempt(uuid.New(), []examModel.ExamQuestionModel{q}, keys, submitted)

			if got.AutoScore != 0 {
				t.Fatalf("AutoScore = %v, want 0: text never auto-scores", got.AutoScore)
			}
			if len(got.Answers) != 1 {
				t.Fatalf("len(Answers) = %d, want 1", len(got.Answers))
			}
			row := got.Answers[0]
			if row.AttemptAnswerIsCorrect != nil {
				t.Error("text correctness must stay nil for teacher review")
			}
			if row.AttemptAnswerPoints != 0 {
				t.Errorf("text points = %v, want 0", row.AttemptAnswerPoints)
			}
			if tc.answer != nil && (row.AttemptAnswerText == nil || *row.AttemptAnswerText != *tc.answer) {
				t.Error("submitted text must be stored verbatim")
			}
		})
	}
}

func TestGradeAttemptMixedTypesScoresMCQOnly(t *testing.T) {
	mcq := mcqQuestion(5)
	text := textQuestion(4)
	keys := map[string]*examModel.ExamAnswerKeyModel{
		mcq.ExamQuestionID.String():  keyFor(mcq, intPtr(1), nil),
		text.ExamQuestionID.String(): keyFor(text, nil, strPtr("four")),
	}

	got := GradeAttempt(uuid.New(), []examModel.ExamQuestionModel{mcq, text}, keys, []SubmittedAnswer{
		{QuestionID: mcq.ExamQuestionID, SelectedOption: intPtr(1)},
		{QuestionID: text.ExamQuestionID, Text: strPtr("four")},
	})

	if got.AutoScore != 5 {
		t.Fatalf("AutoScore = %v, want 5 (mcq only)", got.AutoScore)
	}
}

func TestGradeAttemptUnansweredQuestionsStillRecorded(t *testing.T) {
	q1 := mcqQuestion(2)
	q2 := mcqQuestion(2)
	keys := map[string]*examModel.ExamAnswerKeyModel{
		q1.ExamQuestionID.String(): keyFor(q1, intPtr(0), nil),
		q2.ExamQuestionID.String(): keyFor(q2, intPtr(1), nil),
	}

	// only q1 answered
	got := GradeAttempt(uuid.New(), []examModel.ExamQuestionModel{q1, q2}, keys, []SubmittedAnswer{
		{QuestionID: q1.ExamQuestionID, SelectedOption: intPtr(0)},
	})

	if len(got.Answers) != 2 {
		t.Fatalf("len(Answers) = %d, want a row per question", len(got.Answers))
	}
	if got.Answers[1].AttemptAnswerSelectedOption != nil {
		t.Errorf("unanswered row should carry no selection")
	}
	if got.Answers[1].AttemptAnswerPoints != 0 {
		t.Errorf("unanswered row points = %v, want 0", got.Answers[1].AttemptAnswerPoints)
	}
	if got.AutoScore != 2 {
		t.Fatalf("AutoScore = %v, want 2", got.AutoScore)
	}
}

func TestGradeAttemptIgnoresUnknownQuestionIDs(t *testing.T) {
	q := mcqQuestion(1)
	keys := map[string]*examModel.ExamAnswerKeyModel{
		q.ExamQuestionID.String(): keyFor(q, intPtr(0), nil),
	}

	got := GradeAttempt(uuid.New(), []examModel.ExamQuestionModel{q}, keys, []SubmittedAnswer{
		{QuestionID: uuid.New(), SelectedOption: intPtr(0)}, // not part of the exam
	})

	if got.AutoScore != 0 {
		t.Fatalf("AutoScore = %v, want 0", got.AutoScore)
	}
	if len(got.Answers) != 1 {
		t.Fatalf("len(Answers) = %d, want 1", len(got.Answers))
	}
}

func TestGradeAttemptMissingKeyScoresZero(t *testing.T) {
	q := mcqQuestion(10)

	got := GradeAttempt(uuid.New(), []examModel.ExamQuestionModel{q},
		map[string]*examModel.ExamAnswerKeyModel{},
		[]SubmittedAnswer{{QuestionID: q.ExamQuestionID, SelectedOption: intPtr(0)}})

	if got.AutoScore != 0 {
		t.Fatalf("AutoScore = %v, want 0 when the key is missing", got.AutoScore)
	}
}
