package service

import (
	"github.com/google/uuid"

	attemptModel "kelasku_backend/internals/features/exams/attempts/model"
	examModel "kelasku_backend/internals/features/exams/exams/model"
)

// SubmittedAnswer is one student answer as received on submit, before any
// grading has touched it.
type SubmittedAnswer struct {
	QuestionID     uuid.UUID
	SelectedOption *int
	Text           *string
}

// GradeResult is the outcome of grading one attempt.
type GradeResult struct {
	Answers   []attemptModel.ExamAttemptAnswerModel
	AutoScore float64
}

// GradeAttempt scores the exam's mcq questions against the answer keys. A
// correct selection earns the question's full points; wrong or unanswered
// earns 0. Text answers are stored verbatim with correctness left nil — they
// contribute nothing to the auto-score and wait for teacher review.
func GradeAttempt(
	attemptID uuid.UUID,
	questions []examModel.ExamQuestionModel,
	keys map[string]*examModel.ExamAnswerKeyModel,
	submitted []SubmittedAnswer,
) GradeResult {
	byQuestion := make(map[string]*SubmittedAnswer, len(submitted))
	for i := range submitted {
		byQuestion[submitted[i].QuestionID.String()] = &submitted[i]
	}

	result := GradeResult{Answers: make([]attemptModel.ExamAttemptAnswerModel, 0, len(questions))}
	for i := range questions {
		q := &questions[i]
		row := attemptModel.ExamAttemptAnswerModel{
			AttemptAnswerAttemptID:  attemptID,
			AttemptAnswerQuestionID: q.ExamQuestionID,
		}

		ans := byQuestion[q.ExamQuestionID.String()]
		if ans != nil {
			row.AttemptAnswerSelectedOption = ans.SelectedOption
			row.AttemptAnswerText = ans.Text
		}

		if q.IsMCQ() {
			correct := isCorrectMCQ(keys[q.ExamQuestionID.String()], ans)
			row.AttemptAnswerIsCorrect = &correct
			if correct {
				row.AttemptAnswerPoints = q.ExamQuestionPoints
				result.AutoScore += q.ExamQuestionPoints
			}
		}
		result.Answers = append(result.Answers, row)
	}
	return result
}

func isCorrectMCQ(key *examModel.ExamAnswerKeyModel, ans *SubmittedAnswer) bool {
	if key == nil || ans == nil {
		return false
	}
	return key.ExamAnswerCorrectOption != nil &&
		ans.SelectedOption != nil &&
		*ans.SelectedOption == *key.ExamAnswerCorrectOption
}
