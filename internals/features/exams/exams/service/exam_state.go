package service

import (
	"time"

	model "kelasku_backend/internals/features/exams/exams/model"
)

type ExamState string

const (
	ExamStateScheduled ExamState = "scheduled"
	ExamStateOpen      ExamState = "open"
	ExamStateClosed    ExamState = "closed"
)

// GetExamState derives the exam's state from its availability window.
// No bound on either side means the exam is always open.
func GetExamState(exam *model.ExamModel, now time.Time) ExamState {
	if exam.ExamAvailableFrom != nil && now.Before(*exam.ExamAvailableFrom) {
		return ExamStateScheduled
	}
	if exam.ExamAvailableUntil != nil && now.After(*exam.ExamAvailableUntil) {
		return ExamStateClosed
	}
	return ExamStateOpen
}
