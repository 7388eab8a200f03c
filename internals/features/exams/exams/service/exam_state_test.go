package service

import (
	"testing"
	"time"

	model "kelasku_backend/internals/features/exams/exams/model"
)

func TestGetExamState(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	cases := []struct {
		name  string
		from  *time.Time
		until *time.Time
		want  ExamState
	}{
		{"no window is always open", nil, nil, ExamStateOpen},
		{"before the window opens", &after, nil, ExamStateScheduled},
		{"inside the window", &before, &after, ExamStateOpen},
		{"after the window closes", nil, &before, ExamStateClosed},
		{"open-ended start, not yet closed", nil, &after, ExamStateOpen},
		{"open-ended end, already started", &before, nil, ExamStateOpen},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			exam := &model.ExamModel{
				ExamAvailableFrom:  tc.from,
				ExamAvailableUntil: tc.until,
			}
			if got := GetExamState(exam, now); got != tc.want {
				t.Fatalf("GetExamState() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGetExamStateBoundaries(t *testing.T) {
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	exam := &model.ExamModel{ExamAvailableFrom: &at, ExamAvailableUntil: &at}

	// the window is inclusive on both ends
	if got := GetExamState(exam, at); got != ExamStateOpen {
		t.Fatalf("state at exact bound = %q, want %q", got, ExamStateOpen)
	}
}
