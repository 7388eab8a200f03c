package dto

import (
	"time"

	"github.com/google/uuid"

	model "kelasku_backend/internals/features/exams/proctor/model"
)

type ReportEventRequest struct {
	EventType  string     `json:"event_type" validate:"required,max=40"`
	Severity   string     `json:"severity" validate:"required,oneof=low medium high critical"`
	Detail     *string    `json:"detail" validate:"omitempty,max=500"`
	OccurredAt *time.Time `json:"occurred_at" validate:"omitempty"`
}

type ProctorEventResponse struct {
	ProctorEventID uuid.UUID  `json:"proctor_event_id"`
	AttemptID      uuid.UUID  `json:"attempt_id"`
	EventType      string     `json:"event_type"`
	Severity       string     `json:"severity"`
	Penalty        int        `json:"penalty"`
	Detail         *string    `json:"detail,omitempty"`
	OccurredAt     *time.Time `json:"occurred_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func NewProctorEventResponse(m *model.ProctorEventModel) ProctorEventResponse {
	return ProctorEventResponse{
		ProctorEventID: m.ProctorEventID,
		AttemptID:      m.ProctorEventAttemptID,
		EventType:      m.ProctorEventType,
		Severity:       m.ProctorEventSeverity,
		Penalty:        m.ProctorEventPenalty,
		Detail:         m.ProctorEventDetail,
		OccurredAt:     m.ProctorEventOccurredAt,
		CreatedAt:      m.ProctorEventCreatedAt,
	}
}

// ReportEventResponse echoes the attempt's updated proctoring counters so the
// client can render them without a second request.
type ReportEventResponse struct {
	ProctorEventResponse
	AttemptSecurityScore int `json:"attempt_security_score"`
	AttemptTabSwitches   int `json:"attempt_tab_switches"`
}
