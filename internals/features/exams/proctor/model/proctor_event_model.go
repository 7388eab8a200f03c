package model

import (
	"time"

	"github.com/google/uuid"
)

// ProctorEventModel maps the proctor_events table. Events are reported by
// the exam client but the resulting penalty is computed and persisted
// server-side on the attempt row.
type ProctorEventModel struct {
	ProctorEventID        uuid.UUID `gorm:"column:proctor_event_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"proctor_event_id"`
	ProctorEventAttemptID uuid.UUID `gorm:"column:proctor_event_attempt_id;type:uuid;not null;index" json:"proctor_event_attempt_id"`

	ProctorEventType     string  `gorm:"column:proctor_event_type;type:varchar(40);not null" json:"proctor_event_type"`
	ProctorEventSeverity string  `gorm:"column:proctor_event_severity;type:varchar(10);not null" json:"proctor_event_severity"`
	ProctorEventPenalty  int     `gorm:"column:proctor_event_penalty;not null;default:0" json:"proctor_event_penalty"`
	ProctorEventDetail   *string `gorm:"column:proctor_event_detail;type:text" json:"proctor_event_detail,omitempty"`

	// client-reported moment of the violation; created_at stays server truth
	ProctorEventOccurredAt *time.Time `gorm:"column:proctor_event_occurred_at" json:"proctor_event_occurred_at,omitempty"`
	ProctorEventCreatedAt  time.Time  `gorm:"column:proctor_event_created_at;not null;autoCreateTime" json:"proctor_event_created_at"`
}

func (ProctorEventModel) TableName() string { return "proctor_events" }
