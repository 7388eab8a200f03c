package dto

import (
	"time"

	"github.com/google/uuid"

	model "kelasku_backend/internals/features/notifications/model"
)

type NotificationResponse struct {
	NotificationID uuid.UUID  `json:"notification_id"`
	ClassroomID    *uuid.UUID `json:"classroom_id,omitempty"`
	Type           string     `json:"type"`
	Title          string     `json:"title"`
	Body           *string    `json:"body,omitempty"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func NewNotificationResponse(m *model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		NotificationID: m.NotificationID,
		ClassroomID:    m.NotificationClassroomID,
		Type:           m.NotificationType,
		Title:          m.NotificationTitle,
		Body:           m.NotificationBody,
		ReadAt:         m.NotificationReadAt,
		CreatedAt:      m.NotificationCreatedAt,
	}
}
