package dto

import (
	"time"

	"github.com/google/uuid"

	model "kelasku_backend/internals/features/classrooms/announcements/model"
)

type CreateAnnouncementRequest struct {
	AnnouncementTitle   string `json:"announcement_title" validate:"required,max=180"`
	AnnouncementContent string `json:"announcement_content" validate:"required"`
}

type AnnouncementResponse struct {
	AnnouncementID          uuid.UUID `json:"announcement_id"`
	AnnouncementClassroomID uuid.UUID `json:"announcement_classroom_id"`
	AnnouncementAuthorID    uuid.UUID `json:"announcement_author_id"`
	AnnouncementTitle       string    `json:"announcement_title"`
	AnnouncementContent     string    `json:"announcement_content"`
	AnnouncementCreatedAt   time.Time `json:"announcement_created_at"`
}

func NewAnnouncementResponse(m *model.AnnouncementModel) AnnouncementResponse {
	return AnnouncementResponse{
		AnnouncementID:          m.AnnouncementID,
		AnnouncementClassroomID: m.AnnouncementClassroomID,
		AnnouncementAuthorID:    m.AnnouncementAuthorID,
		AnnouncementTitle:       m.AnnouncementTitle,
		AnnouncementContent:     m.AnnouncementContent,
		AnnouncementCreatedAt:   m.AnnouncementCreatedAt,
	}
}
