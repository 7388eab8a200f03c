package dto

import (
	"time"

	"github.com/google/uuid"

	model "kelasku_backend/internals/features/assignments/model"
)

/* ==============================
   Assignments
============================== */

type CreateAssignmentRequest struct {
	AssignmentTitle       string     `json:"assignment_title" validate:"required,max=180"`
	AssignmentType        string     `json:"assignment_type" validate:"omitempty,oneof=assignment quiz exam"`
	AssignmentDescription *string    `json:"assignment_description" validate:"omitempty"`
	AssignmentDueAt       *time.Time `json:"assignment_due_at" validate:"omitempty"`
	AssignmentPoints      *float64   `json:"assignment_points" validate:"omitempty,gte=0"`
}

func (r *CreateAssignmentRequest) ToModel(classroomID, createdBy uuid.UUID) model.AssignmentModel {
	m := model.AssignmentModel{
		AssignmentClassroomID: classroomID,
		AssignmentCreatedBy:   createdBy,
		AssignmentTitle:       r.AssignmentTitle,
		AssignmentType:        "assignment",
		AssignmentDescription: r.AssignmentDescription,
		AssignmentDueAt:       r.AssignmentDueAt,
		AssignmentPoints:      100,
		AssignmentStatus:      "published",
	}
	if r.AssignmentType != "" {
		m.AssignmentType = r.AssignmentType
	}
	if r.AssignmentPoints != nil {
		m.AssignmentPoints = *r.AssignmentPoints
	}
	return m
}

type AssignmentResponse struct {
	AssignmentID          uuid.UUID  `json:"assignment_id"`
	AssignmentClassroomID uuid.UUID  `json:"assignment_classroom_id"`
	AssignmentCreatedBy   uuid.UUID  `json:"assignment_created_by"`
	AssignmentTitle       string     `json:"assignment_title"`
	AssignmentType        string     `json:"assignment_type"`
	AssignmentDescription *string    `json:"assignment_description,omitempty"`
	AssignmentDueAt       *time.Time `json:"assignment_due_at,omitempty"`
	AssignmentPoints      float64    `json:"assignment_points"`
	AssignmentStatus      string     `json:"assignment_status"`
	AssignmentCreatedAt   time.Time  `json:"assignment_created_at"`
}

func NewAssignmentResponse(m *model.AssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:          m.AssignmentID,
		AssignmentClassroomID: m.AssignmentClassroomID,
		AssignmentCreatedBy:   m.AssignmentCreatedBy,
		AssignmentTitle:       m.AssignmentTitle,
		AssignmentType:        m.AssignmentType,
		AssignmentDescription: m.AssignmentDescription,
		AssignmentDueAt:       m.AssignmentDueAt,
		AssignmentPoints:      m.AssignmentPoints,
		AssignmentStatus:      m.AssignmentStatus,
		AssignmentCreatedAt:   m.AssignmentCreatedAt,
	}
}

/* ==============================
   Submissions
============================== */

type CreateSubmissionRequest struct {
	SubmissionContent *string `json:"submission_content" validate:"omitempty"`
}

type GradeSubmissionRequest struct {
	SubmissionScore float64 `json:"submission_score" validate:"gte=0"`
}

type SubmissionResponse struct {
	SubmissionID           uuid.UUID `json:"submission_id"`
	SubmissionAssignmentID uuid.UUID `json:"submission_assignment_id"`
	SubmissionUserID       uuid.UUID `json:"submission_user_id"`
	SubmissionContent      *string   `json:"submission_content,omitempty"`
	SubmissionStatus       string    `json:"submission_status"`
	SubmissionScore        *float64  `json:"submission_score,omitempty"`
	SubmissionSubmittedAt  time.Time `json:"submission_submitted_at"`
}

func NewSubmissionResponse(m *model.SubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID:           m.SubmissionID,
		SubmissionAssignmentID: m.SubmissionAssignmentID,
		SubmissionUserID:       m.SubmissionUserID,
		SubmissionContent:      m.SubmissionContent,
		SubmissionStatus:       m.SubmissionStatus,
		SubmissionScore:        m.SubmissionScore,
		SubmissionSubmittedAt:  m.SubmissionSubmittedAt,
	}
}
