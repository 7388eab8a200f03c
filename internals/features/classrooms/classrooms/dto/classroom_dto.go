package dto

import (
	"time"

	"github.com/google/uuid"

	model "kelasku_backend/internals/features/classrooms/classrooms/model"
)

/* ==============================
   CREATE (POST /classrooms)
============================== */

type CreateClassroomRequest struct {
	ClassroomName        string  `json:"classroom_name" validate:"required,max=120"`
	ClassroomSubject     *string `json:"classroom_subject" validate:"omitempty,max=120"`
	ClassroomDescription *string `json:"classroom_description" validate:"omitempty"`
	ClassroomSchedule    *string `json:"classroom_schedule" validate:"omitempty,max=120"`
	ClassroomRoom        *string `json:"classroom_room" validate:"omitempty,max=60"`
	ClassroomColor       *string `json:"classroom_color" validate:"omitempty,max=20"`
}

func (r *CreateClassroomRequest) ToModel(teacherID uuid.UUID, code string) model.ClassroomModel {
	return model.ClassroomModel{
		ClassroomTeacherID:   teacherID,
		ClassroomName:        r.ClassroomName,
		ClassroomSubject:     r.ClassroomSubject,
		ClassroomCode:        code,
		ClassroomDescription: r.ClassroomDescription,
		ClassroomSchedule:    r.ClassroomSchedule,
		ClassroomRoom:        r.ClassroomRoom,
		ClassroomColor:       r.ClassroomColor,
	}
}

/* ==============================
   JOIN (POST /classrooms/join)
============================== */

type JoinClassroomRequest struct {
	ClassroomCode string `json:"classroom_code" validate:"required,min=4,max=12"`
}

/* ==============================
   Responses
============================== */

type ClassroomResponse struct {
	ClassroomID          uuid.UUID `json:"classroom_id"`
	ClassroomTeacherID   uuid.UUID `json:"classroom_teacher_id"`
	ClassroomName        string    `json:"classroom_name"`
	ClassroomSubject     *string   `json:"classroom_subject,omitempty"`
	ClassroomCode        string    `json:"classroom_code,omitempty"`
	ClassroomDescription *string   `json:"classroom_description,omitempty"`
	ClassroomSchedule    *string   `json:"classroom_schedule,omitempty"`
	ClassroomRoom        *string   `json:"classroom_room,omitempty"`
	ClassroomColor       *string   `json:"classroom_color,omitempty"`
	ClassroomCreatedAt   time.Time `json:"classroom_created_at"`
	MembershipRole       string    `json:"membership_role,omitempty"`
}

// NewClassroomResponse builds the payload; the join code is only exposed
// to the classroom's teacher.
func NewClassroomResponse(m *model.ClassroomModel, role string) ClassroomResponse {
	resp := ClassroomResponse{
		ClassroomID:          m.ClassroomID,
		ClassroomTeacherID:   m.ClassroomTeacherID,
		ClassroomName:        m.ClassroomName,
		ClassroomSubject:     m.ClassroomSubject,
		ClassroomDescription: m.ClassroomDescription,
		ClassroomSchedule:    m.ClassroomSchedule,
		ClassroomRoom:        m.ClassroomRoom,
		ClassroomColor:       m.ClassroomColor,
		ClassroomCreatedAt:   m.ClassroomCreatedAt,
		MembershipRole:       role,
	}
	if role == "TEACHER" {
		resp.ClassroomCode = m.ClassroomCode
	}
	return resp
}

type MemberResponse struct {
	MembershipID        uuid.UUID `json:"membership_id"`
	MembershipUserID    uuid.UUID `json:"membership_user_id"`
	MembershipRole      string    `json:"membership_role"`
	MembershipCreatedAt time.Time `json:"membership_created_at"`
	UserFullName        string    `json:"user_full_name"`
	UserEmail           string    `json:"user_email"`
}
