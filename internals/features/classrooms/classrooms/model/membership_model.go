package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassroomMembershipModel maps the classroom_memberships table.
// (classroom_id, user_id) is unique: a user holds one role per classroom.
type ClassroomMembershipModel struct {
	MembershipID          uuid.UUID `gorm:"column:membership_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"membership_id"`
	MembershipClassroomID uuid.UUID `gorm:"column:membership_classroom_id;type:uuid;not null;uniqueIndex:uq_membership_classroom_user" json:"membership_classroom_id"`
	MembershipUserID      uuid.UUID `gorm:"column:membership_user_id;type:uuid;not null;uniqueIndex:uq_membership_classroom_user;index" json:"membership_user_id"`
	MembershipRole        string    `gorm:"column:membership_role;type:varchar(10);not null" json:"membership_role"`
	MembershipStatus      string    `gorm:"column:membership_status;type:varchar(20);not null;default:'active'" json:"membership_status"`

	MembershipCreatedAt time.Time `gorm:"column:membership_created_at;not null;autoCreateTime" json:"membership_created_at"`
}

func (ClassroomMembershipModel) TableName() string { return "classroom_memberships" }
