package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	model "kelasku_backend/internals/features/classrooms/classrooms/model"
)

// Membership guards shared by every classroom-scoped feature. Authorization
// here is per-row membership, not token claims.

// FindMembership returns the caller's membership in a classroom, or
// gorm.ErrRecordNotFound.
func FindMembership(db *gorm.DB, classroomID, userID uuid.UUID) (*model.ClassroomMembershipModel, error) {
	var m model.ClassroomMembershipModel
	err := db.Where(
		"membership_classroom_id = ? AND membership_user_id = ? AND membership_status = ?",
		classroomID, userID, constants.MembershipActive,
	).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// EnsureClassroomMember rejects callers without an active membership.
func EnsureClassroomMember(db *gorm.DB, classroomID, userID uuid.UUID) (*model.ClassroomMembershipModel, error) {
	m, err := FindMembership(db, classroomID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusForbidden, "You are not a member of this classroom")
		}
		return nil, err
	}
	return m, nil
}

// EnsureClassroomTeacher rejects callers who are not the classroom's teacher.
func EnsureClassroomTeacher(db *gorm.DB, classroomID, userID uuid.UUID) (*model.ClassroomMembershipModel, error) {
	m, err := EnsureClassroomMember(db, classroomID, userID)
	if err != nil {
		return nil, err
	}
	if m.MembershipRole != constants.RoleTeacher {
		return nil, fiber.NewError(fiber.StatusForbidden, "Teacher role required")
	}
	return m, nil
}
