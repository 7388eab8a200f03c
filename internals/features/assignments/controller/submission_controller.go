package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	dto "kelasku_backend/internals/features/assignments/dto"
	model "kelasku_backend/internals/features/assignments/model"
	classroomService "kelasku_backend/internals/features/classrooms/classrooms/service"
	helper "kelasku_backend/internals/helpers"
)

type SubmissionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{DB: db, Validator: validator.New()}
}

// POST /api/u/assignments/:assignment_id/submissions  (student member)
func (ctrl *SubmissionController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	assignmentID, err := helper.ParseUUIDParam(c, "assignment_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var assignment model.AssignmentModel
	if err := ctrl.DB.First(&assignment, "assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load assignment")
	}
	if _, err := classroomService.EnsureClassroomMember(ctrl.DB, assignment.AssignmentClassroomID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateSubmissionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	submission := model.SubmissionModel{
		SubmissionAssignmentID: assignmentID,
		SubmissionUserID:       userID,
		SubmissionContent:      body.SubmissionContent,
		SubmissionStatus:       constants.SubmissionSubmitted,
	}
	if err := ctrl.DB.Create(&submission).Error; err != nil {
		var pqErr *pq.Error
		if (errors.As(err, &pqErr) && pqErr.Code == "23505") || errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "You already submitted this assignment")
		}
		log.Println("[ERROR] create submission:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to submit")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Submitted",
		dto.NewSubmissionResponse(&submission))
}

// GET /api/u/assignments/:assignment_id/submissions
// Teachers see every submission; students see only their own.
func (ctrl *SubmissionController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	assignmentID, err := helper.ParseUUIDParam(c, "assignment_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var assignment model.AssignmentModel
	if err := ctrl.DB.First(&assignment, "assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load assignment")
	}
	membership, err := classroomService.EnsureClassroomMember(ctrl.DB, assignment.AssignmentClassroomID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Where("submission_assignment_id = ?", assignmentID)
	if membership.MembershipRole != constants.RoleTeacher {
		q = q.Where("submission_user_id = ?", userID)
	}

	var rows []model.SubmissionModel
	if err := q.Order("submission_submitted_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list submissions")
	}

	out := make([]dto.SubmissionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewSubmissionResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// PATCH /api/u/submissions/:submission_id/grade  (teacher)
func (ctrl *SubmissionController) Grade(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	submissionID, err := helper.ParseUUIDParam(c, "submission_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var submission model.SubmissionModel
	if err := ctrl.DB.First(&submission, "submission_id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load submission")
	}

	var assignment model.AssignmentModel
	if err := ctrl.DB.First(&assignment, "assignment_id = ?", submission.SubmissionAssignmentID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load assignment")
	}
	if _, err := classroomService.EnsureClassroomTeacher(ctrl.DB, assignment.AssignmentClassroomID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.GradeSubmissionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.SubmissionScore > assignment.AssignmentPoints {
		return helper.Error(c, fiber.StatusBadRequest, "Score exceeds assignment points")
	}

	if err := ctrl.DB.Model(&submission).Updates(map[string]interface{}{
		"submission_score":  body.SubmissionScore,
		"submission_status": constants.SubmissionGraded,
	}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to grade submission")
	}

	submission.SubmissionScore = &body.SubmissionScore
	submission.SubmissionStatus = constants.SubmissionGraded
	return helper.Success(c, "Graded", dto.NewSubmissionResponse(&submission))
}
