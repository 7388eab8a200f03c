package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kelasku_backend/internals/features/assignments/dto"
	model "kelasku_backend/internals/features/assignments/model"
	classroomService "kelasku_backend/internals/features/classrooms/classrooms/service"
	helper "kelasku_backend/internals/helpers"
)

type AssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db, Validator: validator.New()}
}

// POST /api/u/classrooms/:classroom_id/assignments  (teacher)
func (ctrl *AssignmentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classroomID, err := helper.ParseUUIDParam(c, "classroom_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if _, err := classroomService.EnsureClassroomTeacher(ctrl.DB, classroomID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	assignment := body.ToModel(classroomID, userID)
	if err := ctrl.DB.Create(&assignment).Error; err != nil {
		log.Println("[ERROR] create assignment:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create assignment")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Assignment created",
		dto.NewAssignmentResponse(&assignment))
}

// GET /api/u/classrooms/:classroom_id/assignments  (members)
func (ctrl *AssignmentController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classroomID, err := helper.ParseUUIDParam(c, "classroom_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if _, err := classroomService.EnsureClassroomMember(ctrl.DB, classroomID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	page := helper.ParsePage(c, "desc")

	var total int64
	base := ctrl.DB.Model(&model.AssignmentModel{}).
		Where("assignment_classroom_id = ?", classroomID)
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list assignments")
	}

	var rows []model.AssignmentModel
	if err := base.
		Order("assignment_created_at " + page.SortOrder).
		Limit(page.PerPage).Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list assignments")
	}

	out := make([]dto.AssignmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewAssignmentResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      out,
		"pagination": helper.BuildPageMeta(page, total),
	})
}

// GET /api/u/assignments/:assignment_id  (members)
func (ctrl *AssignmentController) Detail(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	assignmentID, err := helper.ParseUUIDParam(c, "assignment_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	assignment, err := ctrl.loadAssignmentForMember(assignmentID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "OK", dto.NewAssignmentResponse(assignment))
}

// loadAssignmentForMember fetches the assignment and checks the caller's
// membership in its classroom.
func (ctrl *AssignmentController) loadAssignmentForMember(assignmentID, userID uuid.UUID) (*model.AssignmentModel, error) {
	var assignment model.AssignmentModel
	if err := ctrl.DB.First(&assignment, "assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Assignment not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load assignment")
	}
	if _, err := classroomService.EnsureClassroomMember(ctrl.DB, assignment.AssignmentClassroomID, userID); err != nil {
		return nil, err
	}
	return &assignment, nil
}
