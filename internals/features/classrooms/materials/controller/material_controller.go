package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomService "kelasku_backend/internals/features/classrooms/classrooms/service"
	dto "kelasku_backend/internals/features/classrooms/materials/dto"
	model "kelasku_backend/internals/features/classrooms/materials/model"
	helper "kelasku_backend/internals/helpers"
)

type MaterialController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db, Validator: validator.New()}
}

// POST /api/u/classrooms/:classroom_id/materials  (teacher)
func (ctrl *MaterialController) Create(c *fiber.Ctx) error {
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

	var body dto.CreateMaterialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	material := model.MaterialModel{
		MaterialClassroomID: classroomID,
		MaterialUploadedBy:  userID,
		MaterialTitle:       body.MaterialTitle,
		MaterialDescription: body.MaterialDescription,
		MaterialURL:         body.MaterialURL,
	}
	if err := ctrl.DB.Create(&material).Error; err != nil {
		log.Println("[ERROR] create material:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create material")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Material created",
		dto.NewMaterialResponse(&material))
}

// GET /api/u/classrooms/:classroom_id/materials  (members)
func (ctrl *MaterialController) List(c *fiber.Ctx) error {
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

	var rows []model.MaterialModel
	if err := ctrl.DB.
		Where("material_classroom_id = ?", classroomID).
		Order("material_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list materials")
	}

	out := make([]dto.MaterialResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewMaterialResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}
