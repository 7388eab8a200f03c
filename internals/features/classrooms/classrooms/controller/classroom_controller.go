package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	dto "kelasku_backend/internals/features/classrooms/classrooms/dto"
	model "kelasku_backend/internals/features/classrooms/classrooms/model"
	service "kelasku_backend/internals/features/classrooms/classrooms/service"
	helper "kelasku_backend/internals/helpers"
)

type ClassroomController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassroomController(db *gorm.DB) *ClassroomController {
	return &ClassroomController{DB: db, Validator: validator.New()}
}

/* =======================
   Handlers
======================= */

// POST /api/u/classrooms
func (ctrl *ClassroomController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateClassroomRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	code, err := service.GenerateUniqueClassCode(ctrl.DB)
	if err != nil {
		log.Println("[ERROR] class code:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create classroom")
	}

	classroom := body.ToModel(userID, code)

	// classroom + teacher membership in one transaction
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&classroom).Error; err != nil {
			return err
		}
		return tx.Create(&model.ClassroomMembershipModel{
			MembershipClassroomID: classroom.ClassroomID,
			MembershipUserID:      userID,
			MembershipRole:        constants.RoleTeacher,
			MembershipStatus:      constants.MembershipActive,
		}).Error
	})
	if err != nil {
		log.Println("[ERROR] create classroom:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create classroom")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Classroom created",
		dto.NewClassroomResponse(&classroom, constants.RoleTeacher))
}

// GET /api/u/classrooms — every classroom the caller belongs to.
func (ctrl *ClassroomController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var memberships []model.ClassroomMembershipModel
	if err := ctrl.DB.
		Where("membership_user_id = ? AND membership_status = ?", userID, constants.MembershipActive).
		Order("membership_created_at DESC").
		Find(&memberships).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list classrooms")
	}
	if len(memberships) == 0 {
		return helper.Success(c, "OK", []dto.ClassroomResponse{})
	}

	ids := make([]interface{}, 0, len(memberships))
	roleByClassroom := make(map[string]string, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.MembershipClassroomID)
		roleByClassroom[m.MembershipClassroomID.String()] = m.MembershipRole
	}

	var classrooms []model.ClassroomModel
	if err := ctrl.DB.
		Where("classroom_id IN ?", ids).
		Order("classroom_created_at DESC").
		Find(&classrooms).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list classrooms")
	}

	out := make([]dto.ClassroomResponse, 0, len(classrooms))
	for i := range classrooms {
		role := roleByClassroom[classrooms[i].ClassroomID.String()]
		out = append(out, dto.NewClassroomResponse(&classrooms[i], role))
	}
	return helper.Success(c, "OK", out)
}

// GET /api/u/classrooms/:classroom_id
func (ctrl *ClassroomController) Detail(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classroomID, err := helper.ParseUUIDParam(c, "classroom_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	membership, err := service.EnsureClassroomMember(ctrl.DB, classroomID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var classroom model.ClassroomModel
	if err := ctrl.DB.First(&classroom, "classroom_id = ?", classroomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Classroom not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load classroom")
	}

	return helper.Success(c, "OK", dto.NewClassroomResponse(&classroom, membership.MembershipRole))
}

// POST /api/u/classrooms/join
func (ctrl *ClassroomController) Join(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.JoinClassroomRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	code := service.NormalizeClassCode(body.ClassroomCode)

	var classroom model.ClassroomModel
	if err := ctrl.DB.First(&classroom, "classroom_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Invalid class code")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to join classroom")
	}

	membership := model.ClassroomMembershipModel{
		MembershipClassroomID: classroom.ClassroomID,
		MembershipUserID:      userID,
		MembershipRole:        constants.RoleStudent,
		MembershipStatus:      constants.MembershipActive,
	}
	if err := ctrl.DB.Create(&membership).Error; err != nil {
		// 23505: (classroom_id, user_id) already exists
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return helper.Error(c, fiber.StatusConflict, "You are already a member of this classroom")
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "You are already a member of this classroom")
		}
		log.Println("[ERROR] join classroom:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to join classroom")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Joined classroom",
		dto.NewClassroomResponse(&classroom, constants.RoleStudent))
}

// POST /api/u/classrooms/:classroom_id/leave
func (ctrl *ClassroomController) Leave(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classroomID, err := helper.ParseUUIDParam(c, "classroom_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	membership, err := service.EnsureClassroomMember(ctrl.DB, classroomID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if membership.MembershipRole == constants.RoleTeacher {
		return helper.Error(c, fiber.StatusConflict, "The classroom owner cannot leave")
	}

	if err := ctrl.DB.
		Delete(&model.ClassroomMembershipModel{}, "membership_id = ?", membership.MembershipID).
		Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to leave classroom")
	}
	return helper.Success(c, "Left classroom", nil)
}

// GET /api/u/classrooms/:classroom_id/members
func (ctrl *ClassroomController) Members(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classroomID, err := helper.ParseUUIDParam(c, "classroom_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if _, err := service.EnsureClassroomMember(ctrl.DB, classroomID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var members []dto.MemberResponse
	if err := ctrl.DB.
		Table("classroom_memberships").
		Select(`classroom_memberships.membership_id,
			classroom_memberships.membership_user_id,
			classroom_memberships.membership_role,
			classroom_memberships.membership_created_at,
			users.user_full_name,
			users.user_email`).
		Joins("JOIN users ON users.user_id = classroom_memberships.membership_user_id").
		Where("classroom_memberships.membership_classroom_id = ? AND classroom_memberships.membership_status = ?",
			classroomID, constants.MembershipActive).
		Order("classroom_memberships.membership_role ASC, users.user_full_name ASC").
		Scan(&members).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list members")
	}

	return helper.Success(c, "OK", members)
}
