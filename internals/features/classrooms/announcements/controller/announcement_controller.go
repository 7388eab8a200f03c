package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	dto "kelasku_backend/internals/features/classrooms/announcements/dto"
	model "kelasku_backend/internals/features/classrooms/announcements/model"
	classroomModel "kelasku_backend/internals/features/classrooms/classrooms/model"
	classroomService "kelasku_backend/internals/features/classrooms/classrooms/service"
	notificationModel "kelasku_backend/internals/features/notifications/model"
	helper "kelasku_backend/internals/helpers"
)

type AnnouncementController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db, Validator: validator.New()}
}

// POST /api/u/classrooms/:classroom_id/announcements  (teacher)
// Creating an announcement fans out one notification per student member.
func (ctrl *AnnouncementController) Create(c *fiber.Ctx) error {
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

	var body dto.CreateAnnouncementRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	announcement := model.AnnouncementModel{
		AnnouncementClassroomID: classroomID,
		AnnouncementAuthorID:    userID,
		AnnouncementTitle:       body.AnnouncementTitle,
		AnnouncementContent:     body.AnnouncementContent,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&announcement).Error; err != nil {
			return err
		}

		var students []classroomModel.ClassroomMembershipModel
		if err := tx.
			Where("membership_classroom_id = ? AND membership_role = ? AND membership_status = ?",
				classroomID, constants.RoleStudent, constants.MembershipActive).
			Find(&students).Error; err != nil {
			return err
		}
		if len(students) == 0 {
			return nil
		}

		notifications := make([]notificationModel.NotificationModel, 0, len(students))
		for _, s := range students {
			cid := classroomID
			body := announcement.AnnouncementContent
			notifications = append(notifications, notificationModel.NotificationModel{
				NotificationUserID:      s.MembershipUserID,
				NotificationClassroomID: &cid,
				NotificationType:        notificationModel.NotificationTypeAnnouncement,
				NotificationTitle:       announcement.AnnouncementTitle,
				NotificationBody:        &body,
			})
		}
		return tx.CreateInBatches(&notifications, 100).Error
	})
	if err != nil {
		log.Println("[ERROR] create announcement:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Announcement created",
		dto.NewAnnouncementResponse(&announcement))
}

// GET /api/u/classrooms/:classroom_id/announcements  (members)
func (ctrl *AnnouncementController) List(c *fiber.Ctx) error {
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
	base := ctrl.DB.Model(&model.AnnouncementModel{}).
		Where("announcement_classroom_id = ?", classroomID)
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list announcements")
	}

	var rows []model.AnnouncementModel
	if err := base.
		Order("announcement_created_at " + page.SortOrder).
		Limit(page.PerPage).Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list announcements")
	}

	out := make([]dto.AnnouncementResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewAnnouncementResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      out,
		"pagination": helper.BuildPageMeta(page, total),
	})
}
