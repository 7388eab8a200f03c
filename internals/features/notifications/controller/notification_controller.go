package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "kelasku_backend/internals/features/notifications/dto"
	model "kelasku_backend/internals/features/notifications/model"
	helper "kelasku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

/* =======================
   Handlers
======================= */

// GET /api/u/notifications — unread first, newest first within each group.
func (ctrl *NotificationController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	params := helper.ParsePage(c, "desc")

	var notifications []model.NotificationModel
	if err := ctrl.DB.
		Where("notification_user_id = ?", userID).
		Order("notification_read_at IS NULL DESC").
		Order("notification_created_at " + params.SortOrder).
		Limit(params.PerPage).
		Offset(params.Offset()).
		Find(&notifications).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list notifications")
	}

	var total int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	out := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, dto.NewNotificationResponse(&notifications[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"notifications": out,
		"pagination":    helper.BuildPageMeta(params, total),
	})
}

// GET /api/u/notifications/unread-count
func (ctrl *NotificationController) UnreadCount(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read_at IS NULL", userID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}
	return helper.Success(c, "OK", fiber.Map{"unread": count})
}

// POST /api/u/notifications/:notification_id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	notificationID, err := helper.ParseUUIDParam(c, "notification_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var notification model.NotificationModel
	if err := ctrl.DB.
		Where("notification_id = ? AND notification_user_id = ?", notificationID, userID).
		First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Notification not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load notification")
	}

	if notification.NotificationReadAt == nil {
		now := time.Now()
		if err := ctrl.DB.Model(&notification).
			Update("notification_read_at", now).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark notification")
		}
		notification.NotificationReadAt = &now
	}
	return helper.Success(c, "Notification marked as read", dto.NewNotificationResponse(&notification))
}

// POST /api/u/notifications/read-all
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read_at IS NULL", userID).
		Update("notification_read_at", time.Now())
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark notifications")
	}
	return helper.Success(c, "All notifications marked as read", fiber.Map{
		"updated": res.RowsAffected,
	})
}
