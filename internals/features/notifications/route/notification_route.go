package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "kelasku_backend/internals/features/notifications/controller"
)

func NotificationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)

	grp := r.Group("/notifications")
	grp.Get("/", ctrl.List)
	grp.Get("/unread-count", ctrl.UnreadCount)
	grp.Post("/read-all", ctrl.MarkAllRead)
	grp.Post("/:notification_id/read", ctrl.MarkRead)
}
