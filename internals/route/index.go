package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentRoute "kelasku_backend/internals/features/assignments/route"
	classroomRoute "kelasku_backend/internals/features/classrooms/classrooms/route"
	examRoute "kelasku_backend/internals/features/exams/exams/route"
	notificationRoute "kelasku_backend/internals/features/notifications/route"
	authRoute "kelasku_backend/internals/features/users/auth/route"
	userRoute "kelasku_backend/internals/features/users/user/route"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature group. /api/auth is public (login paths
// carry their own rate limiters); everything under /api/u requires a valid
// access token.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	u := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	userRoute.UserRoutes(u, db)
	classroomRoute.ClassroomRoutes(u, db)
	assignmentRoute.AssignmentRoutes(u, db)
	examRoute.ExamRoutes(u, db)
	notificationRoute.NotificationRoutes(u, db)
}
