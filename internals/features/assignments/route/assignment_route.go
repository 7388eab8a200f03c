package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kelasku_backend/internals/features/assignments/controller"
)

// AssignmentRoutes registers assignment and submission endpoints under an
// authenticated group.
func AssignmentRoutes(r fiber.Router, db *gorm.DB) {
	assignmentCtrl := controller.NewAssignmentController(db)
	submissionCtrl := controller.NewSubmissionController(db)

	r.Post("/classrooms/:classroom_id/assignments", assignmentCtrl.Create)
	r.Get("/classrooms/:classroom_id/assignments", assignmentCtrl.List)
	r.Get("/assignments/:assignment_id", assignmentCtrl.Detail)

	r.Post("/assignments/:assignment_id/submissions", submissionCtrl.Create)
	r.Get("/assignments/:assignment_id/submissions", submissionCtrl.List)
	r.Patch("/submissions/:submission_id/grade", submissionCtrl.Grade)
}
