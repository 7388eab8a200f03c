package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptController "kelasku_backend/internals/features/exams/attempts/controller"
	examController "kelasku_backend/internals/features/exams/exams/controller"
	proctorController "kelasku_backend/internals/features/exams/proctor/controller"
)

// ExamRoutes registers exam, attempt and proctoring endpoints under an
// authenticated group.
func ExamRoutes(r fiber.Router, db *gorm.DB) {
	examCtrl := examController.NewExamController(db)
	attemptCtrl := attemptController.NewAttemptController(db)
	proctorCtrl := proctorController.NewProctorController(db)

	r.Post("/classrooms/:classroom_id/exams", examCtrl.Create)
	r.Get("/classrooms/:classroom_id/exams", examCtrl.List)

	grp := r.Group("/exams")
	grp.Get("/:exam_id", examCtrl.Detail)
	grp.Post("/:exam_id/attempts", attemptCtrl.Start)
	grp.Get("/:exam_id/attempts", attemptCtrl.ListForExam)
	grp.Get("/:exam_id/attempts/mine", attemptCtrl.ListMine)

	att := r.Group("/attempts")
	att.Post("/:attempt_id/submit", attemptCtrl.Submit)
	att.Get("/:attempt_id/result", attemptCtrl.Result)
	att.Post("/:attempt_id/events", proctorCtrl.Report)
	att.Get("/:attempt_id/events", proctorCtrl.ListForAttempt)
}
