package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementController "kelasku_backend/internals/features/classrooms/announcements/controller"
	classroomController "kelasku_backend/internals/features/classrooms/classrooms/controller"
	materialController "kelasku_backend/internals/features/classrooms/materials/controller"
)

// ClassroomRoutes registers classroom, announcement and material endpoints
// under an authenticated group.
func ClassroomRoutes(r fiber.Router, db *gorm.DB) {
	classroomCtrl := classroomController.NewClassroomController(db)
	announcementCtrl := announcementController.NewAnnouncementController(db)
	materialCtrl := materialController.NewMaterialController(db)

	grp := r.Group("/classrooms")
	grp.Post("/", classroomCtrl.Create)
	grp.Get("/", classroomCtrl.ListMine)
	grp.Post("/join", classroomCtrl.Join)
	grp.Get("/:classroom_id", classroomCtrl.Detail)
	grp.Post("/:classroom_id/leave", classroomCtrl.Leave)
	grp.Get("/:classroom_id/members", classroomCtrl.Members)

	grp.Post("/:classroom_id/announcements", announcementCtrl.Create)
	grp.Get("/:classroom_id/announcements", announcementCtrl.List)

	grp.Post("/:classroom_id/materials", materialCtrl.Create)
	grp.Get("/:classroom_id/materials", materialCtrl.List)
}
