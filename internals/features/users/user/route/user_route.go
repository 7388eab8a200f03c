package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kelasku_backend/internals/features/users/user/controller"
)

// UserRoutes registers profile endpoints under an authenticated group.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	r.Get("/profile", ctrl.GetProfile)
	r.Patch("/profile", ctrl.UpdateProfile)
}
