package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "kelasku_backend/internals/features/users/user/dto"
	model "kelasku_backend/internals/features/users/user/model"
	helper "kelasku_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validator: validator.New()}
}

// GET /api/u/profile
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	var profile model.UserProfileModel
	if err := ctrl.DB.First(&profile, "profile_user_id = ?", userID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to load profile")
		}
		return helper.Success(c, "OK", dto.NewProfileResponse(&user, nil))
	}
	return helper.Success(c, "OK", dto.NewProfileResponse(&user, &profile))
}

// PATCH /api/u/profile
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	userCols, profileCols := body.ProfileChanges()

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if len(userCols) > 0 {
			if err := tx.Model(&model.UserModel{}).
				Where("user_id = ?", userID).
				Updates(userCols).Error; err != nil {
				return err
			}
		}
		if len(profileCols) > 0 {
			var profile model.UserProfileModel
			err := tx.Where("profile_user_id = ?", userID).First(&profile).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				profile = model.UserProfileModel{ProfileUserID: userID}
				if err := tx.Create(&profile).Error; err != nil {
					return err
				}
				fallthrough
			case err == nil:
				if err := tx.Model(&model.UserProfileModel{}).
					Where("profile_user_id = ?", userID).
					Updates(profileCols).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return ctrl.GetProfile(c)
}
