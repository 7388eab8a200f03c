package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"kelasku_backend/internals/configs"
	authDTO "kelasku_backend/internals/features/users/auth/dto"
	authService "kelasku_backend/internals/features/users/auth/service"
	userDTO "kelasku_backend/internals/features/users/user/dto"
	userModel "kelasku_backend/internals/features/users/user/model"
	helper "kelasku_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

/* =======================
   Handlers
======================= */

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body authDTO.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := authService.Register(ctrl.DB, &body)
	if err != nil {
		if errors.Is(err, authService.ErrEmailTaken) {
			return helper.Error(c, fiber.StatusConflict, "Email already registered")
		}
		log.Println("[ERROR] register:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register")
	}

	return ctrl.respondWithTokens(c, fiber.StatusCreated, "Registered", user)
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body authDTO.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := authService.Login(ctrl.DB, &body)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Println("[ERROR] login:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to login")
	}

	return ctrl.respondWithTokens(c, fiber.StatusOK, "Logged in", user)
}

// POST /api/auth/google
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var body authDTO.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := authService.LoginWithGoogle(ctrl.DB, body.IDToken)
	if err != nil {
		if errors.Is(err, authService.ErrGoogleTokenInvalid) {
			return helper.Error(c, fiber.StatusUnauthorized, "Google token invalid")
		}
		log.Println("[ERROR] google login:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to login")
	}

	return ctrl.respondWithTokens(c, fiber.StatusOK, "Logged in", user)
}

// POST /api/auth/refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	refreshCookie := helper.GetRefreshTokenFromCookie(c)
	if refreshCookie == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	userID, err := authService.ParseRefreshToken(refreshCookie)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// ROTATE: consume the old token before issuing a new pair
	if err := authService.RotateRefreshToken(ctrl.DB, refreshCookie); err != nil {
		if errors.Is(err, authService.ErrRefreshTokenUnknown) {
			return helper.Error(c, fiber.StatusUnauthorized, "Refresh token unknown")
		}
		log.Println("[ERROR] refresh rotate:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to refresh")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	return ctrl.respondWithTokens(c, fiber.StatusOK, "Refreshed", &user)
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// blacklist the presented access token until it would have expired
	if raw := rawAccessToken(c); raw != "" {
		exp := tokenExpiry(raw)
		if err := authService.BlacklistAccessToken(ctrl.DB, raw, exp); err != nil {
			log.Println("[ERROR] blacklist:", err)
		}
	}
	if err := authService.RevokeUserRefreshTokens(ctrl.DB, userID); err != nil {
		log.Println("[ERROR] revoke refresh:", err)
	}

	clearAuthCookies(c)
	return helper.Success(c, "Logged out", nil)
}

// GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "OK", userDTO.NewUserResponse(&user))
}

/* =======================
   Internals
======================= */

func (ctrl *AuthController) respondWithTokens(c *fiber.Ctx, code int, msg string, user *userModel.UserModel) error {
	access, refresh, err := authService.IssueTokenPair(ctrl.DB, user, c.Get("User-Agent"), c.IP())
	if err != nil {
		log.Println("[ERROR] issue tokens:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	setAuthCookies(c, access, refresh)

	return helper.SuccessWithCode(c, code, msg, authDTO.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         userDTO.NewUserResponse(user),
	})
}

func setAuthCookies(c *fiber.Ctx, access, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		MaxAge:   int(authService.AccessTokenTTL.Seconds()),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/api/auth",
		MaxAge:   int(authService.RefreshTokenTTL.Seconds()),
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	c.ClearCookie("access_token")
	c.ClearCookie("refresh_token")
}

func rawAccessToken(c *fiber.Ctx) string {
	if v := c.Cookies("access_token"); v != "" {
		return v
	}
	const prefix = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(prefix) {
		return auth[len(prefix):]
	}
	return ""
}

// tokenExpiry reads exp without re-verifying; logout accepts already
// verified tokens only (middleware ran first).
func tokenExpiry(raw string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, _ = parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Now().Add(authService.AccessTokenTTL)
}
