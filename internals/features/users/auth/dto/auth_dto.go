package dto

import (
	"kelasku_backend/internals/features/users/user/dto"
)

/* ==============================
   Requests
============================== */

type RegisterRequest struct {
	UserFullName string `json:"user_full_name" validate:"required,min=3,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

/* ==============================
   Responses
============================== */

type TokenResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token,omitempty"`
	User         dto.UserResponse `json:"user"`
}
