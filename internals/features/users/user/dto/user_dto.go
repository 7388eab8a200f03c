package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	model "kelasku_backend/internals/features/users/user/model"
)

/* ==============================
   Helper: tri-state updater
   - absent : leave column alone
   - null   : set column to NULL
   - value  : set column to value
============================== */

type UpdateField[T any] struct {
	set   bool
	null  bool
	value T
}

func (f *UpdateField[T]) UnmarshalJSON(b []byte) error {
	f.set = true
	if string(b) == "null" {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	return json.Unmarshal(b, &f.value)
}

func (f UpdateField[T]) ShouldUpdate() bool { return f.set }
func (f UpdateField[T]) IsNull() bool       { return f.set && f.null }
func (f UpdateField[T]) Val() T             { return f.value }

/* ==============================
   Responses
============================== */

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserFullName  string    `json:"user_full_name"`
	UserEmail     string    `json:"user_email"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func NewUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		UserFullName:  u.UserFullName,
		UserEmail:     u.UserEmail,
		UserCreatedAt: u.UserCreatedAt,
	}
}

type ProfileResponse struct {
	UserResponse
	ProfileAvatarURL *string `json:"profile_avatar_url,omitempty"`
	ProfileBio       *string `json:"profile_bio,omitempty"`
	ProfilePhone     *string `json:"profile_phone,omitempty"`
}

func NewProfileResponse(u *model.UserModel, p *model.UserProfileModel) ProfileResponse {
	resp := ProfileResponse{UserResponse: NewUserResponse(u)}
	if p != nil {
		resp.ProfileAvatarURL = p.ProfileAvatarURL
		resp.ProfileBio = p.ProfileBio
		resp.ProfilePhone = p.ProfilePhone
	}
	return resp
}

/* ==============================
   Update (PATCH /api/u/profile)
============================== */

type UpdateProfileRequest struct {
	UserFullName     UpdateField[string] `json:"user_full_name"`
	ProfileAvatarURL UpdateField[string] `json:"profile_avatar_url"`
	ProfileBio       UpdateField[string] `json:"profile_bio"`
	ProfilePhone     UpdateField[string] `json:"profile_phone"`
}

// ProfileChanges flattens the tri-state fields into GORM update maps.
func (r *UpdateProfileRequest) ProfileChanges() (userCols, profileCols map[string]interface{}) {
	userCols = map[string]interface{}{}
	profileCols = map[string]interface{}{}

	if r.UserFullName.ShouldUpdate() && !r.UserFullName.IsNull() {
		if v := strings.TrimSpace(r.UserFullName.Val()); v != "" {
			userCols["user_full_name"] = v
		}
	}
	applyNullable(profileCols, "profile_avatar_url", r.ProfileAvatarURL)
	applyNullable(profileCols, "profile_bio", r.ProfileBio)
	applyNullable(profileCols, "profile_phone", r.ProfilePhone)
	return userCols, profileCols
}

func applyNullable(cols map[string]interface{}, name string, f UpdateField[string]) {
	if !f.ShouldUpdate() {
		return
	}
	if f.IsNull() {
		cols[name] = nil
		return
	}
	cols[name] = strings.TrimSpace(f.Val())
}
