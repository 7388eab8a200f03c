package dto

import (
	"encoding/json"
	"testing"
)

func TestUpdateFieldTriState(t *testing.T) {
	var req UpdateProfileRequest
	payload := `{"profile_bio": "hello", "profile_phone": null}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !req.ProfileBio.ShouldUpdate() || req.ProfileBio.IsNull() {
		t.Error("profile_bio should be a value update")
	}
	if req.ProfileBio.Val() != "hello" {
		t.Errorf("profile_bio = %q", req.ProfileBio.Val())
	}
	if !req.ProfilePhone.ShouldUpdate() || !req.ProfilePhone.IsNull() {
		t.Error("profile_phone should be a null update")
	}
	if req.ProfileAvatarURL.ShouldUpdate() {
		t.Error("absent field must not update")
	}
}

func TestProfileChanges(t *testing.T) {
	var req UpdateProfileRequest
	payload := `{"user_full_name": "  Ada Lovelace ", "profile_bio": null, "profile_avatar_url": "https://cdn.example.com/a.png"}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	userCols, profileCols := req.ProfileChanges()

	if got := userCols["user_full_name"]; got != "Ada Lovelace" {
		t.Errorf("user_full_name = %v", got)
	}
	if v, ok := profileCols["profile_bio"]; !ok || v != nil {
		t.Errorf("profile_bio = %v, want explicit nil", v)
	}
	if got := profileCols["profile_avatar_url"]; got != "https://cdn.example.com/a.png" {
		t.Errorf("profile_avatar_url = %v", got)
	}
	if _, ok := profileCols["profile_phone"]; ok {
		t.Error("untouched field must not appear in the update map")
	}
}

func TestProfileChangesIgnoresBlankName(t *testing.T) {
	var req UpdateProfileRequest
	if err := json.Unmarshal([]byte(`{"user_full_name": "   "}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	userCols, _ := req.ProfileChanges()
	if len(userCols) != 0 {
		t.Errorf("blank name must be dropped, got %v", userCols)
	}
}
