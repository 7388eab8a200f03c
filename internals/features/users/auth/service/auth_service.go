// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"gorm.io/gorm"

	"kelasku_backend/internals/configs"
	authDTO "kelasku_backend/internals/features/users/auth/dto"
	userModel "kelasku_backend/internals/features/users/user/model"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrGoogleTokenInvalid = errors.New("google id token invalid")
)

// Register creates a user with a bcrypt-hashed password.
func Register(db *gorm.DB, in *authDTO.RegisterRequest) (*userModel.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(in.UserEmail))

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_email = ?", email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := HashPassword(in.UserPassword)
	if err != nil {
		return nil, err
	}

	user := userModel.UserModel{
		UserFullName: strings.TrimSpace(in.UserFullName),
		UserEmail:    email,
		UserPassword: &hashed,
		UserIsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies email+password.
func Login(db *gorm.DB, in *authDTO.LoginRequest) (*userModel.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(in.UserEmail))

	var user userModel.UserModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.HasPassword() || !CheckPassword(*user.UserPassword, in.UserPassword) {
		return nil, ErrInvalidCredentials
	}
	if !user.UserIsActive {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// LoginWithGoogle verifies the Google ID token and finds or creates the
// matching user.
func LoginWithGoogle(db *gorm.DB, idToken string) (*userModel.UserModel, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, ErrGoogleTokenInvalid
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, ErrGoogleTokenInvalid
	}
	email, name, googleID := strings.ToLower(claimSet.Email), claimSet.Name, claimSet.Sub

	// by google_id first
	var user userModel.UserModel
	err = db.Where("user_google_id = ?", googleID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// then link an existing email account
	err = db.Where("user_email = ?", email).First(&user).Error
	if err == nil {
		if user.UserGoogleID == nil {
			if err := db.Model(&user).
				Update("user_google_id", googleID).Error; err != nil {
				return nil, err
			}
			user.UserGoogleID = &googleID
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// brand new Google-only account
	user = userModel.UserModel{
		UserFullName: name,
		UserEmail:    email,
		UserGoogleID: &googleID,
		UserIsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
