// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/configs"
	authModel "kelasku_backend/internals/features/users/auth/model"
	userModel "kelasku_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var (
	ErrRefreshTokenInvalid = errors.New("refresh token invalid")
	ErrRefreshTokenUnknown = errors.New("refresh token unknown")
	ErrMissingSecret       = errors.New("jwt secret not configured")
)

// BuildAccessClaims composes the access-token claim set for a user.
func BuildAccessClaims(u *userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       u.UserID.String(),
		"user_name": u.UserFullName,
		"email":     u.UserEmail,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	}
}

// IssueTokenPair signs a new access+refresh pair and stores the refresh
// hash server-side.
func IssueTokenPair(db *gorm.DB, u *userModel.UserModel, userAgent, ip string) (access, refresh string, err error) {
	if configs.JWTSecret == "" || configs.JWTRefreshSecret == "" {
		return "", "", ErrMissingSecret
	}
	now := time.Now().UTC()

	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, BuildAccessClaims(u, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", "", err
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.UserID, now)).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", "", err
	}

	row := authModel.RefreshTokenModel{
		UserID:    u.UserID,
		TokenHash: ComputeRefreshHash(refresh, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(RefreshTokenTTL),
	}
	if userAgent != "" {
		row.UserAgent = &userAgent
	}
	if ip != "" {
		row.IP = &ip
	}
	if err := db.Create(&row).Error; err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ParseRefreshToken validates signature and expiry and returns the subject.
func ParseRefreshToken(raw string) (uuid.UUID, error) {
	if configs.JWTRefreshSecret == "" {
		return uuid.Nil, ErrMissingSecret
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, ErrRefreshTokenInvalid
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrRefreshTokenInvalid
	}
	return userID, nil
}

// ComputeRefreshHash derives the server-side lookup hash for a refresh
// token. HMAC so a leaked table cannot be replayed as tokens.
func ComputeRefreshHash(raw, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(raw))
	return mac.Sum(nil)
}

// RotateRefreshToken deletes the presented token's row after verifying it
// exists; callers then issue a fresh pair.
func RotateRefreshToken(db *gorm.DB, raw string) error {
	h := ComputeRefreshHash(raw, configs.JWTRefreshSecret)
	res := db.Where("token_hash = ? AND revoked_at IS NULL AND expires_at > now()", h).
		Delete(&authModel.RefreshTokenModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRefreshTokenUnknown
	}
	return nil
}

// RevokeUserRefreshTokens drops every stored refresh token for a user
// (logout-everywhere semantics on explicit logout).
func RevokeUserRefreshTokens(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).
		Delete(&authModel.RefreshTokenModel{}).Error
}

// BlacklistAccessToken records an access token so the auth middleware
// rejects it until it ages out.
func BlacklistAccessToken(db *gorm.DB, raw string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     raw,
		ExpiredAt: expiredAt,
	}).Error
}
