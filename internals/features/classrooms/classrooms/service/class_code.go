package service

import (
	"crypto/rand"
	"errors"
	"strings"

	"gorm.io/gorm"

	model "kelasku_backend/internals/features/classrooms/classrooms/model"
)

// Alphabet without 0/O/1/I so codes survive being read out loud.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const ClassCodeLength = 6

// GenerateClassCode returns a random join code.
func GenerateClassCode() (string, error) {
	buf := make([]byte, ClassCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	var b strings.Builder
	for _, v := range buf {
		b.WriteByte(codeAlphabet[int(v)%len(codeAlphabet)])
	}
	return b.String(), nil
}

// NormalizeClassCode uppercases and trims user input before lookup.
func NormalizeClassCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// GenerateUniqueClassCode retries on collision against the classrooms table.
func GenerateUniqueClassCode(db *gorm.DB) (string, error) {
	for i := 0; i < 5; i++ {
		code, err := GenerateClassCode()
		if err != nil {
			return "", err
		}
		var count int64
		if err := db.Model(&model.ClassroomModel{}).
			Where("classroom_code = ?", code).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique class code")
}
