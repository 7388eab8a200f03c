package dto

import (
	"errors"
	"fmt"
)

var errWindowInverted = errors.New("exam_available_until is before exam_available_from")

func newFieldError(questionIndex int, msg string) error {
	return fmt.Errorf("questions[%d]: %s", questionIndex, msg)
}
