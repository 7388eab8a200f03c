package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classroomService "kelasku_backend/internals/features/classrooms/classrooms/service"
	attemptModel "kelasku_backend/internals/features/exams/attempts/model"
	examModel "kelasku_backend/internals/features/exams/exams/model"
	dto "kelasku_backend/internals/features/exams/proctor/dto"
	model "kelasku_backend/internals/features/exams/proctor/model"
	service "kelasku_backend/internals/features/exams/proctor/service"
	helper "kelasku_backend/internals/helpers"
)

type ProctorController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProctorController(db *gorm.DB) *ProctorController {
	return &ProctorController{DB: db, Validator: validator.New()}
}

/* =======================
   Handlers
======================= */

// POST /api/u/attempts/:attempt_id/events
// Only the attempt owner can report, and only while the attempt is still in
// progress. The penalty is derived from severity here, never taken from the
// client.
func (ctrl *ProctorController) Report(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	attemptID, err := helper.ParseUUIDParam(c, "attempt_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.ReportEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var event model.ProctorEventModel
	var attempt attemptModel.ExamAttemptModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&attempt, "attempt_id = ?", attemptID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Attempt not found")
			}
			return err
		}
		if attempt.AttemptUserID != userID {
			return fiber.NewError(fiber.StatusForbidden, "Not your attempt")
		}
		if !attempt.IsInProgress() {
			return fiber.NewError(fiber.StatusConflict, "Attempt is not in progress")
		}

		newScore, newSwitches, penalty := service.ApplyEvent(
			attempt.AttemptSecurityScore, attempt.AttemptTabSwitches,
			body.EventType, body.Severity)

		event = model.ProctorEventModel{
			ProctorEventAttemptID:  attemptID,
			ProctorEventType:       body.EventType,
			ProctorEventSeverity:   body.Severity,
			ProctorEventPenalty:    penalty,
			ProctorEventDetail:     body.Detail,
			ProctorEventOccurredAt: body.OccurredAt,
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		attempt.AttemptSecurityScore = newScore
		attempt.AttemptTabSwitches = newSwitches
		return tx.Model(&attempt).Updates(map[string]interface{}{
			"attempt_security_score": newScore,
			"attempt_tab_switches":   newSwitches,
		}).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] report proctor event:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record event")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event recorded", dto.ReportEventResponse{
		ProctorEventResponse: dto.NewProctorEventResponse(&event),
		AttemptSecurityScore: attempt.AttemptSecurityScore,
		AttemptTabSwitches:   attempt.AttemptTabSwitches,
	})
}

// GET /api/u/attempts/:attempt_id/events
// The attempt owner and the classroom teacher can read the event log.
func (ctrl *ProctorController) ListForAttempt(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	attemptID, err := helper.ParseUUIDParam(c, "attempt_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var attempt attemptModel.ExamAttemptModel
	if err := ctrl.DB.First(&attempt, "attempt_id = ?", attemptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Attempt not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load attempt")
	}

	if attempt.AttemptUserID != userID {
		var exam examModel.ExamModel
		if err := ctrl.DB.First(&exam, "exam_id = ?", attempt.AttemptExamID).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to load exam")
		}
		if _, err := classroomService.EnsureClassroomTeacher(ctrl.DB, exam.ExamClassroomID, userID); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	var events []model.ProctorEventModel
	if err := ctrl.DB.
		Where("proctor_event_attempt_id = ?", attemptID).
		Order("proctor_event_created_at ASC").
		Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list events")
	}

	out := make([]dto.ProctorEventResponse, 0, len(events))
	for i := range events {
		out = append(out, dto.NewProctorEventResponse(&events[i]))
	}
	return helper.Success(c, "OK", out)
}
