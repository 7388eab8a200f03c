package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kelasku_backend/internals/constants"
	classroomService "kelasku_backend/internals/features/classrooms/classrooms/service"
	dto "kelasku_backend/internals/features/exams/attempts/dto"
	model "kelasku_backend/internals/features/exams/attempts/model"
	attemptService "kelasku_backend/internals/features/exams/attempts/service"
	examModel "kelasku_backend/internals/features/exams/exams/model"
	examService "kelasku_backend/internals/features/exams/exams/service"
	helper "kelasku_backend/internals/helpers"
)

// submitGrace is how long past the deadline a submit is still accepted, to
// absorb clock skew and slow uploads.
const submitGrace = 30 * time.Second

type AttemptController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttemptController(db *gorm.DB) *AttemptController {
	return &AttemptController{DB: db, Validator: validator.New()}
}

/* =======================
   Handlers
======================= */

// POST /api/u/exams/:exam_id/attempts
// The exam row is locked FOR UPDATE so two concurrent starts cannot both
// pass the max-attempts check.
func (ctrl *AttemptController) Start(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	examID, err := helper.ParseUUIDParam(c, "exam_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var attempt model.ExamAttemptModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var exam examModel.ExamModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&exam, "exam_id = ?", examID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Exam not found")
			}
			return err
		}

		if _, err := classroomService.EnsureClassroomMember(tx, exam.ExamClassroomID, userID); err != nil {
			return err
		}

		now := time.Now()
		if state := examService.GetExamState(&exam, now); state != examService.ExamStateOpen {
			return fiber.NewError(fiber.StatusConflict, "Exam is not open")
		}

		var count int64
		if err := tx.Model(&model.ExamAttemptModel{}).
			Where("attempt_exam_id = ? AND attempt_user_id = ?", examID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(exam.ExamMaxAttempts) {
			return fiber.NewError(fiber.StatusConflict, "No attempts remaining")
		}

		deadline := now.Add(time.Duration(exam.ExamDurationMin) * time.Minute)
		if exam.ExamAvailableUntil != nil && deadline.After(*exam.ExamAvailableUntil) {
			deadline = *exam.ExamAvailableUntil
		}

		attempt = model.ExamAttemptModel{
			AttemptExamID:        examID,
			AttemptUserID:        userID,
			AttemptNumber:        int(count) + 1,
			AttemptStatus:        constants.AttemptInProgress,
			AttemptStartedAt:     now,
			AttemptDeadlineAt:    deadline,
			AttemptSecurityScore: 100,
		}
		return tx.Create(&attempt).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] start attempt:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to start attempt")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attempt started",
		dto.NewAttemptResponse(&attempt))
}

// POST /api/u/attempts/:attempt_id/submit
// Grading happens entirely server-side against the stored answer keys.
func (ctrl *AttemptController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	attemptID, err := helper.ParseUUIDParam(c, "attempt_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.SubmitAttemptRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var attempt model.ExamAttemptModel
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
			return fiber.NewError(fiber.StatusConflict, "Attempt already submitted")
		}

		now := time.Now()
		if now.After(attempt.AttemptDeadlineAt.Add(submitGrace)) {
			return fiber.NewError(fiber.StatusConflict, "Attempt deadline has passed")
		}

		var questions []examModel.ExamQuestionModel
		if err := tx.Where("exam_question_exam_id = ?", attempt.AttemptExamID).
			Order("exam_question_sort_order ASC").
			Find(&questions).Error; err != nil {
			return err
		}
		keys, err := loadAnswerKeys(tx, questions)
		if err != nil {
			return err
		}

		submitted := make([]attemptService.SubmittedAnswer, 0, len(body.Answers))
		for _, a := range body.Answers {
			submitted = append(submitted, attemptService.SubmittedAnswer{
				QuestionID:     a.QuestionID,
				SelectedOption: a.SelectedOption,
				Text:           a.Text,
			})
		}

		graded := attemptService.GradeAttempt(attempt.AttemptID, questions, keys, submitted)
		if len(graded.Answers) > 0 {
			if err := tx.CreateInBatches(graded.Answers, 100).Error; err != nil {
				return err
			}
		}

		attempt.AttemptStatus = constants.AttemptSubmitted
		attempt.AttemptSubmittedAt = &now
		attempt.AttemptAutoScore = &graded.AutoScore
		return tx.Model(&attempt).Updates(map[string]interface{}{
			"attempt_status":       attempt.AttemptStatus,
			"attempt_submitted_at": attempt.AttemptSubmittedAt,
			"attempt_auto_score":   attempt.AttemptAutoScore,
		}).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] submit attempt:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to submit attempt")
	}

	return helper.Success(c, "Attempt submitted", dto.NewAttemptResponse(&attempt))
}

// GET /api/u/attempts/:attempt_id/result
// The owner sees their own graded result; the classroom teacher sees anyone's.
func (ctrl *AttemptController) Result(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	attemptID, err := helper.ParseUUIDParam(c, "attempt_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	attempt, exam, err := ctrl.loadAttemptWithExam(attemptID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if attempt.AttemptUserID != userID {
		if _, err := classroomService.EnsureClassroomTeacher(ctrl.DB, exam.ExamClassroomID, userID); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if attempt.IsInProgress() {
		return helper.Error(c, fiber.StatusConflict, "Attempt not submitted yet")
	}

	var answers []model.ExamAttemptAnswerModel
	if err := ctrl.DB.Where("attempt_answer_attempt_id = ?", attemptID).
		Find(&answers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load answers")
	}

	out := make([]dto.AnswerResultResponse, 0, len(answers))
	for i := range answers {
		out = append(out, dto.NewAnswerResultResponse(&answers[i]))
	}
	return helper.Success(c, "OK", dto.AttemptResultResponse{
		AttemptResponse: dto.NewAttemptResponse(attempt),
		TotalMarks:      exam.ExamTotalMarks,
		Answers:         out,
	})
}

// GET /api/u/exams/:exam_id/attempts  (teacher)
func (ctrl *AttemptController) ListForExam(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	examID, err := helper.ParseUUIDParam(c, "exam_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	exam, err := ctrl.loadExam(examID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if _, err := classroomService.EnsureClassroomTeacher(ctrl.DB, exam.ExamClassroomID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	type row struct {
		model.ExamAttemptModel
		UserFullName string `gorm:"column:user_full_name"`
		UserEmail    string `gorm:"column:user_email"`
	}
	var rows []row
	if err := ctrl.DB.Table("exam_attempts").
		Select("exam_attempts.*, users.user_full_name, users.user_email").
		Joins("JOIN users ON users.user_id = exam_attempts.attempt_user_id").
		Where("exam_attempts.attempt_exam_id = ?", examID).
		Order("exam_attempts.attempt_started_at DESC").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list attempts")
	}

	out := make([]dto.AttemptWithUserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.AttemptWithUserResponse{
			AttemptResponse: dto.NewAttemptResponse(&rows[i].ExamAttemptModel),
			UserFullName:    rows[i].UserFullName,
			UserEmail:       rows[i].UserEmail,
		})
	}
	return helper.Success(c, "OK", out)
}

// GET /api/u/exams/:exam_id/attempts/mine
func (ctrl *AttemptController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	examID, err := helper.ParseUUIDParam(c, "exam_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	exam, err := ctrl.loadExam(examID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if _, err := classroomService.EnsureClassroomMember(ctrl.DB, exam.ExamClassroomID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var attempts []model.ExamAttemptModel
	if err := ctrl.DB.
		Where("attempt_exam_id = ? AND attempt_user_id = ?", examID, userID).
		Order("attempt_number ASC").
		Find(&attempts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list attempts")
	}

	out := make([]dto.AttemptResponse, 0, len(attempts))
	for i := range attempts {
		out = append(out, dto.NewAttemptResponse(&attempts[i]))
	}
	return helper.Success(c, "OK", out)
}

/* =======================
   Loaders
======================= */

func (ctrl *AttemptController) loadExam(examID uuid.UUID) (*examModel.ExamModel, error) {
	var exam examModel.ExamModel
	if err := ctrl.DB.First(&exam, "exam_id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Exam not found")
		}
		return nil, err
	}
	return &exam, nil
}

func (ctrl *AttemptController) loadAttemptWithExam(attemptID uuid.UUID) (*model.ExamAttemptModel, *examModel.ExamModel, error) {
	var attempt model.ExamAttemptModel
	if err := ctrl.DB.First(&attempt, "attempt_id = ?", attemptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Attempt not found")
		}
		return nil, nil, err
	}
	exam, err := ctrl.loadExam(attempt.AttemptExamID)
	if err != nil {
		return nil, nil, err
	}
	return &attempt, exam, nil
}

func loadAnswerKeys(tx *gorm.DB, questions []examModel.ExamQuestionModel) (map[string]*examModel.ExamAnswerKeyModel, error) {
	byQuestion := make(map[string]*examModel.ExamAnswerKeyModel, len(questions))
	if len(questions) == 0 {
		return byQuestion, nil
	}
	ids := make([]uuid.UUID, 0, len(questions))
	for i := range questions {
		ids = append(ids, questions[i].ExamQuestionID)
	}
	var keys []examModel.ExamAnswerKeyModel
	if err := tx.Where("exam_answer_question_id IN ?", ids).Find(&keys).Error; err != nil {
		return nil, err
	}
	for i := range keys {
		byQuestion[keys[i].ExamAnswerQuestionID.String()] = &keys[i]
	}
	return byQuestion, nil
}
