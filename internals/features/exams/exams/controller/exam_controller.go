package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	classroomService "kelasku_backend/internals/features/classrooms/classrooms/service"
	dto "kelasku_backend/internals/features/exams/exams/dto"
	model "kelasku_backend/internals/features/exams/exams/model"
	service "kelasku_backend/internals/features/exams/exams/service"
	helper "kelasku_backend/internals/helpers"
)

type ExamController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db, Validator: validator.New()}
}

/* =======================
   Handlers
======================= */

// POST /api/u/classrooms/:classroom_id/exams  (teacher)
// Exam, questions and answer keys are written in a single transaction; a
// failure on any row rolls back the whole exam.
func (ctrl *ExamController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classroomID, err := helper.ParseUUIDParam(c, "classroom_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if _, err := classroomService.EnsureClassroomTeacher(ctrl.DB, classroomID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateExamRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := body.ValidateQuestions(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	exam, questions, keys := body.ToModels(classroomID, userID)

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&exam).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].ExamQuestionExamID = exam.ExamID
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
			keys[i].ExamAnswerQuestionID = questions[i].ExamQuestionID
			if err := tx.Create(&keys[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] create exam:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create exam")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Exam created",
		dto.NewExamResponse(&exam, time.Now()))
}

// GET /api/u/classrooms/:classroom_id/exams  (members)
func (ctrl *ExamController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classroomID, err := helper.ParseUUIDParam(c, "classroom_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if _, err := classroomService.EnsureClassroomMember(ctrl.DB, classroomID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var exams []model.ExamModel
	if err := ctrl.DB.
		Where("exam_classroom_id = ?", classroomID).
		Order("exam_created_at DESC").
		Find(&exams).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list exams")
	}

	now := time.Now()
	out := make([]dto.ExamResponse, 0, len(exams))
	for i := range exams {
		out = append(out, dto.NewExamResponse(&exams[i], now))
	}
	return helper.Success(c, "OK", out)
}

// GET /api/u/exams/:exam_id
// Teachers get questions with answer keys. Students get key-less questions
// and only while the exam is open.
func (ctrl *ExamController) Detail(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	examID, err := helper.ParseUUIDParam(c, "exam_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var exam model.ExamModel
	if err := ctrl.DB.First(&exam, "exam_id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load exam")
	}

	membership, err := classroomService.EnsureClassroomMember(ctrl.DB, exam.ExamClassroomID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	now := time.Now()
	isTeacher := membership.MembershipRole == constants.RoleTeacher

	if !isTeacher {
		if state := service.GetExamState(&exam, now); state != service.ExamStateOpen {
			// students only see metadata outside the window
			return helper.Success(c, "OK", dto.ExamDetailResponse{
				ExamResponse: dto.NewExamResponse(&exam, now),
				Questions:    nil,
			})
		}
	}

	var questions []model.ExamQuestionModel
	if err := ctrl.DB.
		Where("exam_question_exam_id = ?", examID).
		Order("exam_question_sort_order ASC").
		Find(&questions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load questions")
	}

	if !isTeacher {
		out := make([]dto.StudentQuestionResponse, 0, len(questions))
		for i := range questions {
			out = append(out, dto.NewStudentQuestionResponse(&questions[i]))
		}
		return helper.Success(c, "OK", dto.ExamDetailResponse{
			ExamResponse: dto.NewExamResponse(&exam, now),
			Questions:    out,
		})
	}

	keys, err := ctrl.loadKeysByQuestion(questions)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load answer keys")
	}
	out := make([]dto.TeacherQuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, dto.NewTeacherQuestionResponse(&questions[i], keys[questions[i].ExamQuestionID.String()]))
	}
	return helper.Success(c, "OK", dto.ExamDetailResponse{
		ExamResponse: dto.NewExamResponse(&exam, now),
		Questions:    out,
	})
}

func (ctrl *ExamController) loadKeysByQuestion(questions []model.ExamQuestionModel) (map[string]*model.ExamAnswerKeyModel, error) {
	ids := make([]interface{}, 0, len(questions))
	for i := range questions {
		ids = append(ids, questions[i].ExamQuestionID)
	}
	byQuestion := make(map[string]*model.ExamAnswerKeyModel, len(questions))
	if len(ids) == 0 {
		return byQuestion, nil
	}
	var keys []model.ExamAnswerKeyModel
	if err := ctrl.DB.Where("exam_answer_question_id IN ?", ids).Find(&keys).Error; err != nil {
		return nil, err
	}
	for i := range keys {
		byQuestion[keys[i].ExamAnswerQuestionID.String()] = &keys[i]
	}
	return byQuestion, nil
}
