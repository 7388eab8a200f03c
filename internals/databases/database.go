package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	assignmentModel "kelasku_backend/internals/features/assignments/model"
	announcementModel "kelasku_backend/internals/features/classrooms/announcements/model"
	classroomModel "kelasku_backend/internals/features/classrooms/classrooms/model"
	materialModel "kelasku_backend/internals/features/classrooms/materials/model"
	attemptModel "kelasku_backend/internals/features/exams/attempts/model"
	examModel "kelasku_backend/internals/features/exams/exams/model"
	proctorModel "kelasku_backend/internals/features/exams/proctor/model"
	notificationModel "kelasku_backend/internals/features/notifications/model"
	authModel "kelasku_backend/internals/features/users/auth/model"
	userModel "kelasku_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=kelasku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // works with PgBouncer transaction pooling
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrateIfEnabled keeps the schema in-code. Gated behind an env flag so
// production can keep running against externally managed SQL.
func AutoMigrateIfEnabled() {
	if getenv("DB_AUTOMIGRATE", "false") != "true" {
		return
	}
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&userModel.UserProfileModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&classroomModel.ClassroomModel{},
		&classroomModel.ClassroomMembershipModel{},
		&announcementModel.AnnouncementModel{},
		&materialModel.MaterialModel{},
		&assignmentModel.AssignmentModel{},
		&assignmentModel.SubmissionModel{},
		&examModel.ExamModel{},
		&examModel.ExamQuestionModel{},
		&examModel.ExamAnswerKeyModel{},
		&attemptModel.ExamAttemptModel{},
		&attemptModel.ExamAttemptAnswerModel{},
		&proctorModel.ProctorEventModel{},
		&notificationModel.NotificationModel{},
	)
	if err != nil {
		log.Fatalf("❌ automigrate failed: %v", err)
	}
	log.Println("✅ automigrate done.")
}

func WarmUpQueries() {
	// fire a light query so the pool is filled and ready
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
