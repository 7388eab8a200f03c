package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaterialModel maps the materials table. Materials are links; file bytes
// live wherever the URL points.
type MaterialModel struct {
	MaterialID          uuid.UUID `gorm:"column:material_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"material_id"`
	MaterialClassroomID uuid.UUID `gorm:"column:material_classroom_id;type:uuid;not null;index" json:"material_classroom_id"`
	MaterialUploadedBy  uuid.UUID `gorm:"column:material_uploaded_by;type:uuid;not null" json:"material_uploaded_by"`
	MaterialTitle       string    `gorm:"column:material_title;type:varchar(180);not null" json:"material_title"`
	MaterialDescription *string   `gorm:"column:material_description;type:text" json:"material_description,omitempty"`
	MaterialURL         string    `gorm:"column:material_url;type:text;not null" json:"material_url"`

	MaterialCreatedAt time.Time      `gorm:"column:material_created_at;not null;autoCreateTime" json:"material_created_at"`
	MaterialDeletedAt gorm.DeletedAt `gorm:"column:material_deleted_at;index" json:"material_deleted_at,omitempty"`
}

func (MaterialModel) TableName() string { return "materials" }
