package dto

import (
	"time"

	"github.com/google/uuid"

	model "kelasku_backend/internals/features/classrooms/materials/model"
)

type CreateMaterialRequest struct {
	MaterialTitle       string  `json:"material_title" validate:"required,max=180"`
	MaterialDescription *string `json:"material_description" validate:"omitempty"`
	MaterialURL         string  `json:"material_url" validate:"required,url"`
}

type MaterialResponse struct {
	MaterialID          uuid.UUID `json:"material_id"`
	MaterialClassroomID uuid.UUID `json:"material_classroom_id"`
	MaterialUploadedBy  uuid.UUID `json:"material_uploaded_by"`
	MaterialTitle       string    `json:"material_title"`
	MaterialDescription *string   `json:"material_description,omitempty"`
	MaterialURL         string    `json:"material_url"`
	MaterialCreatedAt   time.Time `json:"material_created_at"`
}

func NewMaterialResponse(m *model.MaterialModel) MaterialResponse {
	return MaterialResponse{
		MaterialID:          m.MaterialID,
		MaterialClassroomID: m.MaterialClassroomID,
		MaterialUploadedBy:  m.MaterialUploadedBy,
		MaterialTitle:       m.MaterialTitle,
		MaterialDescription: m.MaterialDescription,
		MaterialURL:         m.MaterialURL,
		MaterialCreatedAt:   m.MaterialCreatedAt,
	}
}
