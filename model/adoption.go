package model

import (
	"time"

	"github.com/petlove/backend/constant"
)

// AdoptionEntity represents the adoptions table entity. An application stays
// pending until it is completed, cancelled, or expired by the worker.
type AdoptionEntity struct {
	ID           uint64                  `db:"id" json:"id"`
	UserID       uint64                  `db:"user_id" json:"user_id"`
	PetID        uint64                  `db:"pet_id" json:"pet_id"`
	Status       constant.AdoptionStatus `db:"status" json:"status"`
	AdoptionFee  float64                 `db:"adoption_fee" json:"adoption_fee"`
	Notes        string                  `db:"notes" json:"notes"`
	AdoptionDate *time.Time              `db:"adoption_date" json:"adoption_date,omitempty"`
	ExpiresAt    time.Time               `db:"expires_at" json:"expires_at"`
	CreatedAt    time.Time               `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time              `db:"updated_at" json:"updated_at,omitempty"`
}

// ApplyAdoptionRequest for starting an adoption application
type ApplyAdoptionRequest struct {
	UserID uint64 `json:"user_id" validate:"required"`
	PetID  uint64 `json:"pet_id" validate:"required"`
	Notes  string `json:"notes"`
}

// ApplyAdoptionResponse confirms a pending application
type ApplyAdoptionResponse struct {
	AdoptionID  uint64    `json:"adoption_id"`
	AdoptionFee float64   `json:"adoption_fee"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AdoptionFilter for querying adoptions
type AdoptionFilter struct {
	UserID uint64
	PetID  uint64
}
