package model

import (
	"time"

	"github.com/petlove/backend/constant"
)

// AppointmentEntity represents the appointments table entity
type AppointmentEntity struct {
	ID              uint64                     `db:"id" json:"id"`
	UserID          uint64                     `db:"user_id" json:"user_id"`
	AppointmentType string                     `db:"appointment_type" json:"appointment_type"`
	AppointmentDate time.Time                  `db:"appointment_date" json:"appointment_date"`
	DurationMinutes int                        `db:"duration_minutes" json:"duration_minutes"`
	Status          constant.AppointmentStatus `db:"status" json:"status"`
	Notes           string                     `db:"notes" json:"notes"`
	Veterinarian    string                     `db:"veterinarian" json:"veterinarian"`
	CreatedAt       time.Time                  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time                 `db:"updated_at" json:"updated_at,omitempty"`
}

// ScheduleAppointmentRequest for booking an appointment
type ScheduleAppointmentRequest struct {
	UserID          uint64    `json:"user_id" validate:"required"`
	AppointmentType string    `json:"appointment_type" validate:"required"`
	AppointmentDate time.Time `json:"appointment_date" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	Notes           string    `json:"notes"`
	Veterinarian    string    `json:"veterinarian"`
}

// UpdateAppointmentStatusRequest moves an appointment along its lifecycle
type UpdateAppointmentStatusRequest struct {
	Status constant.AppointmentStatus `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

// AppointmentFilter for querying appointments
type AppointmentFilter struct {
	UserID uint64
}
