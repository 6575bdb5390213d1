package model

import "time"

// VisitEntity represents the visits table entity (veterinary visit records)
type VisitEntity struct {
	ID               uint64     `db:"id" json:"id"`
	UserID           uint64     `db:"user_id" json:"user_id"`
	VisitDate        time.Time  `db:"visit_date" json:"visit_date"`
	VisitType        string     `db:"visit_type" json:"visit_type"`
	Reason           string     `db:"reason" json:"reason"`
	Diagnosis        string     `db:"diagnosis" json:"diagnosis"`
	Treatment        string     `db:"treatment" json:"treatment"`
	Cost             float64    `db:"cost" json:"cost"`
	Veterinarian     string     `db:"veterinarian" json:"veterinarian"`
	FollowUpRequired bool       `db:"follow_up_required" json:"follow_up_required"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// RecordVisitRequest for recording a completed veterinary visit
type RecordVisitRequest struct {
	UserID           uint64    `json:"user_id" validate:"required"`
	VisitDate        time.Time `json:"visit_date" validate:"required"`
	VisitType        string    `json:"visit_type" validate:"required"`
	Reason           string    `json:"reason"`
	Diagnosis        string    `json:"diagnosis"`
	Treatment        string    `json:"treatment"`
	Cost             float64   `json:"cost" validate:"gte=0"`
	Veterinarian     string    `json:"veterinarian"`
	FollowUpRequired bool      `json:"follow_up_required"`
}

// VisitFilter for querying visits
type VisitFilter struct {
	UserID uint64
}
