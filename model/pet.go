package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/petlove/backend/constant"
)

// StringList maps a JSON array column to a string slice.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		if len(v) == 0 {
			*l = nil
			return nil
		}
		return json.Unmarshal(v, l)
	case string:
		if v == "" {
			*l = nil
			return nil
		}
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
}

// PetEntity represents the pets table entity
type PetEntity struct {
	ID             uint64                     `db:"id" json:"id"`
	Name           string                     `db:"name" json:"name"`
	Species        string                     `db:"species" json:"species"`
	Breed          string                     `db:"breed" json:"breed"`
	Age            int                        `db:"age" json:"age"`
	Color          string                     `db:"color" json:"color"`
	Size           string                     `db:"size" json:"size"`
	Gender         string                     `db:"gender" json:"gender"`
	Description    string                     `db:"description" json:"description"`
	AdoptionStatus constant.PetAdoptionStatus `db:"adoption_status" json:"adoption_status"`
	Price          float64                    `db:"price" json:"price"`
	Images         StringList                 `db:"images" json:"images"`
	CreatedAt      time.Time                  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time                 `db:"updated_at" json:"updated_at,omitempty"`
}

// PetFilter for querying the catalog
type PetFilter struct {
	Species        string
	AdoptionStatus string
	Page           int
	PerPage        int
}

// CreatePetRequest for adding a pet to the catalog
type CreatePetRequest struct {
	Name        string   `json:"name" validate:"required"`
	Species     string   `json:"species" validate:"required"`
	Breed       string   `json:"breed"`
	Age         int      `json:"age" validate:"gte=0"`
	Color       string   `json:"color"`
	Size        string   `json:"size" validate:"omitempty,oneof=Small Medium Large"`
	Gender      string   `json:"gender" validate:"omitempty,oneof=Male Female"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Images      []string `json:"images"`
}

// UpdatePetRequest replaces the mutable pet fields. The adoption status is
// owned by the adoption flow and cannot be set here.
type UpdatePetRequest struct {
	Name        string   `json:"name" validate:"required"`
	Species     string   `json:"species" validate:"required"`
	Breed       string   `json:"breed"`
	Age         int      `json:"age" validate:"gte=0"`
	Color       string   `json:"color"`
	Size        string   `json:"size" validate:"omitempty,oneof=Small Medium Large"`
	Gender      string   `json:"gender" validate:"omitempty,oneof=Male Female"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Images      []string `json:"images"`
}

type PetListResponse struct {
	Items      []PetEntity `json:"items"`
	TotalCount int64       `json:"total_count"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
}
