package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/model"
	"github.com/petlove/backend/utils/errors"
	validatorx "github.com/petlove/backend/utils/validator"
)

// ListPets handler
// @Summary List pets
// @Description Browse the catalog, optionally filtered by species and adoption status
// @Tags Pets
// @Produce json
// @Param species query string false "Species filter"
// @Param adoption_status query string false "Adoption status filter"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.PetListResponse
// @Router /api/pets [get]
func (s *RestHandler) ListPets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	filter := &model.PetFilter{
		Species:        q.Get("species"),
		AdoptionStatus: q.Get("adoption_status"),
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.PerPage, _ = strconv.Atoi(q.Get("per_page"))

	res, err := s.PetApp.ListPets(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetPet handler
// @Summary Get pet
// @Tags Pets
// @Produce json
// @Param id path int true "Pet ID"
// @Success 200 {object} model.PetEntity
// @Failure 404 {object} ErrorResponse
// @Router /api/pets/{id} [get]
func (s *RestHandler) GetPet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PetApp.GetPet(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreatePet handler
// @Summary Add pet
// @Description Add a new pet to the catalog; it starts as available
// @Tags Pets
// @Accept json
// @Produce json
// @Param request body model.CreatePetRequest true "Create Pet Request"
// @Success 201 {object} model.PetEntity
// @Failure 400 {object} ErrorResponse
// @Router /api/pets [post]
func (s *RestHandler) CreatePet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Reason(err)))
		return
	}

	res, err := s.PetApp.CreatePet(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// UpdatePet handler
// @Summary Update pet
// @Tags Pets
// @Accept json
// @Produce json
// @Param id path int true "Pet ID"
// @Param request body model.UpdatePetRequest true "Update Pet Request"
// @Success 200 {object} model.PetEntity
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/pets/{id} [put]
func (s *RestHandler) UpdatePet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Reason(err)))
		return
	}

	res, err := s.PetApp.UpdatePet(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
