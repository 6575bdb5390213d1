package transport

import (
	"encoding/json"
	"net/http"

	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/model"
	"github.com/petlove/backend/utils/errors"
	validatorx "github.com/petlove/backend/utils/validator"
)

// ApplyAdoption handler
// @Summary Apply for adoption
// @Description Open an adoption application for an available pet
// @Tags Adoptions
// @Accept json
// @Produce json
// @Param request body model.ApplyAdoptionRequest true "Apply Adoption Request"
// @Success 201 {object} model.ApplyAdoptionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/adoptions [post]
func (s *RestHandler) ApplyAdoption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ApplyAdoptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Reason(err)))
		return
	}

	res, err := s.AdoptionApp.Apply(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// GetAdoption handler
// @Summary Get adoption
// @Tags Adoptions
// @Produce json
// @Param id path int true "Adoption ID"
// @Success 200 {object} model.AdoptionEntity
// @Failure 404 {object} ErrorResponse
// @Router /api/adoptions/{id} [get]
func (s *RestHandler) GetAdoption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AdoptionApp.GetAdoption(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListAdoptions handler
// @Summary List adoptions
// @Tags Adoptions
// @Produce json
// @Param user_id query int false "Filter by user"
// @Param pet_id query int false "Filter by pet"
// @Success 200 {array} model.AdoptionEntity
// @Router /api/adoptions [get]
func (s *RestHandler) ListAdoptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := parseQueryUint(r, "user_id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	petID, ok := parseQueryUint(r, "pet_id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AdoptionApp.ListAdoptions(ctx, &model.AdoptionFilter{UserID: userID, PetID: petID})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CompleteAdoption handler
// @Summary Complete adoption
// @Description Finalize a pending application; the pet becomes adopted
// @Tags Adoptions
// @Produce json
// @Param id path int true "Adoption ID"
// @Success 200 {object} model.AdoptionEntity
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/adoptions/{id}/complete [post]
func (s *RestHandler) CompleteAdoption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdoptionApp.Complete(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdoptionApp.GetAdoption(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelAdoption handler
// @Summary Cancel adoption
// @Description Withdraw a pending application; the pet becomes available again
// @Tags Adoptions
// @Produce json
// @Param id path int true "Adoption ID"
// @Success 200 {object} model.AdoptionEntity
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/adoptions/{id}/cancel [post]
func (s *RestHandler) CancelAdoption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdoptionApp.Cancel(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdoptionApp.GetAdoption(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ExpireAdoption handler, reachable only through the internal subrouter.
// @Summary Expire adoption
// @Description Release a pending application whose window has passed
// @Tags Internal
// @Produce json
// @Param id path int true "Adoption ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /internal/v1/adoptions/{id}/expire [post]
func (s *RestHandler) ExpireAdoption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdoptionApp.Expire(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"status": "expired"})
}
