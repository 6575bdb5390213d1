package transport

import (
	"encoding/json"
	"net/http"

	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/model"
	"github.com/petlove/backend/utils/errors"
	validatorx "github.com/petlove/backend/utils/validator"
)

// RecordVisit handler
// @Summary Record visit
// @Description Record a completed veterinary visit
// @Tags Visits
// @Accept json
// @Produce json
// @Param request body model.RecordVisitRequest true "Record Visit Request"
// @Success 201 {object} model.VisitEntity
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/visits [post]
func (s *RestHandler) RecordVisit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RecordVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Reason(err)))
		return
	}

	res, err := s.VisitApp.RecordVisit(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// GetVisit handler
// @Summary Get visit
// @Tags Visits
// @Produce json
// @Param id path int true "Visit ID"
// @Success 200 {object} model.VisitEntity
// @Failure 404 {object} ErrorResponse
// @Router /api/visits/{id} [get]
func (s *RestHandler) GetVisit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.VisitApp.GetVisit(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListVisits handler
// @Summary List visits
// @Tags Visits
// @Produce json
// @Param user_id query int false "Filter by user"
// @Success 200 {array} model.VisitEntity
// @Router /api/visits [get]
func (s *RestHandler) ListVisits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := parseQueryUint(r, "user_id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.VisitApp.ListVisits(ctx, &model.VisitFilter{UserID: userID})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
