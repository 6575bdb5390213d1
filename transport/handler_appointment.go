package transport

import (
	"encoding/json"
	"net/http"

	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/model"
	"github.com/petlove/backend/utils/errors"
	validatorx "github.com/petlove/backend/utils/validator"
)

// ScheduleAppointment handler
// @Summary Schedule appointment
// @Description Book a grooming or veterinary appointment at a future time
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body model.ScheduleAppointmentRequest true "Schedule Request"
// @Success 201 {object} model.AppointmentEntity
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/appointments [post]
func (s *RestHandler) ScheduleAppointment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ScheduleAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Reason(err)))
		return
	}

	res, err := s.AppointmentApp.Schedule(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// GetAppointment handler
// @Summary Get appointment
// @Tags Appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} model.AppointmentEntity
// @Failure 404 {object} ErrorResponse
// @Router /api/appointments/{id} [get]
func (s *RestHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AppointmentApp.GetAppointment(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListAppointments handler
// @Summary List appointments
// @Tags Appointments
// @Produce json
// @Param user_id query int false "Filter by user"
// @Success 200 {array} model.AppointmentEntity
// @Router /api/appointments [get]
func (s *RestHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := parseQueryUint(r, "user_id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AppointmentApp.ListAppointments(ctx, &model.AppointmentFilter{UserID: userID})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateAppointmentStatus handler
// @Summary Update appointment status
// @Description Mark a scheduled appointment completed or cancelled
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body model.UpdateAppointmentStatusRequest true "Status Request"
// @Success 200 {object} model.AppointmentEntity
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/appointments/{id}/status [put]
func (s *RestHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Reason(err)))
		return
	}

	if err := s.AppointmentApp.UpdateAppointmentStatus(ctx, id, req.Status); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AppointmentApp.GetAppointment(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
