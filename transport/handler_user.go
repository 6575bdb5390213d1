package transport

import (
	"encoding/json"
	"net/http"

	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/model"
	"github.com/petlove/backend/utils/errors"
	validatorx "github.com/petlove/backend/utils/validator"
)

// Register handler
// @Summary Register user
// @Description Register a new user; the email must not be taken
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.UserEntity
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/users/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Reason(err)))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// Login handler
// @Summary Login user
// @Description Verify credentials and return the user profile
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/users/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Reason(err)))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListUsers handler
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} model.UserEntity
// @Router /api/users [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.UserApp.ListUsers(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
