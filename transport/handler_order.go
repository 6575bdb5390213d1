package transport

import (
	"encoding/json"
	"net/http"

	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/model"
	"github.com/petlove/backend/utils/errors"
	validatorx "github.com/petlove/backend/utils/validator"
)

// CreateOrder handler
// @Summary Place order
// @Description Place a product order; the total is computed server-side
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body model.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} model.OrderEntity
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Reason(err)))
		return
	}

	res, err := s.OrderApp.CreateOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// GetOrder handler
// @Summary Get order
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.OrderEntity
// @Failure 404 {object} ErrorResponse
// @Router /api/orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.GetOrder(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListOrders handler
// @Summary List orders
// @Tags Orders
// @Produce json
// @Param user_id query int false "Filter by user"
// @Success 200 {array} model.OrderEntity
// @Router /api/orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := parseQueryUint(r, "user_id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.ListOrders(ctx, &model.OrderFilter{UserID: userID})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateOrderStatus handler
// @Summary Update order status
// @Description Move an order to the next lifecycle status
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body model.UpdateOrderStatusRequest true "Status Request"
// @Success 200 {object} model.OrderEntity
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/orders/{id}/status [put]
func (s *RestHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Reason(err)))
		return
	}

	if err := s.OrderApp.UpdateOrderStatus(ctx, id, req.Status); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.GetOrder(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
