package order

import (
	"context"

	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/model"
	orderrepo "github.com/petlove/backend/repository/order"
	txrepo "github.com/petlove/backend/repository/tx"
	userrepo "github.com/petlove/backend/repository/user"
	"github.com/petlove/backend/utils/errors"
	"github.com/petlove/backend/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.OrderEntity, error)
	GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error)
	ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.OrderEntity, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, status constant.OrderStatus) error
}

type orderAppImpl struct {
	txRepo    txrepo.TxRepository
	orderRepo orderrepo.OrderRepository
	userRepo  userrepo.UserRepository
}

func NewOrderApp(txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, userRepo userrepo.UserRepository) OrderApp {
	return &orderAppImpl{txRepo: txRepo, orderRepo: orderRepo, userRepo: userRepo}
}

func (s *orderAppImpl) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.OrderEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: req.UserID})
	if err != nil {
		logger.Error("[CreateOrder] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	// total is always recomputed from the line items, never trusted from the client
	var total float64
	for _, item := range req.Items {
		total += float64(item.Quantity) * item.Price
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity := &model.OrderEntity{
		UserID:      req.UserID,
		Status:      constant.OrderStatusProcessing,
		TotalAmount: total,
	}

	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, entity)
	if err != nil {
		logger.Error("[CreateOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, req.Items); err != nil {
		logger.Error("[CreateOrder] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	entity.ID = orderID
	entity.Items = make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		entity.Items = append(entity.Items, model.OrderItem{
			OrderID:     orderID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return entity, nil
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error) {
	entity, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] err orderRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	items, err := s.orderRepo.GetItemsByOrderID(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] err orderRepo.GetItemsByOrderID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	entity.Items = items
	return entity, nil
}

func (s *orderAppImpl) ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.OrderEntity, error) {
	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListOrders] err orderRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	for i := range orders {
		items, err := s.orderRepo.GetItemsByOrderID(ctx, orders[i].ID)
		if err != nil {
			logger.Error("[ListOrders] err orderRepo.GetItemsByOrderID", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (s *orderAppImpl) UpdateOrderStatus(ctx context.Context, orderID uint64, status constant.OrderStatus) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateOrderStatus] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.orderRepo.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[UpdateOrderStatus] get order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if !constant.CanTransitionOrder(entity.Status, status) {
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	if err := s.orderRepo.UpdateStatusTx(ctx, tx, orderID, status); err != nil {
		logger.Error("[UpdateOrderStatus] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateOrderStatus] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}
