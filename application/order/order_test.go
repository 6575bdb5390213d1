package order_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jmoiron/sqlx"
	apporder "github.com/petlove/backend/application/order"
	"github.com/petlove/backend/constant"
	ordermocks "github.com/petlove/backend/mocks/repository/order"
	txmocks "github.com/petlove/backend/mocks/repository/tx"
	usermocks "github.com/petlove/backend/mocks/repository/user"
	"github.com/petlove/backend/model"
	cerr "github.com/petlove/backend/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestOrderApp_CreateOrder(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		orderRepo *ordermocks.OrderRepository
		userRepo  *usermocks.UserRepository
	}
	type args struct {
		ctx context.Context
		req *model.CreateOrderRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.OrderEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: total is recomputed from the line items",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				orderRepo: ordermocks.NewOrderRepository(t),
				userRepo:  usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateOrderRequest{
					UserID: 1,
					Items: []model.OrderItemRequest{
						{ProductName: "Dog Food 5kg", Quantity: 2, Price: 25.5},
						{ProductName: "Leash", Quantity: 1, Price: 10},
					},
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(&model.UserEntity{ID: 1, Name: "Test User"}, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.
					On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.OrderEntity) bool {
						return ent.UserID == 1 &&
							ent.Status == constant.OrderStatusProcessing &&
							ent.TotalAmount == 61
					})).
					Return(uint64(10), nil).
					Once()

				f.orderRepo.
					On("InsertOrderItemsTx", mock.Anything, tx, uint64(10), mock.Anything).
					Return(nil).
					Once()
			},
			want: &model.OrderEntity{
				ID:          10,
				UserID:      1,
				Status:      constant.OrderStatusProcessing,
				TotalAmount: 61,
				Items: []model.OrderItem{
					{OrderID: 10, ProductName: "Dog Food 5kg", Quantity: 2, Price: 25.5},
					{OrderID: 10, ProductName: "Leash", Quantity: 1, Price: 10},
				},
			},
			wantErr: false,
		},
		{
			name: "error: user not found",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				orderRepo: ordermocks.NewOrderRepository(t),
				userRepo:  usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateOrderRequest{
					UserID: 99,
					Items: []model.OrderItemRequest{
						{ProductName: "Dog Food 5kg", Quantity: 1, Price: 25.5},
					},
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 99}).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrUserNotFound,
		},
		{
			name: "error: item insert fails and rolls back",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				orderRepo: ordermocks.NewOrderRepository(t),
				userRepo:  usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateOrderRequest{
					UserID: 1,
					Items: []model.OrderItemRequest{
						{ProductName: "Dog Food 5kg", Quantity: 1, Price: 25.5},
					},
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(&model.UserEntity{ID: 1}, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.
					On("InsertOrderTx", mock.Anything, tx, mock.Anything).
					Return(uint64(10), nil).
					Once()

				f.orderRepo.
					On("InsertOrderItemsTx", mock.Anything, tx, uint64(10), mock.Anything).
					Return(errors.New("connection refused")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := apporder.NewOrderApp(tt.fields.txRepo, tt.fields.orderRepo, tt.fields.userRepo)

			got, err := app.CreateOrder(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateOrder() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CreateOrder() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOrderApp_GetOrder(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		orderRepo *ordermocks.OrderRepository
		userRepo  *usermocks.UserRepository
	}
	tests := []struct {
		name     string
		fields   fields
		orderID  uint64
		mockCall func(f fields)
		want     *model.OrderEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: get order with items",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				orderRepo: ordermocks.NewOrderRepository(t),
				userRepo:  usermocks.NewUserRepository(t),
			},
			orderID: 10,
			mockCall: func(f fields) {
				f.orderRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.OrderEntity{
						ID:          10,
						UserID:      1,
						Status:      constant.OrderStatusProcessing,
						TotalAmount: 61,
					}, nil).
					Once()

				f.orderRepo.
					On("GetItemsByOrderID", mock.Anything, uint64(10)).
					Return([]model.OrderItem{
						{ID: 1, OrderID: 10, ProductName: "Dog Food 5kg", Quantity: 2, Price: 25.5},
					}, nil).
					Once()
			},
			want: &model.OrderEntity{
				ID:          10,
				UserID:      1,
				Status:      constant.OrderStatusProcessing,
				TotalAmount: 61,
				Items: []model.OrderItem{
					{ID: 1, OrderID: 10, ProductName: "Dog Food 5kg", Quantity: 2, Price: 25.5},
				},
			},
			wantErr: false,
		},
		{
			name: "error: order not found",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				orderRepo: ordermocks.NewOrderRepository(t),
				userRepo:  usermocks.NewUserRepository(t),
			},
			orderID: 99,
			mockCall: func(f fields) {
				f.orderRepo.
					On("GetByID", mock.Anything, uint64(99)).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := apporder.NewOrderApp(tt.fields.txRepo, tt.fields.orderRepo, tt.fields.userRepo)

			got, err := app.GetOrder(context.Background(), tt.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetOrder() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetOrder() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOrderApp_ListOrders(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		orderRepo *ordermocks.OrderRepository
		userRepo  *usermocks.UserRepository
	}
	tests := []struct {
		name     string
		fields   fields
		filter   *model.OrderFilter
		mockCall func(f fields)
		want     []model.OrderEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: list orders for a user",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				orderRepo: ordermocks.NewOrderRepository(t),
				userRepo:  usermocks.NewUserRepository(t),
			},
			filter: &model.OrderFilter{UserID: 1},
			mockCall: func(f fields) {
				f.orderRepo.
					On("List", mock.Anything, &model.OrderFilter{UserID: 1}).
					Return([]model.OrderEntity{
						{ID: 11, UserID: 1, Status: constant.OrderStatusShipped, TotalAmount: 10},
						{ID: 10, UserID: 1, Status: constant.OrderStatusProcessing, TotalAmount: 61},
					}, nil).
					Once()

				f.orderRepo.
					On("GetItemsByOrderID", mock.Anything, uint64(11)).
					Return([]model.OrderItem{
						{ID: 3, OrderID: 11, ProductName: "Leash", Quantity: 1, Price: 10},
					}, nil).
					Once()

				f.orderRepo.
					On("GetItemsByOrderID", mock.Anything, uint64(10)).
					Return([]model.OrderItem{
						{ID: 1, OrderID: 10, ProductName: "Dog Food 5kg", Quantity: 2, Price: 25.5},
					}, nil).
					Once()
			},
			want: []model.OrderEntity{
				{
					ID: 11, UserID: 1, Status: constant.OrderStatusShipped, TotalAmount: 10,
					Items: []model.OrderItem{
						{ID: 3, OrderID: 11, ProductName: "Leash", Quantity: 1, Price: 10},
					},
				},
				{
					ID: 10, UserID: 1, Status: constant.OrderStatusProcessing, TotalAmount: 61,
					Items: []model.OrderItem{
						{ID: 1, OrderID: 10, ProductName: "Dog Food 5kg", Quantity: 2, Price: 25.5},
					},
				},
			},
			wantErr: false,
		},
		{
			name: "error: list fails",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				orderRepo: ordermocks.NewOrderRepository(t),
				userRepo:  usermocks.NewUserRepository(t),
			},
			filter: &model.OrderFilter{},
			mockCall: func(f fields) {
				f.orderRepo.
					On("List", mock.Anything, &model.OrderFilter{}).
					Return(nil, errors.New("connection refused")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := apporder.NewOrderApp(tt.fields.txRepo, tt.fields.orderRepo, tt.fields.userRepo)

			got, err := app.ListOrders(context.Background(), tt.filter)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListOrders() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListOrders() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOrderApp_UpdateOrderStatus(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		orderRepo *ordermocks.OrderRepository
		userRepo  *usermocks.UserRepository
	}
	type args struct {
		ctx     context.Context
		orderID uint64
		status  constant.OrderStatus
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: processing to shipped",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				orderRepo: ordermocks.NewOrderRepository(t),
				userRepo:  usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: 10,
				status:  constant.OrderStatusShipped,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.OrderEntity{ID: 10, Status: constant.OrderStatusProcessing}, nil).
					Once()

				f.orderRepo.
					On("UpdateStatusTx", mock.Anything, tx, uint64(10), constant.OrderStatusShipped).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: delivered order cannot be cancelled",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				orderRepo: ordermocks.NewOrderRepository(t),
				userRepo:  usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: 10,
				status:  constant.OrderStatusCancelled,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(10)).
					Return(&model.OrderEntity{ID: 10, Status: constant.OrderStatusDelivered}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOrderStatus,
		},
		{
			name: "error: order not found",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				orderRepo: ordermocks.NewOrderRepository(t),
				userRepo:  usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: 99,
				status:  constant.OrderStatusShipped,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(99)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := apporder.NewOrderApp(tt.fields.txRepo, tt.fields.orderRepo, tt.fields.userRepo)

			err := app.UpdateOrderStatus(tt.args.ctx, tt.args.orderID, tt.args.status)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateOrderStatus() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
