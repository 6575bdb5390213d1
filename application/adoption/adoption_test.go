package adoption_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appadoption "github.com/petlove/backend/application/adoption"
	"github.com/petlove/backend/cmd/config"
	"github.com/petlove/backend/constant"
	adoptionmocks "github.com/petlove/backend/mocks/repository/adoption"
	petmocks "github.com/petlove/backend/mocks/repository/pet"
	txmocks "github.com/petlove/backend/mocks/repository/tx"
	usermocks "github.com/petlove/backend/mocks/repository/user"
	"github.com/petlove/backend/model"
	cerr "github.com/petlove/backend/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Adoption: config.AdoptionConfig{
			PendingExpiration: 48 * time.Hour,
		},
	}
}

func TestAdoptionApp_Apply(t *testing.T) {
	type fields struct {
		config       *config.Config
		txRepo       *txmocks.TxRepository
		adoptionRepo *adoptionmocks.AdoptionRepository
		petRepo      *petmocks.PetRepository
		userRepo     *usermocks.UserRepository
	}
	type args struct {
		ctx context.Context
		req *model.ApplyAdoptionRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.ApplyAdoptionResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: available pet is reserved as pending",
			fields: fields{
				config:       testConfig(),
				txRepo:       txmocks.NewTxRepository(t),
				adoptionRepo: adoptionmocks.NewAdoptionRepository(t),
				petRepo:      petmocks.NewPetRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ApplyAdoptionRequest{
					UserID: 1,
					PetID:  2,
					Notes:  "Has a fenced yard",
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

				f.petRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(2)).
					Return(&model.PetEntity{
						ID:             2,
						Name:           "Bella",
						AdoptionStatus: constant.PetStatusAvailable,
						Price:          150,
					}, nil).
					Once()

				f.petRepo.
					On("UpdateAdoptionStatusTx", mock.Anything, tx, uint64(2), constant.PetStatusPending).
					Return(nil).
					Once()

				f.adoptionRepo.
					On("InsertAdoptionTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.AdoptionEntity) bool {
						return ent.UserID == 1 &&
							ent.PetID == 2 &&
							ent.Status == constant.AdoptionStatusPending &&
							ent.AdoptionFee == 150 &&
							!ent.ExpiresAt.IsZero()
					})).
					Return(uint64(7), nil).
					Once()
			},
			want: &model.ApplyAdoptionResponse{
				AdoptionID:  7,
				AdoptionFee: 150,
			},
			wantErr: false,
		},
		{
			name: "error: pet already reserved",
			fields: fields{
				config:       testConfig(),
				txRepo:       txmocks.NewTxRepository(t),
				adoptionRepo: adoptionmocks.NewAdoptionRepository(t),
				petRepo:      petmocks.NewPetRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ApplyAdoptionRequest{UserID: 1, PetID: 2},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(&model.UserEntity{ID: 1}, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.petRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(2)).
					Return(&model.PetEntity{
						ID:             2,
						AdoptionStatus: constant.PetStatusPending,
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrPetUnavailable,
		},
		{
			name: "error: pet not found",
			fields: fields{
				config:       testConfig(),
				txRepo:       txmocks.NewTxRepository(t),
				adoptionRepo: adoptionmocks.NewAdoptionRepository(t),
				petRepo:      petmocks.NewPetRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ApplyAdoptionRequest{UserID: 1, PetID: 99},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(&model.UserEntity{ID: 1}, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.petRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(99)).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: user not found",
			fields: fields{
				config:       testConfig(),
				txRepo:       txmocks.NewTxRepository(t),
				adoptionRepo: adoptionmocks.NewAdoptionRepository(t),
				petRepo:      petmocks.NewPetRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ApplyAdoptionRequest{UserID: 99, PetID: 2},
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
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			// Use nil publisher since adoption.go checks for nil before publishing
			app := appadoption.NewAdoptionApp(tt.fields.config, tt.fields.txRepo, tt.fields.adoptionRepo, tt.fields.petRepo, tt.fields.userRepo, nil)

			got, err := app.Apply(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Apply() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.AdoptionID != tt.want.AdoptionID {
				t.Fatalf("Apply() AdoptionID = %v, want %v", got.AdoptionID, tt.want.AdoptionID)
			}
			if got.AdoptionFee != tt.want.AdoptionFee {
				t.Fatalf("Apply() AdoptionFee = %v, want %v", got.AdoptionFee, tt.want.AdoptionFee)
			}
			if got.ExpiresAt.IsZero() {
				t.Fatal("Apply() ExpiresAt should not be zero")
			}
		})
	}
}

func TestAdoptionApp_Complete(t *testing.T) {
	type fields struct {
		config       *config.Config
		txRepo       *txmocks.TxRepository
		adoptionRepo *adoptionmocks.AdoptionRepository
		petRepo      *petmocks.PetRepository
		userRepo     *usermocks.UserRepository
	}
	tests := []struct {
		name       string
		fields     fields
		adoptionID uint64
		mockCall   func(f fields)
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: pending application completes and pet becomes adopted",
			fields: fields{
				config:       testConfig(),
				txRepo:       txmocks.NewTxRepository(t),
				adoptionRepo: adoptionmocks.NewAdoptionRepository(t),
				petRepo:      petmocks.NewPetRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			adoptionID: 7,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.adoptionRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(7)).
					Return(&model.AdoptionEntity{
						ID:     7,
						UserID: 1,
						PetID:  2,
						Status: constant.AdoptionStatusPending,
					}, nil).
					Once()

				f.adoptionRepo.
					On("UpdateStatusTx", mock.Anything, tx, uint64(7), constant.AdoptionStatusCompleted, mock.MatchedBy(func(date *time.Time) bool {
						return date != nil && !date.IsZero()
					})).
					Return(nil).
					Once()

				f.petRepo.
					On("UpdateAdoptionStatusTx", mock.Anything, tx, uint64(2), constant.PetStatusAdopted).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: application is no longer pending",
			fields: fields{
				config:       testConfig(),
				txRepo:       txmocks.NewTxRepository(t),
				adoptionRepo: adoptionmocks.NewAdoptionRepository(t),
				petRepo:      petmocks.NewPetRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			adoptionID: 7,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.adoptionRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(7)).
					Return(&model.AdoptionEntity{
						ID:     7,
						PetID:  2,
						Status: constant.AdoptionStatusCancelled,
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidAdoptionStatus,
		},
		{
			name: "error: application not found",
			fields: fields{
				config:       testConfig(),
				txRepo:       txmocks.NewTxRepository(t),
				adoptionRepo: adoptionmocks.NewAdoptionRepository(t),
				petRepo:      petmocks.NewPetRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			adoptionID: 99,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.adoptionRepo.
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
			app := appadoption.NewAdoptionApp(tt.fields.config, tt.fields.txRepo, tt.fields.adoptionRepo, tt.fields.petRepo, tt.fields.userRepo, nil)

			err := app.Complete(context.Background(), tt.adoptionID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Complete() error = %v, wantErr %v", err, tt.wantErr)
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

func TestAdoptionApp_Cancel(t *testing.T) {
	type fields struct {
		config       *config.Config
		txRepo       *txmocks.TxRepository
		adoptionRepo *adoptionmocks.AdoptionRepository
		petRepo      *petmocks.PetRepository
		userRepo     *usermocks.UserRepository
	}
	tests := []struct {
		name       string
		fields     fields
		adoptionID uint64
		mockCall   func(f fields)
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: cancelling releases the pet back to available",
			fields: fields{
				config:       testConfig(),
				txRepo:       txmocks.NewTxRepository(t),
				adoptionRepo: adoptionmocks.NewAdoptionRepository(t),
				petRepo:      petmocks.NewPetRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			adoptionID: 7,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.adoptionRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(7)).
					Return(&model.AdoptionEntity{
						ID:     7,
						PetID:  2,
						Status: constant.AdoptionStatusPending,
					}, nil).
					Once()

				f.adoptionRepo.
					On("UpdateStatusTx", mock.Anything, tx, uint64(7), constant.AdoptionStatusCancelled, (*time.Time)(nil)).
					Return(nil).
					Once()

				f.petRepo.
					On("UpdateAdoptionStatusTx", mock.Anything, tx, uint64(2), constant.PetStatusAvailable).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: completed application cannot be cancelled",
			fields: fields{
				config:       testConfig(),
				txRepo:       txmocks.NewTxRepository(t),
				adoptionRepo: adoptionmocks.NewAdoptionRepository(t),
				petRepo:      petmocks.NewPetRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			adoptionID: 7,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.adoptionRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(7)).
					Return(&model.AdoptionEntity{
						ID:     7,
						PetID:  2,
						Status: constant.AdoptionStatusCompleted,
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidAdoptionStatus,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appadoption.NewAdoptionApp(tt.fields.config, tt.fields.txRepo, tt.fields.adoptionRepo, tt.fields.petRepo, tt.fields.userRepo, nil)

			err := app.Cancel(context.Background(), tt.adoptionID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Cancel() error = %v, wantErr %v", err, tt.wantErr)
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

func TestAdoptionApp_Expire(t *testing.T) {
	type fields struct {
		config       *config.Config
		txRepo       *txmocks.TxRepository
		adoptionRepo *adoptionmocks.AdoptionRepository
		petRepo      *petmocks.PetRepository
		userRepo     *usermocks.UserRepository
	}
	tests := []struct {
		name       string
		fields     fields
		adoptionID uint64
		mockCall   func(f fields)
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: stale pending application expires",
			fields: fields{
				config:       testConfig(),
				txRepo:       txmocks.NewTxRepository(t),
				adoptionRepo: adoptionmocks.NewAdoptionRepository(t),
				petRepo:      petmocks.NewPetRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			adoptionID: 7,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.adoptionRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(7)).
					Return(&model.AdoptionEntity{
						ID:     7,
						PetID:  2,
						Status: constant.AdoptionStatusPending,
					}, nil).
					Once()

				f.adoptionRepo.
					On("UpdateStatusTx", mock.Anything, tx, uint64(7), constant.AdoptionStatusCancelled, (*time.Time)(nil)).
					Return(nil).
					Once()

				f.petRepo.
					On("UpdateAdoptionStatusTx", mock.Anything, tx, uint64(2), constant.PetStatusAvailable).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: already resolved application reports invalid status",
			fields: fields{
				config:       testConfig(),
				txRepo:       txmocks.NewTxRepository(t),
				adoptionRepo: adoptionmocks.NewAdoptionRepository(t),
				petRepo:      petmocks.NewPetRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			adoptionID: 7,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.adoptionRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(7)).
					Return(&model.AdoptionEntity{
						ID:     7,
						PetID:  2,
						Status: constant.AdoptionStatusCompleted,
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidAdoptionStatus,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appadoption.NewAdoptionApp(tt.fields.config, tt.fields.txRepo, tt.fields.adoptionRepo, tt.fields.petRepo, tt.fields.userRepo, nil)

			err := app.Expire(context.Background(), tt.adoptionID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expire() error = %v, wantErr %v", err, tt.wantErr)
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

func TestAdoptionApp_GetAdoption(t *testing.T) {
	type fields struct {
		config       *config.Config
		txRepo       *txmocks.TxRepository
		adoptionRepo *adoptionmocks.AdoptionRepository
		petRepo      *petmocks.PetRepository
		userRepo     *usermocks.UserRepository
	}
	tests := []struct {
		name       string
		fields     fields
		adoptionID uint64
		mockCall   func(f fields)
		want       *model.AdoptionEntity
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: get adoption",
			fields: fields{
				config:       testConfig(),
				txRepo:       txmocks.NewTxRepository(t),
				adoptionRepo: adoptionmocks.NewAdoptionRepository(t),
				petRepo:      petmocks.NewPetRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			adoptionID: 7,
			mockCall: func(f fields) {
				f.adoptionRepo.
					On("GetByID", mock.Anything, uint64(7)).
					Return(&model.AdoptionEntity{
						ID:     7,
						UserID: 1,
						PetID:  2,
						Status: constant.AdoptionStatusPending,
					}, nil).
					Once()
			},
			want: &model.AdoptionEntity{
				ID:     7,
				UserID: 1,
				PetID:  2,
				Status: constant.AdoptionStatusPending,
			},
			wantErr: false,
		},
		{
			name: "error: adoption not found",
			fields: fields{
				config:       testConfig(),
				txRepo:       txmocks.NewTxRepository(t),
				adoptionRepo: adoptionmocks.NewAdoptionRepository(t),
				petRepo:      petmocks.NewPetRepository(t),
				userRepo:     usermocks.NewUserRepository(t),
			},
			adoptionID: 99,
			mockCall: func(f fields) {
				f.adoptionRepo.
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
			app := appadoption.NewAdoptionApp(tt.fields.config, tt.fields.txRepo, tt.fields.adoptionRepo, tt.fields.petRepo, tt.fields.userRepo, nil)

			got, err := app.GetAdoption(context.Background(), tt.adoptionID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetAdoption() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("GetAdoption() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
