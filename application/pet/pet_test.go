package pet_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	apppet "github.com/petlove/backend/application/pet"
	"github.com/petlove/backend/cmd/config"
	"github.com/petlove/backend/constant"
	petmocks "github.com/petlove/backend/mocks/repository/pet"
	redismocks "github.com/petlove/backend/mocks/repository/redis"
	"github.com/petlove/backend/model"
	redisrepo "github.com/petlove/backend/repository/redis"
	cerr "github.com/petlove/backend/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			PetListTTL: time.Minute,
		},
	}
}

func TestPetApp_ListPets(t *testing.T) {
	type fields struct {
		config    *config.Config
		petRepo   *petmocks.PetRepository
		redisRepo *redismocks.RedisRepository
	}
	type args struct {
		ctx    context.Context
		filter *model.PetFilter
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.PetListResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: cache hit skips the database",
			fields: fields{
				config:    testConfig(),
				petRepo:   petmocks.NewPetRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				filter: &model.PetFilter{Species: "dog", Page: 1, PerPage: 10},
			},
			mockCall: func(f fields) {
				// No petRepo expectations: a hit must be served from the cache
				cached, _ := json.Marshal(&model.PetListResponse{
					Items:      []model.PetEntity{{ID: 1, Name: "Bella", Species: "dog"}},
					TotalCount: 1,
					Page:       1,
					PerPage:    10,
				})
				key := redisrepo.PetListKey(&model.PetFilter{Species: "dog", Page: 1, PerPage: 10})
				f.redisRepo.
					On("Get", mock.Anything, key).
					Return(string(cached), nil).
					Once()
			},
			want: &model.PetListResponse{
				Items:      []model.PetEntity{{ID: 1, Name: "Bella", Species: "dog"}},
				TotalCount: 1,
				Page:       1,
				PerPage:    10,
			},
			wantErr: false,
		},
		{
			name: "success: cache miss falls through and repopulates",
			fields: fields{
				config:    testConfig(),
				petRepo:   petmocks.NewPetRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				filter: &model.PetFilter{Species: "cat"},
			},
			mockCall: func(f fields) {
				// Page and per-page default to 1 and 10 before the key is built
				key := redisrepo.PetListKey(&model.PetFilter{Species: "cat", Page: 1, PerPage: 10})
				f.redisRepo.
					On("Get", mock.Anything, key).
					Return("", nil).
					Once()

				f.petRepo.
					On("List", mock.Anything, mock.MatchedBy(func(filter *model.PetFilter) bool {
						return filter.Species == "cat" && filter.Page == 1 && filter.PerPage == 10
					})).
					Return([]model.PetEntity{{ID: 2, Name: "Milo", Species: "cat"}}, int64(1), nil).
					Once()

				f.redisRepo.
					On("SetWithTTL", mock.Anything, key, mock.Anything, time.Minute).
					Return(nil).
					Once()
			},
			want: &model.PetListResponse{
				Items:      []model.PetEntity{{ID: 2, Name: "Milo", Species: "cat"}},
				TotalCount: 1,
				Page:       1,
				PerPage:    10,
			},
			wantErr: false,
		},
		{
			name: "success: cache errors do not fail the request",
			fields: fields{
				config:    testConfig(),
				petRepo:   petmocks.NewPetRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				filter: &model.PetFilter{Page: 1, PerPage: 10},
			},
			mockCall: func(f fields) {
				f.redisRepo.
					On("Get", mock.Anything, mock.Anything).
					Return("", errors.New("connection refused")).
					Once()

				f.petRepo.
					On("List", mock.Anything, mock.Anything).
					Return([]model.PetEntity{}, int64(0), nil).
					Once()

				f.redisRepo.
					On("SetWithTTL", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("connection refused")).
					Once()
			},
			want: &model.PetListResponse{
				Items:      []model.PetEntity{},
				TotalCount: 0,
				Page:       1,
				PerPage:    10,
			},
			wantErr: false,
		},
		{
			name: "error: list fails",
			fields: fields{
				config:    testConfig(),
				petRepo:   petmocks.NewPetRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				filter: &model.PetFilter{Page: 1, PerPage: 10},
			},
			mockCall: func(f fields) {
				f.redisRepo.
					On("Get", mock.Anything, mock.Anything).
					Return("", nil).
					Once()

				f.petRepo.
					On("List", mock.Anything, mock.Anything).
					Return(nil, int64(0), errors.New("connection refused")).
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
			app := apppet.NewPetApp(tt.fields.config, tt.fields.petRepo, tt.fields.redisRepo)

			got, err := app.ListPets(tt.args.ctx, tt.args.filter)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListPets() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("ListPets() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPetApp_GetPet(t *testing.T) {
	type fields struct {
		config    *config.Config
		petRepo   *petmocks.PetRepository
		redisRepo *redismocks.RedisRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		mockCall func(f fields)
		want     *model.PetEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: get pet",
			fields: fields{
				config:    testConfig(),
				petRepo:   petmocks.NewPetRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			id: 1,
			mockCall: func(f fields) {
				f.petRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(&model.PetEntity{
						ID:             1,
						Name:           "Bella",
						Species:        "dog",
						AdoptionStatus: constant.PetStatusAvailable,
					}, nil).
					Once()
			},
			want: &model.PetEntity{
				ID:             1,
				Name:           "Bella",
				Species:        "dog",
				AdoptionStatus: constant.PetStatusAvailable,
			},
			wantErr: false,
		},
		{
			name: "error: pet not found",
			fields: fields{
				config:    testConfig(),
				petRepo:   petmocks.NewPetRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			id: 99,
			mockCall: func(f fields) {
				f.petRepo.
					On("GetByID", mock.Anything, uint64(99)).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: lookup fails",
			fields: fields{
				config:    testConfig(),
				petRepo:   petmocks.NewPetRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			id: 1,
			mockCall: func(f fields) {
				f.petRepo.
					On("GetByID", mock.Anything, uint64(1)).
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
			app := apppet.NewPetApp(tt.fields.config, tt.fields.petRepo, tt.fields.redisRepo)

			got, err := app.GetPet(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetPet() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("GetPet() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPetApp_CreatePet(t *testing.T) {
	type fields struct {
		config    *config.Config
		petRepo   *petmocks.PetRepository
		redisRepo *redismocks.RedisRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.CreatePetRequest
		mockCall func(f fields)
		want     *model.PetEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: create pet as available and drop cached lists",
			fields: fields{
				config:    testConfig(),
				petRepo:   petmocks.NewPetRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			req: &model.CreatePetRequest{
				Name:    "Bella",
				Species: "dog",
				Breed:   "Labrador",
				Age:     2,
				Price:   150,
			},
			mockCall: func(f fields) {
				f.petRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.PetEntity) bool {
						return ent.Name == "Bella" &&
							ent.AdoptionStatus == constant.PetStatusAvailable
					})).
					Return(&model.PetEntity{
						ID:             1,
						Name:           "Bella",
						Species:        "dog",
						Breed:          "Labrador",
						Age:            2,
						AdoptionStatus: constant.PetStatusAvailable,
						Price:          150,
					}, nil).
					Once()

				f.redisRepo.
					On("DeleteByPattern", mock.Anything, redisrepo.PetListPattern).
					Return(nil).
					Once()
			},
			want: &model.PetEntity{
				ID:             1,
				Name:           "Bella",
				Species:        "dog",
				Breed:          "Labrador",
				Age:            2,
				AdoptionStatus: constant.PetStatusAvailable,
				Price:          150,
			},
			wantErr: false,
		},
		{
			name: "error: insert fails",
			fields: fields{
				config:    testConfig(),
				petRepo:   petmocks.NewPetRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			req: &model.CreatePetRequest{
				Name:    "Bella",
				Species: "dog",
			},
			mockCall: func(f fields) {
				f.petRepo.
					On("Create", mock.Anything, mock.Anything).
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
			app := apppet.NewPetApp(tt.fields.config, tt.fields.petRepo, tt.fields.redisRepo)

			got, err := app.CreatePet(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreatePet() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("CreatePet() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPetApp_UpdatePet(t *testing.T) {
	type fields struct {
		config    *config.Config
		petRepo   *petmocks.PetRepository
		redisRepo *redismocks.RedisRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		req      *model.UpdatePetRequest
		mockCall func(f fields)
		want     *model.PetEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: update keeps the adoption status",
			fields: fields{
				config:    testConfig(),
				petRepo:   petmocks.NewPetRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			id: 1,
			req: &model.UpdatePetRequest{
				Name:    "Bella",
				Species: "dog",
				Breed:   "Labrador",
				Age:     3,
				Price:   120,
			},
			mockCall: func(f fields) {
				f.petRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(&model.PetEntity{
						ID:             1,
						Name:           "Bella",
						Species:        "dog",
						Breed:          "Labrador",
						Age:            2,
						AdoptionStatus: constant.PetStatusPending,
						Price:          150,
					}, nil).
					Once()

				f.petRepo.
					On("Update", mock.Anything, mock.MatchedBy(func(ent *model.PetEntity) bool {
						return ent.ID == 1 &&
							ent.Age == 3 &&
							ent.Price == 120 &&
							ent.AdoptionStatus == constant.PetStatusPending
					})).
					Return(nil).
					Once()

				f.redisRepo.
					On("DeleteByPattern", mock.Anything, redisrepo.PetListPattern).
					Return(nil).
					Once()
			},
			want: &model.PetEntity{
				ID:             1,
				Name:           "Bella",
				Species:        "dog",
				Breed:          "Labrador",
				Age:            3,
				AdoptionStatus: constant.PetStatusPending,
				Price:          120,
			},
			wantErr: false,
		},
		{
			name: "error: pet not found",
			fields: fields{
				config:    testConfig(),
				petRepo:   petmocks.NewPetRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			id: 99,
			req: &model.UpdatePetRequest{
				Name:    "Bella",
				Species: "dog",
			},
			mockCall: func(f fields) {
				f.petRepo.
					On("GetByID", mock.Anything, uint64(99)).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: update fails",
			fields: fields{
				config:    testConfig(),
				petRepo:   petmocks.NewPetRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			id: 1,
			req: &model.UpdatePetRequest{
				Name:    "Bella",
				Species: "dog",
			},
			mockCall: func(f fields) {
				f.petRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(&model.PetEntity{ID: 1, Name: "Bella", Species: "dog"}, nil).
					Once()

				f.petRepo.
					On("Update", mock.Anything, mock.Anything).
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
			app := apppet.NewPetApp(tt.fields.config, tt.fields.petRepo, tt.fields.redisRepo)

			got, err := app.UpdatePet(context.Background(), tt.id, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdatePet() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("UpdatePet() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
