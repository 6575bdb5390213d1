package pet

import (
	"context"
	"encoding/json"

	"github.com/petlove/backend/cmd/config"
	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/model"
	petrepo "github.com/petlove/backend/repository/pet"
	redisrepo "github.com/petlove/backend/repository/redis"
	"github.com/petlove/backend/utils/errors"
	"github.com/petlove/backend/utils/logger"
	"go.uber.org/zap"
)

type PetApp interface {
	ListPets(ctx context.Context, filter *model.PetFilter) (*model.PetListResponse, error)
	GetPet(ctx context.Context, id uint64) (*model.PetEntity, error)
	CreatePet(ctx context.Context, req *model.CreatePetRequest) (*model.PetEntity, error)
	UpdatePet(ctx context.Context, id uint64, req *model.UpdatePetRequest) (*model.PetEntity, error)
}

type petAppImpl struct {
	config    *config.Config
	petRepo   petrepo.PetRepository
	redisRepo redisrepo.Repository
}

func NewPetApp(config *config.Config, petRepo petrepo.PetRepository, redisRepo redisrepo.Repository) PetApp {
	return &petAppImpl{
		config:    config,
		petRepo:   petRepo,
		redisRepo: redisRepo,
	}
}

// ListPets serves the catalog through a read-aside cache. Cache failures are
// logged and the request falls through to the database.
func (s *petAppImpl) ListPets(ctx context.Context, filter *model.PetFilter) (*model.PetListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 10
	}

	cacheKey := redisrepo.PetListKey(filter)
	if cached, err := s.redisRepo.Get(ctx, cacheKey); err != nil {
		logger.Warn("[ListPets] cache get", zap.String("error", err.Error()))
	} else if cached != "" {
		var resp model.PetListResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
		logger.Warn("[ListPets] stale cache entry", zap.String("key", cacheKey))
	}

	items, total, err := s.petRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListPets] err petRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := &model.PetListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}

	if body, err := json.Marshal(resp); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, cacheKey, string(body), s.config.Cache.PetListTTL); err != nil {
			logger.Warn("[ListPets] cache set", zap.String("error", err.Error()))
		}
	}

	return resp, nil
}

func (s *petAppImpl) GetPet(ctx context.Context, id uint64) (*model.PetEntity, error) {
	pet, err := s.petRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetPet] err petRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if pet == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return pet, nil
}

func (s *petAppImpl) CreatePet(ctx context.Context, req *model.CreatePetRequest) (*model.PetEntity, error) {
	entity := &model.PetEntity{
		Name:           req.Name,
		Species:        req.Species,
		Breed:          req.Breed,
		Age:            req.Age,
		Color:          req.Color,
		Size:           req.Size,
		Gender:         req.Gender,
		Description:    req.Description,
		AdoptionStatus: constant.PetStatusAvailable,
		Price:          req.Price,
		Images:         req.Images,
	}

	entity, err := s.petRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreatePet] err petRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.invalidateListCache(ctx)
	return entity, nil
}

func (s *petAppImpl) UpdatePet(ctx context.Context, id uint64, req *model.UpdatePetRequest) (*model.PetEntity, error) {
	entity, err := s.petRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdatePet] err petRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	entity.Name = req.Name
	entity.Species = req.Species
	entity.Breed = req.Breed
	entity.Age = req.Age
	entity.Color = req.Color
	entity.Size = req.Size
	entity.Gender = req.Gender
	entity.Description = req.Description
	entity.Price = req.Price
	entity.Images = req.Images

	if err := s.petRepo.Update(ctx, entity); err != nil {
		logger.Error("[UpdatePet] err petRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.invalidateListCache(ctx)
	return entity, nil
}

func (s *petAppImpl) invalidateListCache(ctx context.Context) {
	if err := s.redisRepo.DeleteByPattern(ctx, redisrepo.PetListPattern); err != nil {
		logger.Warn("[invalidateListCache] cache delete", zap.String("error", err.Error()))
	}
}
