package visit

import (
	"context"

	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/model"
	userrepo "github.com/petlove/backend/repository/user"
	visitrepo "github.com/petlove/backend/repository/visit"
	"github.com/petlove/backend/utils/errors"
	"github.com/petlove/backend/utils/logger"
	"go.uber.org/zap"
)

type VisitApp interface {
	RecordVisit(ctx context.Context, req *model.RecordVisitRequest) (*model.VisitEntity, error)
	GetVisit(ctx context.Context, visitID uint64) (*model.VisitEntity, error)
	ListVisits(ctx context.Context, filter *model.VisitFilter) ([]model.VisitEntity, error)
}

type visitAppImpl struct {
	visitRepo visitrepo.VisitRepository
	userRepo  userrepo.UserRepository
}

func NewVisitApp(visitRepo visitrepo.VisitRepository, userRepo userrepo.UserRepository) VisitApp {
	return &visitAppImpl{
		visitRepo: visitRepo,
		userRepo:  userRepo,
	}
}

func (s *visitAppImpl) RecordVisit(ctx context.Context, req *model.RecordVisitRequest) (*model.VisitEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: req.UserID})
	if err != nil {
		logger.Error("[RecordVisit] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	entity := &model.VisitEntity{
		UserID:           req.UserID,
		VisitDate:        req.VisitDate,
		VisitType:        req.VisitType,
		Reason:           req.Reason,
		Diagnosis:        req.Diagnosis,
		Treatment:        req.Treatment,
		Cost:             req.Cost,
		Veterinarian:     req.Veterinarian,
		FollowUpRequired: req.FollowUpRequired,
	}

	entity, err = s.visitRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[RecordVisit] err visitRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *visitAppImpl) GetVisit(ctx context.Context, visitID uint64) (*model.VisitEntity, error) {
	entity, err := s.visitRepo.GetByID(ctx, visitID)
	if err != nil {
		logger.Error("[GetVisit] err visitRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *visitAppImpl) ListVisits(ctx context.Context, filter *model.VisitFilter) ([]model.VisitEntity, error) {
	visits, err := s.visitRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListVisits] err visitRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return visits, nil
}
