package adoption

import (
	"context"
	"time"

	"github.com/petlove/backend/cmd/config"
	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/model"
	adoptionrepo "github.com/petlove/backend/repository/adoption"
	petrepo "github.com/petlove/backend/repository/pet"
	txrepo "github.com/petlove/backend/repository/tx"
	userrepo "github.com/petlove/backend/repository/user"
	"github.com/petlove/backend/thirdparty/rabbitmq"
	"github.com/petlove/backend/utils/errors"
	"github.com/petlove/backend/utils/logger"
	"go.uber.org/zap"
)

type AdoptionApp interface {
	Apply(ctx context.Context, req *model.ApplyAdoptionRequest) (*model.ApplyAdoptionResponse, error)
	GetAdoption(ctx context.Context, adoptionID uint64) (*model.AdoptionEntity, error)
	ListAdoptions(ctx context.Context, filter *model.AdoptionFilter) ([]model.AdoptionEntity, error)
	Complete(ctx context.Context, adoptionID uint64) error
	Cancel(ctx context.Context, adoptionID uint64) error
	Expire(ctx context.Context, adoptionID uint64) error
}

type adoptionAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	adoptionRepo adoptionrepo.AdoptionRepository
	petRepo      petrepo.PetRepository
	userRepo     userrepo.UserRepository
	publisher    *rabbitmq.Publisher
}

func NewAdoptionApp(config *config.Config, txRepo txrepo.TxRepository, adoptionRepo adoptionrepo.AdoptionRepository, petRepo petrepo.PetRepository, userRepo userrepo.UserRepository, publisher *rabbitmq.Publisher) AdoptionApp {
	return &adoptionAppImpl{
		config:       config,
		txRepo:       txRepo,
		adoptionRepo: adoptionRepo,
		petRepo:      petRepo,
		userRepo:     userRepo,
		publisher:    publisher,
	}
}

// Apply opens an adoption application. The pet row is locked for the whole
// transaction, so two applicants cannot reserve the same pet.
func (s *adoptionAppImpl) Apply(ctx context.Context, req *model.ApplyAdoptionRequest) (*model.ApplyAdoptionResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: req.UserID})
	if err != nil {
		logger.Error("[Apply] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Apply] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	pet, err := s.petRepo.GetByIDTx(ctx, tx, req.PetID)
	if err != nil {
		logger.Error("[Apply] get pet", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if pet == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if pet.AdoptionStatus != constant.PetStatusAvailable {
		return nil, errors.SetCustomError(constant.ErrPetUnavailable)
	}

	if err := s.petRepo.UpdateAdoptionStatusTx(ctx, tx, pet.ID, constant.PetStatusPending); err != nil {
		logger.Error("[Apply] reserve pet", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	expiresAt := time.Now().Add(s.config.Adoption.PendingExpiration)
	adoptionID, err := s.adoptionRepo.InsertAdoptionTx(ctx, tx, &model.AdoptionEntity{
		UserID:      req.UserID,
		PetID:       req.PetID,
		Status:      constant.AdoptionStatusPending,
		AdoptionFee: pet.Price,
		Notes:       req.Notes,
		ExpiresAt:   expiresAt,
	})
	if err != nil {
		logger.Error("[Apply] insert adoption", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Apply] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	// Publish adoption expiration message to RabbitMQ
	if s.publisher != nil {
		msg := rabbitmq.AdoptionExpirationMessage{
			AdoptionID: adoptionID,
			PetID:      req.PetID,
			UserID:     req.UserID,
			ExpiresAt:  expiresAt,
		}
		if err := s.publisher.PublishAdoptionExpiration(msg); err != nil {
			logger.Error("[Apply] publish adoption expiration", zap.String("error", err.Error()))
		}
	}

	return &model.ApplyAdoptionResponse{
		AdoptionID:  adoptionID,
		AdoptionFee: pet.Price,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *adoptionAppImpl) GetAdoption(ctx context.Context, adoptionID uint64) (*model.AdoptionEntity, error) {
	entity, err := s.adoptionRepo.GetByID(ctx, adoptionID)
	if err != nil {
		logger.Error("[GetAdoption] err adoptionRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *adoptionAppImpl) ListAdoptions(ctx context.Context, filter *model.AdoptionFilter) ([]model.AdoptionEntity, error) {
	adoptions, err := s.adoptionRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListAdoptions] err adoptionRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return adoptions, nil
}

// Complete finalizes a pending application: the adoption records its date and
// the pet becomes adopted.
func (s *adoptionAppImpl) Complete(ctx context.Context, adoptionID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Complete] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	adoption, err := s.adoptionRepo.GetByIDTx(ctx, tx, adoptionID)
	if err != nil {
		logger.Error("[Complete] get adoption", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if adoption == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if adoption.Status != constant.AdoptionStatusPending {
		return errors.SetCustomError(constant.ErrInvalidAdoptionStatus)
	}

	now := time.Now()
	if err := s.adoptionRepo.UpdateStatusTx(ctx, tx, adoptionID, constant.AdoptionStatusCompleted, &now); err != nil {
		logger.Error("[Complete] update adoption", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.petRepo.UpdateAdoptionStatusTx(ctx, tx, adoption.PetID, constant.PetStatusAdopted); err != nil {
		logger.Error("[Complete] update pet", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Complete] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// Cancel withdraws a pending application and releases the pet back to available.
func (s *adoptionAppImpl) Cancel(ctx context.Context, adoptionID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Cancel] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	adoption, err := s.adoptionRepo.GetByIDTx(ctx, tx, adoptionID)
	if err != nil {
		logger.Error("[Cancel] get adoption", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if adoption == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if adoption.Status != constant.AdoptionStatusPending {
		return errors.SetCustomError(constant.ErrInvalidAdoptionStatus)
	}

	if err := s.adoptionRepo.UpdateStatusTx(ctx, tx, adoptionID, constant.AdoptionStatusCancelled, nil); err != nil {
		logger.Error("[Cancel] update adoption", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.petRepo.UpdateAdoptionStatusTx(ctx, tx, adoption.PetID, constant.PetStatusAvailable); err != nil {
		logger.Error("[Cancel] update pet", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Cancel] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// Expire is called by the expiration worker once the pending window has
// passed. An application that was completed or cancelled in the meantime is
// reported as ErrInvalidAdoptionStatus, which the worker treats as settled.
func (s *adoptionAppImpl) Expire(ctx context.Context, adoptionID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Expire] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	adoption, err := s.adoptionRepo.GetByIDTx(ctx, tx, adoptionID)
	if err != nil {
		logger.Error("[Expire] get adoption", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if adoption == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if adoption.Status != constant.AdoptionStatusPending {
		return errors.SetCustomError(constant.ErrInvalidAdoptionStatus)
	}

	if err := s.adoptionRepo.UpdateStatusTx(ctx, tx, adoptionID, constant.AdoptionStatusCancelled, nil); err != nil {
		logger.Error("[Expire] update adoption", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.petRepo.UpdateAdoptionStatusTx(ctx, tx, adoption.PetID, constant.PetStatusAvailable); err != nil {
		logger.Error("[Expire] update pet", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Expire] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	logger.Info("[Expire] adoption expired", zap.Uint64("adoption_id", adoptionID), zap.Uint64("pet_id", adoption.PetID))
	return nil
}
