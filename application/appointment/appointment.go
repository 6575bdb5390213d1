package appointment

import (
	"context"
	"time"

	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/model"
	appointmentrepo "github.com/petlove/backend/repository/appointment"
	userrepo "github.com/petlove/backend/repository/user"
	"github.com/petlove/backend/utils/errors"
	"github.com/petlove/backend/utils/logger"
	"go.uber.org/zap"
)

type AppointmentApp interface {
	Schedule(ctx context.Context, req *model.ScheduleAppointmentRequest) (*model.AppointmentEntity, error)
	GetAppointment(ctx context.Context, appointmentID uint64) (*model.AppointmentEntity, error)
	ListAppointments(ctx context.Context, filter *model.AppointmentFilter) ([]model.AppointmentEntity, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID uint64, status constant.AppointmentStatus) error
}

type appointmentAppImpl struct {
	appointmentRepo appointmentrepo.AppointmentRepository
	userRepo        userrepo.UserRepository
}

func NewAppointmentApp(appointmentRepo appointmentrepo.AppointmentRepository, userRepo userrepo.UserRepository) AppointmentApp {
	return &appointmentAppImpl{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
	}
}

func (s *appointmentAppImpl) Schedule(ctx context.Context, req *model.ScheduleAppointmentRequest) (*model.AppointmentEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: req.UserID})
	if err != nil {
		logger.Error("[Schedule] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	if !req.AppointmentDate.After(time.Now()) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	entity := &model.AppointmentEntity{
		UserID:          req.UserID,
		AppointmentType: req.AppointmentType,
		AppointmentDate: req.AppointmentDate,
		DurationMinutes: req.DurationMinutes,
		Status:          constant.AppointmentStatusScheduled,
		Notes:           req.Notes,
		Veterinarian:    req.Veterinarian,
	}

	entity, err = s.appointmentRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Schedule] err appointmentRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *appointmentAppImpl) GetAppointment(ctx context.Context, appointmentID uint64) (*model.AppointmentEntity, error) {
	entity, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		logger.Error("[GetAppointment] err appointmentRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *appointmentAppImpl) ListAppointments(ctx context.Context, filter *model.AppointmentFilter) ([]model.AppointmentEntity, error) {
	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListAppointments] err appointmentRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return appointments, nil
}

// UpdateAppointmentStatus moves a scheduled appointment to completed or
// cancelled. Finished appointments stay as they are.
func (s *appointmentAppImpl) UpdateAppointmentStatus(ctx context.Context, appointmentID uint64, status constant.AppointmentStatus) error {
	entity, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		logger.Error("[UpdateAppointmentStatus] err appointmentRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if entity.Status != constant.AppointmentStatusScheduled || status == constant.AppointmentStatusScheduled {
		return errors.SetCustomError(constant.ErrInvalidAppointmentStatus)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, status); err != nil {
		logger.Error("[UpdateAppointmentStatus] err appointmentRepo.UpdateStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
