package user

import (
	"context"

	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/model"
	userrepo "github.com/petlove/backend/repository/user"
	"github.com/petlove/backend/utils/errors"
	"github.com/petlove/backend/utils/logger"
	"github.com/petlove/backend/utils/password"
	"go.uber.org/zap"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.UserEntity, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.UserResponse, error)
	ListUsers(ctx context.Context) ([]model.UserEntity, error)
}

type UserAppImpl struct {
	userRepo userrepo.UserRepository
}

func NewUserApp(userRepo userrepo.UserRepository) UserApp {
	return &UserAppImpl{
		userRepo: userRepo,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserEntity, error) {
	// Check if user exists by email
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrEmailExists)
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		logger.Error("[Register] err password.Hash", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: hashed,
	}

	// Save to database. The unique index still guards the window between the
	// existence check and the insert, so a concurrent duplicate comes back as
	// ErrEmailExists rather than a server error.
	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		if errors.IsType(err, constant.ErrEmailExists) {
			return nil, errors.SetCustomError(constant.ErrEmailExists)
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return userEntity, nil
}

// Login verifies the submitted credentials. An unknown email and a wrong
// password produce the same error so callers cannot probe which addresses
// are registered.
func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.UserResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if !password.Verify(req.Password, user.Password) {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	return &model.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}, nil
}

func (s *UserAppImpl) ListUsers(ctx context.Context) ([]model.UserEntity, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return users, nil
}
