package service

import (
	"context"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	logger.Debug("+ CreateUser", "name", name, "email", email)

	user := &domain.User{Name: name, Email: email}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id int64, patch UserPatch) (*domain.User, error) {
	logger.Debug("+ UpdateUser", "user_id", id)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil && *patch.Email != user.Email {
		user.Email = *patch.Email
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	logger.Debug("+ DeleteUser", "user_id", id)

	return s.userRepo.Delete(ctx, id)
}
