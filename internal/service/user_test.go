package service

import (
	"context"
	"testing"

	"gearshare-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewUserService(userRepo)

	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 1
	}).Return(nil)

	user, err := svc.CreateUser(context.Background(), "Olga", "olga@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Olga", user.Name)
	assert.Equal(t, "olga@example.com", user.Email)
}

func TestGetUserNotFound(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewUserService(userRepo)

	userRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.NewNotFound("User", 404))

	_, err := svc.GetUser(context.Background(), 404)

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestUpdateUserPartial(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewUserService(userRepo)
	existing := &domain.User{ID: 1, Name: "Olga", Email: "olga@example.com"}

	userRepo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	userRepo.On("Update", mock.Anything, existing).Return(nil)

	name := "Olga K"
	updated, err := svc.UpdateUser(context.Background(), existing.ID, UserPatch{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Olga K", updated.Name)
	assert.Equal(t, "olga@example.com", updated.Email, "email untouched when not patched")
}

func TestDeleteUser(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewUserService(userRepo)

	userRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

	require.NoError(t, svc.DeleteUser(context.Background(), 1))
	userRepo.AssertExpectations(t)
}
