package services

import (
	"context"
	"testing"

	"travel-pack/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Delete(t *testing.T) {
	t.Run("regular user is deleted", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint64(2)).Return(CreateTestUser(2, "bob", false), nil)
		mockRepo.On("Delete", mock.Anything, uint64(2)).Return(nil)

		service := NewUserService(mockRepo)

		assert.NoError(t, service.Delete(context.Background(), 2))
		mockRepo.AssertExpectations(t)
	})

	t.Run("admin user is refused", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint64(1)).Return(CreateTestUser(1, "root", true), nil)

		service := NewUserService(mockRepo)

		assert.ErrorIs(t, service.Delete(context.Background(), 1), ErrCannotDeleteAdmin)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing user reports not found", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint64(9)).Return(nil, nil)

		service := NewUserService(mockRepo)

		assert.ErrorIs(t, service.Delete(context.Background(), 9), ErrUserNotFound)
	})
}

func TestUserService_UpdateProfile_HashesPassword(t *testing.T) {
	mockRepo := new(mocks.MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint64(2)).Return(CreateTestUser(2, "bob", false), nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	service := NewUserService(mockRepo)

	updated, err := service.UpdateProfile(context.Background(), 2, "bobby", "", "hunter22")

	assert.NoError(t, err)
	assert.Equal(t, "bobby", updated.Username)
	assert.Equal(t, "bob@test.local", updated.Email)
	assert.NotEqual(t, "hunter22", updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("hunter22")))
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateProfile_KeepsPasswordWhenBlank(t *testing.T) {
	existing := CreateTestUser(2, "bob", false)
	oldHash := existing.Password

	mockRepo := new(mocks.MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint64(2)).Return(existing, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	service := NewUserService(mockRepo)

	updated, err := service.UpdateProfile(context.Background(), 2, "", "bob@new.local", "")

	assert.NoError(t, err)
	assert.Equal(t, "bob@new.local", updated.Email)
	assert.Equal(t, oldHash, updated.Password)
}

func TestUserService_Update_AdminFlag(t *testing.T) {
	mockRepo := new(mocks.MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint64(2)).Return(CreateTestUser(2, "bob", false), nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	service := NewUserService(mockRepo)

	isAdmin := true
	updated, err := service.Update(context.Background(), 2, "", "", &isAdmin)

	assert.NoError(t, err)
	assert.True(t, updated.IsAdmin)
	mockRepo.AssertExpectations(t)
}
