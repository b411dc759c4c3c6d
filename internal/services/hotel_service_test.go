package services

import (
	"context"
	"testing"

	"travel-pack/internal/domain"
	"travel-pack/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHotelService_Update_PartialKeepsOldValues(t *testing.T) {
	existing := CreateTestHotel(1, 3, "Seaside Resort")

	mockRepo := new(mocks.MockHotelRepository)
	mockRepo.On("FindByID", mock.Anything, uint64(1)).Return(existing, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Hotel")).Return(nil).Run(func(args mock.Arguments) {
		saved := args.Get(1).(*domain.Hotel)
		assert.Equal(t, "Hilltop Lodge", saved.Name)
		// untouched fields keep what was stored
		assert.Equal(t, "1 Test Street", saved.Address)
		assert.Equal(t, uint64(3), saved.PlaceID)
		assert.Equal(t, 4.0, saved.Rating)
		assert.Equal(t, 120.0, saved.PricePerNight)
		assert.Equal(t, []string{"wifi", "pool"}, saved.Facilities)
	})

	service := NewHotelService(mockRepo)

	updated, err := service.Update(context.Background(), 1, &domain.Hotel{Name: "Hilltop Lodge"})

	assert.NoError(t, err)
	assert.Equal(t, "Hilltop Lodge", updated.Name)
	mockRepo.AssertExpectations(t)
}

func TestHotelService_Update_NotFound(t *testing.T) {
	mockRepo := new(mocks.MockHotelRepository)
	mockRepo.On("FindByID", mock.Anything, uint64(9)).Return(nil, nil)

	service := NewHotelService(mockRepo)

	_, err := service.Update(context.Background(), 9, &domain.Hotel{Name: "Ghost Inn"})

	assert.ErrorIs(t, err, ErrHotelNotFound)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestHotelService_Delete(t *testing.T) {
	t.Run("existing hotel is removed", func(t *testing.T) {
		mockRepo := new(mocks.MockHotelRepository)
		mockRepo.On("FindByID", mock.Anything, uint64(1)).Return(CreateTestHotel(1, 3, "Seaside Resort"), nil)
		mockRepo.On("Delete", mock.Anything, uint64(1)).Return(nil)

		service := NewHotelService(mockRepo)

		assert.NoError(t, service.Delete(context.Background(), 1))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing hotel reports not found", func(t *testing.T) {
		mockRepo := new(mocks.MockHotelRepository)
		mockRepo.On("FindByID", mock.Anything, uint64(2)).Return(nil, nil)

		service := NewHotelService(mockRepo)

		assert.ErrorIs(t, service.Delete(context.Background(), 2), ErrHotelNotFound)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestHotelService_List(t *testing.T) {
	mockRepo := new(mocks.MockHotelRepository)
	mockRepo.On("FindPage", mock.Anything, 0, 4).Return([]domain.Hotel{*CreateTestHotel(1, 3, "Seaside Resort")}, nil)
	mockRepo.On("Count", mock.Anything).Return(int64(5), nil)

	service := NewHotelService(mockRepo)

	result, err := service.List(context.Background(), 1, 4)

	assert.NoError(t, err)
	assert.Len(t, result.Hotels, 1)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, 1, result.CurrentPage)
	mockRepo.AssertExpectations(t)
}

func TestHotelService_ByPlace(t *testing.T) {
	mockRepo := new(mocks.MockHotelRepository)
	mockRepo.On("FindByPlace", mock.Anything, uint64(3)).Return([]domain.Hotel{
		*CreateTestHotel(2, 3, "Hilltop Lodge"),
		*CreateTestHotel(1, 3, "Seaside Resort"),
	}, nil)

	service := NewHotelService(mockRepo)

	hotels, err := service.ByPlace(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, hotels, 2)
	mockRepo.AssertExpectations(t)
}
