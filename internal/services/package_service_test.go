package services

import (
	"context"
	"errors"
	"testing"

	"travel-pack/internal/domain"
	"travel-pack/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPackageService_AddReview(t *testing.T) {
	tests := []struct {
		name            string
		existingReviews []domain.Review
		rating          float64
		setupMocks      func(*mocks.MockPackageRepository, *domain.Package)
		expectedError   error
		expectedNum     int
		expectedRating  float64
	}{
		{
			name:            "first review sets the rating",
			existingReviews: nil,
			rating:          4,
			expectedNum:     1,
			expectedRating:  4,
		},
		{
			name: "rating becomes the mean of all reviews",
			existingReviews: []domain.Review{
				{PackageID: 1, UserID: 2, Name: "ann", Rating: 4, Comment: "nice"},
			},
			rating:         2,
			expectedNum:    2,
			expectedRating: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := CreateTestPackage(1, "Bali Getaway", 0)
			pkg.Reviews = tt.existingReviews
			pkg.NumReviews = len(tt.existingReviews)

			mockRepo := new(mocks.MockPackageRepository)
			mockRepo.On("FindByID", mock.Anything, uint64(1)).Return(pkg, nil)
			mockRepo.On("AddReview", mock.Anything, mock.AnythingOfType("*domain.Package"), mock.AnythingOfType("*domain.Review")).
				Return(nil).
				Run(func(args mock.Arguments) {
					saved := args.Get(1).(*domain.Package)
					review := args.Get(2).(*domain.Review)
					assert.Equal(t, tt.expectedNum, saved.NumReviews)
					assert.InDelta(t, tt.expectedRating, saved.Rating, 1e-9)
					assert.Equal(t, "bob", review.Name)
					assert.Equal(t, tt.rating, review.Rating)
				})

			service := NewPackageService(mockRepo)
			user := CreateTestUser(7, "bob", false)

			err := service.AddReview(context.Background(), 1, user, tt.rating, "great trip")

			assert.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPackageService_AddReview_PackageMissing(t *testing.T) {
	mockRepo := new(mocks.MockPackageRepository)
	mockRepo.On("FindByID", mock.Anything, uint64(99)).Return(nil, nil)

	service := NewPackageService(mockRepo)

	err := service.AddReview(context.Background(), 99, CreateTestUser(7, "bob", false), 5, "ghost")

	assert.ErrorIs(t, err, ErrPackageNotFound)
	mockRepo.AssertNotCalled(t, "AddReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestPackageService_Search(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		found         *domain.Package
		expectedError error
	}{
		{
			name:  "match returns the package",
			query: "bali",
			found: CreateTestPackage(1, "Bali Getaway", 4.5),
		},
		{
			name:          "no match returns not found",
			query:         "atlantis",
			expectedError: ErrPackageNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockPackageRepository)
			if tt.found != nil {
				mockRepo.On("FindFirstByName", mock.Anything, tt.query).Return(tt.found, nil)
			} else {
				mockRepo.On("FindFirstByName", mock.Anything, tt.query).Return(nil, nil)
			}

			service := NewPackageService(mockRepo)

			pkg, err := service.Search(context.Background(), tt.query)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, pkg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.found.Name, pkg.Name)
			}
		})
	}
}

func TestPackageService_List(t *testing.T) {
	mockRepo := new(mocks.MockPackageRepository)
	mockRepo.On("FindPage", mock.Anything, 4, 4).Return([]domain.Package{*CreateTestPackage(5, "Rome", 4)}, nil)
	mockRepo.On("Count", mock.Anything).Return(int64(9), nil)

	service := NewPackageService(mockRepo)

	result, err := service.List(context.Background(), 2, 4)

	assert.NoError(t, err)
	assert.Len(t, result.Packages, 1)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 2, result.CurrentPage)
	mockRepo.AssertExpectations(t)
}

func TestPackageService_Update_NotFound(t *testing.T) {
	mockRepo := new(mocks.MockPackageRepository)
	mockRepo.On("FindByID", mock.Anything, uint64(42)).Return(nil, nil)

	service := NewPackageService(mockRepo)

	_, err := service.Update(context.Background(), 42, CreateTestPackage(42, "Nowhere", 0))

	assert.ErrorIs(t, err, ErrPackageNotFound)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPackageService_Delete_StoreFailure(t *testing.T) {
	mockRepo := new(mocks.MockPackageRepository)
	mockRepo.On("Delete", mock.Anything, uint64(1)).Return(nil, errors.New("database error"))

	service := NewPackageService(mockRepo)

	_, err := service.Delete(context.Background(), 1)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}
