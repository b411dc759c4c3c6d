package services

import (
	"context"
	"errors"
	"math"

	"travel-pack/internal/domain"
	"travel-pack/internal/repository"

	"golang.org/x/sync/errgroup"
)

var ErrHotelNotFound = errors.New("hotel not found")

type HotelPage struct {
	Hotels      []domain.Hotel `json:"hotels"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}

type HotelService struct {
	repo repository.HotelRepository
}

func NewHotelService(r repository.HotelRepository) *HotelService {
	return &HotelService{repo: r}
}

func (s *HotelService) Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	if err := s.repo.Save(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *HotelService) GetByID(ctx context.Context, id uint64) (*domain.Hotel, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrHotelNotFound
	}
	return h, nil
}

func (s *HotelService) ByPlace(ctx context.Context, placeID uint64) ([]domain.Hotel, error) {
	return s.repo.FindByPlace(ctx, placeID)
}

// Update overwrites only the fields present in the request; zero values keep
// the stored ones, the way the booking frontend has always sent partial edits.
func (s *HotelService) Update(ctx context.Context, id uint64, updated *domain.Hotel) (*domain.Hotel, error) {
	hotel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, ErrHotelNotFound
	}

	if updated.Name != "" {
		hotel.Name = updated.Name
	}
	if updated.Address != "" {
		hotel.Address = updated.Address
	}
	if updated.PlaceID != 0 {
		hotel.PlaceID = updated.PlaceID
	}
	if updated.Rating != 0 {
		hotel.Rating = updated.Rating
	}
	if updated.PricePerNight != 0 {
		hotel.PricePerNight = updated.PricePerNight
	}
	if updated.Facilities != nil {
		hotel.Facilities = updated.Facilities
	}
	if updated.Images != nil {
		hotel.Images = updated.Images
	}

	if err := s.repo.Save(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *HotelService) Delete(ctx context.Context, id uint64) error {
	hotel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if hotel == nil {
		return ErrHotelNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *HotelService) List(ctx context.Context, page, limit int) (*HotelPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	var (
		hotels []domain.Hotel
		count  int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hotels, err = s.repo.FindPage(gctx, (page-1)*limit, limit)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = s.repo.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if hotels == nil {
		hotels = []domain.Hotel{}
	}
	return &HotelPage{
		Hotels:      hotels,
		TotalPages:  int(math.Ceil(float64(count) / float64(limit))),
		CurrentPage: page,
	}, nil
}
