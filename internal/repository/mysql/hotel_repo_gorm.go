package mysql

import (
	"context"
	"errors"
	"log"

	"travel-pack/internal/domain"
	"travel-pack/internal/repository"

	"gorm.io/gorm"
)

type hotelRepo struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) repository.HotelRepository {
	return &hotelRepo{db: db}
}

func (r *hotelRepo) Save(ctx context.Context, hotel *domain.Hotel) error {
	if err := r.db.WithContext(ctx).Save(hotel).Error; err != nil {
		log.Printf("hotel save error: %v", err)
		return err
	}
	return nil
}

func (r *hotelRepo) FindByID(ctx context.Context, id uint64) (*domain.Hotel, error) {
	var h domain.Hotel
	err := r.db.WithContext(ctx).First(&h, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("hotel FindByID error: %v", err)
		return nil, err
	}
	return &h, nil
}

func (r *hotelRepo) FindByPlace(ctx context.Context, placeID uint64) ([]domain.Hotel, error) {
	var out []domain.Hotel
	err := r.db.WithContext(ctx).
		Where("place_id = ?", placeID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("hotel FindByPlace error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *hotelRepo) FindPage(ctx context.Context, offset, limit int) ([]domain.Hotel, error) {
	var out []domain.Hotel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		log.Printf("hotel FindPage error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *hotelRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Hotel{}).Count(&count).Error; err != nil {
		log.Printf("hotel Count error: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *hotelRepo) Delete(ctx context.Context, id uint64) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Hotel{}, id).Error; err != nil {
		log.Printf("hotel Delete error: %v", err)
		return err
	}
	return nil
}
