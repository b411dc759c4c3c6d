package mysql

import (
	"context"
	"errors"
	"log"

	"travel-pack/internal/domain"
	"travel-pack/internal/repository"

	"gorm.io/gorm"
)

type packageRepo struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) repository.PackageRepository {
	return &packageRepo{db: db}
}

func (r *packageRepo) Save(ctx context.Context, pkg *domain.Package) error {
	if err := r.db.WithContext(ctx).Save(pkg).Error; err != nil {
		log.Printf("package save error: %v", err)
		return err
	}
	return nil
}

func (r *packageRepo) FindByID(ctx context.Context, id uint64) (*domain.Package, error) {
	var p domain.Package
	err := r.db.WithContext(ctx).Preload("Reviews").First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("package FindByID error: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *packageRepo) FindPage(ctx context.Context, offset, limit int) ([]domain.Package, error) {
	var out []domain.Package
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		log.Printf("package FindPage error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *packageRepo) FindTopRated(ctx context.Context, limit int) ([]domain.Package, error) {
	var out []domain.Package
	err := r.db.WithContext(ctx).
		Order("rating DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		log.Printf("package FindTopRated error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *packageRepo) FindFirstByName(ctx context.Context, query string) (*domain.Package, error) {
	var p domain.Package
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%").
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("package FindFirstByName error: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *packageRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Package{}).Count(&count).Error; err != nil {
		log.Printf("package Count error: %v", err)
		return 0, err
	}
	return count, nil
}

// AddReview stores the review and the recomputed rating fields in one
// transaction so a failed insert never skews the aggregate.
func (r *packageRepo) AddReview(ctx context.Context, pkg *domain.Package, review *domain.Review) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Package{}).
			Where("id = ?", pkg.ID).
			Updates(map[string]any{
				"num_reviews": pkg.NumReviews,
				"rating":      pkg.Rating,
			}).Error
	})
	if err != nil {
		log.Printf("package AddReview error: %v", err)
		return err
	}
	return nil
}

func (r *packageRepo) Delete(ctx context.Context, id uint64) (*domain.Package, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&domain.Package{}, id).Error; err != nil {
		log.Printf("package Delete error: %v", err)
		return nil, err
	}
	return p, nil
}
