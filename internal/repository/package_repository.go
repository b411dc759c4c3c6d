package repository

import (
	"context"

	"travel-pack/internal/domain"
)

type PackageRepository interface {
	Save(ctx context.Context, pkg *domain.Package) error
	FindByID(ctx context.Context, id uint64) (*domain.Package, error)
	FindPage(ctx context.Context, offset, limit int) ([]domain.Package, error)
	FindTopRated(ctx context.Context, limit int) ([]domain.Package, error)
	FindFirstByName(ctx context.Context, query string) (*domain.Package, error)
	Count(ctx context.Context) (int64, error)
	AddReview(ctx context.Context, pkg *domain.Package, review *domain.Review) error
	Delete(ctx context.Context, id uint64) (*domain.Package, error)
}
