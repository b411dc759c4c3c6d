package services

import (
	"context"
	"errors"
	"math"

	"travel-pack/internal/domain"
	"travel-pack/internal/repository"

	"golang.org/x/sync/errgroup"
)

var ErrPackageNotFound = errors.New("package not found")

type PackagePage struct {
	Packages    []domain.Package `json:"packages"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

type PackageService struct {
	repo repository.PackageRepository
}

func NewPackageService(r repository.PackageRepository) *PackageService {
	return &PackageService{repo: r}
}

func (s *PackageService) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	if err := s.repo.Save(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *PackageService) GetByID(ctx context.Context, id uint64) (*domain.Package, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPackageNotFound
	}
	return p, nil
}

func (s *PackageService) Update(ctx context.Context, id uint64, updated *domain.Package) (*domain.Package, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPackageNotFound
	}

	existing.Name = updated.Name
	existing.Description = updated.Description
	existing.Price = updated.Price
	existing.Date = updated.Date
	existing.Days = updated.Days
	existing.Schedule = updated.Schedule
	if updated.Images != nil {
		existing.Images = updated.Images
	}

	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *PackageService) Delete(ctx context.Context, id uint64) (*domain.Package, error) {
	p, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPackageNotFound
	}
	return p, nil
}

func (s *PackageService) List(ctx context.Context, page, limit int) (*PackagePage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	var (
		packages []domain.Package
		count    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		packages, err = s.repo.FindPage(gctx, (page-1)*limit, limit)
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

	if packages == nil {
		packages = []domain.Package{}
	}
	return &PackagePage{
		Packages:    packages,
		TotalPages:  int(math.Ceil(float64(count) / float64(limit))),
		CurrentPage: page,
	}, nil
}

func (s *PackageService) TopRated(ctx context.Context, limit int) ([]domain.Package, error) {
	return s.repo.FindTopRated(ctx, limit)
}

func (s *PackageService) Search(ctx context.Context, query string) (*domain.Package, error) {
	p, err := s.repo.FindFirstByName(ctx, query)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPackageNotFound
	}
	return p, nil
}

// AddReview appends a review and recomputes the package's review count and
// mean rating from all reviews including the new one.
func (s *PackageService) AddReview(ctx context.Context, packageID uint64, user *domain.User, rating float64, comment string) error {
	pkg, err := s.repo.FindByID(ctx, packageID)
	if err != nil {
		return err
	}
	if pkg == nil {
		return ErrPackageNotFound
	}

	review := &domain.Review{
		PackageID: pkg.ID,
		UserID:    user.ID,
		Name:      user.Username,
		Rating:    rating,
		Comment:   comment,
	}

	sum := rating
	for _, r := range pkg.Reviews {
		sum += r.Rating
	}
	pkg.NumReviews = len(pkg.Reviews) + 1
	pkg.Rating = sum / float64(pkg.NumReviews)

	return s.repo.AddReview(ctx, pkg, review)
}
