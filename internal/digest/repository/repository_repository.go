package repository

import (
	"errors"
	"time"

	"trendwatch-backend/internal/digest/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RepositoryRepository persists scraped repositories keyed by full name
type RepositoryRepository interface {
	// Upsert creates the record on first discovery and refreshes the
	// mutable fields (stars, summary, timestamps) on every later one.
	Upsert(repo *domain.Repository) error
	// FindByFullName returns (nil, nil) when the repository is unknown
	FindByFullName(fullName string) (*domain.Repository, error)
}

// repositoryRepository implements RepositoryRepository using GORM
type repositoryRepository struct {
	db *gorm.DB
}

// NewRepositoryRepository creates a new instance of repositoryRepository
func NewRepositoryRepository(db *gorm.DB) RepositoryRepository {
	return &repositoryRepository{
		db: db,
	}
}

func (r *repositoryRepository) Upsert(repo *domain.Repository) error {
	var existing domain.Repository
	err := r.db.Where("full_name = ?", repo.FullName).First(&existing).Error

	now := time.Now()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		repo.ID = uuid.New().String()
		repo.ScrapedAt = now
		repo.TrendingDate = now
		repo.CreatedAt = now
		return r.db.Create(repo).Error
	} else if err != nil {
		return err
	}

	existing.Stars = repo.Stars
	existing.TodayStars = repo.TodayStars
	existing.AISummary = repo.AISummary
	existing.ScrapedAt = now
	existing.TrendingDate = now
	return r.db.Save(&existing).Error
}

func (r *repositoryRepository) FindByFullName(fullName string) (*domain.Repository, error) {
	var repo domain.Repository
	err := r.db.Where("full_name = ?", fullName).First(&repo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &repo, nil
}
