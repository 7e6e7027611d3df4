package repository

import (
	"time"

	"trendwatch-backend/internal/digest/domain"

	"gorm.io/gorm"
)

// DigestLogRepository appends and reads the per-run outcome ledger
type DigestLogRepository interface {
	Create(entry *domain.DigestLog) error
	FindRecent(limit int) ([]*domain.DigestLog, error)
}

// digestLogRepository implements DigestLogRepository using GORM
type digestLogRepository struct {
	db *gorm.DB
}

// NewDigestLogRepository creates a new instance of digestLogRepository
func NewDigestLogRepository(db *gorm.DB) DigestLogRepository {
	return &digestLogRepository{
		db: db,
	}
}

func (r *digestLogRepository) Create(entry *domain.DigestLog) error {
	entry.CreatedAt = time.Now()
	return r.db.Create(entry).Error
}

func (r *digestLogRepository) FindRecent(limit int) ([]*domain.DigestLog, error) {
	var entries []*domain.DigestLog
	err := r.db.Order("id DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
