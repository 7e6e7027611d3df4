package repository

import (
	"errors"
	"time"

	subdomain "trendwatch-backend/internal/subscriber/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriberRepository defines the persistence operations for subscribers
type SubscriberRepository interface {
	Create(sub *subdomain.Subscriber) error
	// FindByEmail returns (nil, nil) when no subscriber exists for the email
	FindByEmail(email string) (*subdomain.Subscriber, error)
	Update(sub *subdomain.Subscriber) error
	// FindAllActive returns subscribers with is_active = true, any order
	FindAllActive() ([]*subdomain.Subscriber, error)
}

// subscriberRepository implements SubscriberRepository using GORM
type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository creates a new instance of subscriberRepository
func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{
		db: db,
	}
}

func (r *subscriberRepository) Create(sub *subdomain.Subscriber) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	sub.CreatedAt = time.Now()
	sub.UpdatedAt = time.Now()
	return r.db.Create(sub).Error
}

func (r *subscriberRepository) FindByEmail(email string) (*subdomain.Subscriber, error) {
	var sub subdomain.Subscriber
	err := r.db.Where("email = ?", email).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriberRepository) Update(sub *subdomain.Subscriber) error {
	sub.UpdatedAt = time.Now()
	return r.db.Save(sub).Error
}

func (r *subscriberRepository) FindAllActive() ([]*subdomain.Subscriber, error) {
	var subs []*subdomain.Subscriber
	err := r.db.Where("is_active = ?", true).Find(&subs).Error
	return subs, err
}
