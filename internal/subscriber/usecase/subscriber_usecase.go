package usecase

import (
	"errors"
	"fmt"
	"strings"

	subdomain "trendwatch-backend/internal/subscriber/domain"
	"trendwatch-backend/internal/subscriber/repository"
)

// ErrNotFound is returned when no subscriber exists for the given email
var ErrNotFound = errors.New("subscriber not found")

// SubscribeInput is the payload for a subscribe request
type SubscribeInput struct {
	Email     string   `json:"email"`
	Languages []string `json:"languages"`
	Frequency string   `json:"frequency"`
}

// SubscriberUsecase manages digest subscriptions
type SubscriberUsecase interface {
	// Subscribe creates a subscription, or updates languages/frequency
	// and reactivates when the email is already known. The bool reports
	// whether a new record was created.
	Subscribe(input SubscribeInput) (*subdomain.Subscriber, bool, error)
	// Unsubscribe soft-deletes: the record stays, active flips to false
	Unsubscribe(email string) error
	// Status returns (nil, nil) for unknown emails
	Status(email string) (*subdomain.Subscriber, error)
}

type subscriberUsecase struct {
	repo repository.SubscriberRepository
}

// NewSubscriberUsecase creates a new subscriber usecase (dependency injection)
func NewSubscriberUsecase(repo repository.SubscriberRepository) SubscriberUsecase {
	return &subscriberUsecase{repo: repo}
}

func (u *subscriberUsecase) Subscribe(input SubscribeInput) (*subdomain.Subscriber, bool, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, false, errors.New("valid email is required")
	}
	if len(input.Languages) == 0 {
		return nil, false, errors.New("at least one language must be selected")
	}

	frequency := subdomain.Frequency(input.Frequency)
	if frequency == "" {
		frequency = subdomain.FrequencyDaily
	}
	if !frequency.Valid() {
		return nil, false, fmt.Errorf("invalid frequency: %s", input.Frequency)
	}

	existing, err := u.repo.FindByEmail(email)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		// Update-in-place: re-subscribing overwrites preferences and
		// reactivates, it never duplicates the record.
		existing.Languages = input.Languages
		existing.Frequency = frequency
		existing.IsActive = true
		if err := u.repo.Update(existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	sub := &subdomain.Subscriber{
		Email:     email,
		Languages: input.Languages,
		Frequency: frequency,
		IsActive:  true,
	}
	if err := u.repo.Create(sub); err != nil {
		return nil, false, err
	}
	return sub, true, nil
}

func (u *subscriberUsecase) Unsubscribe(email string) error {
	sub, err := u.repo.FindByEmail(email)
	if err != nil {
		return err
	}
	if sub == nil {
		return ErrNotFound
	}

	sub.IsActive = false
	return u.repo.Update(sub)
}

func (u *subscriberUsecase) Status(email string) (*subdomain.Subscriber, error) {
	return u.repo.FindByEmail(email)
}
