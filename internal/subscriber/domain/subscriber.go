package domain

import "time"

// Frequency represents how often a subscriber wants their digest
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyRealtime Frequency = "realtime"
)

// Valid reports whether f is one of the known delivery frequencies
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyRealtime:
		return true
	}
	return false
}

// Subscriber represents one digest recipient. An email address maps to at
// most one record; unsubscribing deactivates instead of deleting so a
// re-subscribe reactivates the same row.
type Subscriber struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Languages []string  `json:"languages" gorm:"serializer:json;not null"`
	Frequency Frequency `json:"frequency" gorm:"default:daily"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
