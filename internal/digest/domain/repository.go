package domain

import "time"

// TrendingRepo is a candidate repository as returned by the trending
// source, before summarization.
type TrendingRepo struct {
	FullName    string `json:"fullName"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	TodayStars  int    `json:"todayStars"`
	URL         string `json:"url"`
}

// AnnotatedRepo is a trending repository plus its AI summary, as composed
// during a digest run and rendered into emails.
type AnnotatedRepo struct {
	TrendingRepo
	AISummary string `json:"aiSummary"`
}

// Repository is the persisted form of a scraped repository, keyed by its
// unique full name ("owner/name"). Repeated discovery updates the row in
// place, never duplicates it.
type Repository struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	FullName     string    `json:"full_name" gorm:"uniqueIndex;not null"`
	Description  string    `json:"description"`
	Language     string    `json:"language" gorm:"index"`
	Stars        int       `json:"stars"`
	TodayStars   int       `json:"today_stars"`
	URL          string    `json:"url"`
	AISummary    string    `json:"ai_summary"`
	ScrapedAt    time.Time `json:"scraped_at"`
	TrendingDate time.Time `json:"trending_date"`
	CreatedAt    time.Time `json:"created_at"`
}
