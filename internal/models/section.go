package models

import "time"

type Section struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SectionWithCount struct {
	Section       Section `json:"section"`
	ArticlesCount int     `json:"articles_count"`
}
