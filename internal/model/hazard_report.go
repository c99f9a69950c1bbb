package model

import "time"

// HazardReport is a citizen-submitted observation of an ocean hazard.
// Reports are immutable once created and are owned by the submitting user.
type HazardReport struct {
	ID          string    `json:"id" gorm:"type:char(36);primaryKey"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Latitude    float64   `json:"latitude" gorm:"not null"`
	Longitude   float64   `json:"longitude" gorm:"not null"`
	ImageURL    string    `json:"imageUrl,omitempty" gorm:"size:1024"`
	AudioURL    string    `json:"audioUrl,omitempty" gorm:"size:1024"`
	Location    string    `json:"location,omitempty" gorm:"size:255"`
	UserID      string    `json:"userId" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
}
