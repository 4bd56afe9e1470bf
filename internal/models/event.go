package models

import "time"

// Event represents a community event shown on the public events pages
type Event struct {
	ID               string    `json:"id" db:"id"`
	Slug             string    `json:"slug" db:"slug"`
	Name             string    `json:"name" db:"name"`
	Date             string    `json:"date" db:"date"` // YYYY-MM-DD
	Time             string    `json:"time" db:"time"` // free-form, e.g. "5:00 PM - 10:00 PM"
	Location         string    `json:"location" db:"location"`
	Category         string    `json:"category" db:"category"`
	ShortDescription string    `json:"shortDescription" db:"short_description"`
	FullDescription  string    `json:"fullDescription" db:"full_description"`
	Image            string    `json:"image" db:"image"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// ValidEventCategories are the categories recognized by the events pages
var ValidEventCategories = map[string]bool{
	"Cultural":  true,
	"Religious": true,
	"Sports":    true,
	"Community": true,
	"Festival":  true,
}
