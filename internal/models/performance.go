package models

import "time"

// PerformanceApplication represents a group applying to perform at an event.
// Create-only; admins read the listing.
type PerformanceApplication struct {
	ID              string    `json:"id" db:"id"`
	GroupName       string    `json:"groupName" db:"group_name"`
	Event           string    `json:"event" db:"event"`
	ContactName     string    `json:"contactName" db:"contact_name"`
	Email           string    `json:"email" db:"email"`
	PerformanceType string    `json:"performanceType" db:"performance_type"`
	AuditionLink    string    `json:"auditionLink" db:"audition_link"`
	SubmittedAt     time.Time `json:"submittedAt" db:"submitted_at"`
}
