package models

import "time"

// CheckInStatus represents the one-way check-in state of a vendor application
type CheckInStatus string

const (
	CheckInStatusPending   CheckInStatus = "pending"
	CheckInStatusCheckedIn CheckInStatus = "checkedIn"
)

// ValidBoothTypes are the booth options on the vendor application form
var ValidBoothTypes = map[string]bool{
	"food":      true,
	"retail":    true,
	"services":  true,
	"nonprofit": true,
}

// VendorApplication represents a vendor's booth application for an event
type VendorApplication struct {
	ID            string        `json:"id" db:"id"`
	Name          string        `json:"name" db:"name"`
	Organization  string        `json:"organization" db:"organization"`
	Email         string        `json:"email" db:"email"`
	BoothType     string        `json:"boothType" db:"booth_type"`
	CheckInStatus CheckInStatus `json:"checkInStatus" db:"check_in_status"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	CheckedInAt   *time.Time    `json:"checkedInAt,omitempty" db:"checked_in_at"`
}
