package models

import "time"

// Subscriber represents a newsletter subscriber, keyed by email so the
// same address can never subscribe twice
type Subscriber struct {
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	Phone        string    `json:"phone" db:"phone"`
	SMSConsent   bool      `json:"smsConsent" db:"sms_consent"`
	SubscribedAt time.Time `json:"subscribedAt" db:"subscribed_at"`
}
