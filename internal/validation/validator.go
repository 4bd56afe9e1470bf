package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/azpdscc/website-api/internal/models"
)

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	slugRegex    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	phoneRegex   = regexp.MustCompile(`^\+?[0-9\-\s().]{7,20}$`)
	nonSlugRegex = regexp.MustCompile(`[^a-z0-9]+`)
)

const dateLayout = "2006-01-02"

// ValidationError represents a single field-level validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateEmail checks a required email field
func ValidateEmail(field, value string) *ValidationError {
	if value == "" {
		return &ValidationError{Field: field, Message: field + " is required"}
	}
	if !emailRegex.MatchString(value) {
		return &ValidationError{Field: field, Message: "invalid email format", Value: value}
	}
	return nil
}

// ValidateSlug checks a required kebab-case slug field
func ValidateSlug(field, value string) *ValidationError {
	if value == "" {
		return &ValidationError{Field: field, Message: field + " is required"}
	}
	if !slugRegex.MatchString(value) {
		return &ValidationError{Field: field, Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: value}
	}
	return nil
}

// ValidateDate checks a required YYYY-MM-DD date field
func ValidateDate(field, value string) *ValidationError {
	if value == "" {
		return &ValidationError{Field: field, Message: field + " is required"}
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return &ValidationError{Field: field, Message: "invalid date, expected YYYY-MM-DD", Value: value}
	}
	return nil
}

// ValidateBlogPost validates a blog post record coming through the
// admin blog API
func ValidateBlogPost(post *models.BlogPost) []ValidationError {
	var errors []ValidationError

	if post.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if e := ValidateSlug("slug", post.Slug); e != nil {
		errors = append(errors, *e)
	}
	if e := ValidateDate("date", post.Date); e != nil {
		errors = append(errors, *e)
	}
	if post.Status != "" && !models.ValidBlogStatuses[post.Status] {
		errors = append(errors, ValidationError{
			Field:   "status",
			Message: "invalid status, must be one of: Draft, Published, Scheduled",
			Value:   string(post.Status),
		})
	}

	return errors
}

// ValidateScheduledPost validates an admin-entered scheduled post topic
func ValidateScheduledPost(post *models.ScheduledBlogPost) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(post.Topic) == "" {
		errors = append(errors, ValidationError{Field: "topic", Message: "topic is required"})
	}
	if e := ValidateDate("publishDate", post.PublishDate); e != nil {
		errors = append(errors, *e)
	}

	return errors
}

// ValidateSponsor validates a sponsor record from the admin forms
func ValidateSponsor(sponsor *models.Sponsor) []ValidationError {
	var errors []ValidationError

	if sponsor.Name == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}
	if sponsor.Level == "" {
		errors = append(errors, ValidationError{Field: "level", Message: "level is required"})
	} else if !models.ValidSponsorLevels[sponsor.Level] {
		errors = append(errors, ValidationError{
			Field:   "level",
			Message: "invalid level, must be one of: Diamond, Gold, Silver, Bronze, Other",
			Value:   string(sponsor.Level),
		})
	}

	return errors
}

// ValidateEvent validates an event record from the admin forms
func ValidateEvent(event *models.Event) []ValidationError {
	var errors []ValidationError

	if event.Name == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}
	if e := ValidateDate("date", event.Date); e != nil {
		errors = append(errors, *e)
	}
	if event.Category != "" && !models.ValidEventCategories[event.Category] {
		errors = append(errors, ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("invalid category: %s", event.Category),
			Value:   event.Category,
		})
	}

	return errors
}

// ValidateVendorApplication validates a vendor booth application
func ValidateVendorApplication(app *models.VendorApplication) []ValidationError {
	var errors []ValidationError

	if app.Name == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}
	if app.Organization == "" {
		errors = append(errors, ValidationError{Field: "organization", Message: "organization is required"})
	}
	if e := ValidateEmail("email", app.Email); e != nil {
		errors = append(errors, *e)
	}
	if app.BoothType == "" {
		errors = append(errors, ValidationError{Field: "boothType", Message: "boothType is required"})
	} else if !models.ValidBoothTypes[app.BoothType] {
		errors = append(errors, ValidationError{
			Field:   "boothType",
			Message: "invalid boothType, must be one of: food, retail, services, nonprofit",
			Value:   app.BoothType,
		})
	}

	return errors
}

// ValidateSubscriber validates a newsletter subscription request
func ValidateSubscriber(sub *models.Subscriber) []ValidationError {
	var errors []ValidationError

	if sub.Name == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}
	if e := ValidateEmail("email", sub.Email); e != nil {
		errors = append(errors, *e)
	}
	if sub.Phone != "" && !phoneRegex.MatchString(sub.Phone) {
		errors = append(errors, ValidationError{Field: "phone", Message: "invalid phone number", Value: sub.Phone})
	}
	if sub.SMSConsent && sub.Phone == "" {
		errors = append(errors, ValidationError{Field: "phone", Message: "phone is required when smsConsent is set"})
	}

	return errors
}

// ValidatePerformanceApplication validates a performance application
func ValidatePerformanceApplication(app *models.PerformanceApplication) []ValidationError {
	var errors []ValidationError

	if app.GroupName == "" {
		errors = append(errors, ValidationError{Field: "groupName", Message: "groupName is required"})
	}
	if app.ContactName == "" {
		errors = append(errors, ValidationError{Field: "contactName", Message: "contactName is required"})
	}
	if e := ValidateEmail("email", app.Email); e != nil {
		errors = append(errors, *e)
	}
	if app.PerformanceType == "" {
		errors = append(errors, ValidationError{Field: "performanceType", Message: "performanceType is required"})
	}

	return errors
}

// Slugify converts a display name into a URL-safe kebab-case slug
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = nonSlugRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
