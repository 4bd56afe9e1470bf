package models

import "time"

// BlogStatus represents the publication status of a blog post
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "Draft"
	BlogStatusPublished BlogStatus = "Published"
	BlogStatusScheduled BlogStatus = "Scheduled"
)

// ValidBlogStatuses are the statuses accepted by the admin blog API
var ValidBlogStatuses = map[BlogStatus]bool{
	BlogStatusDraft:     true,
	BlogStatusPublished: true,
	BlogStatusScheduled: true,
}

// BlogPost represents a single post on the blog
type BlogPost struct {
	ID        string     `json:"id" db:"id"`
	Slug      string     `json:"slug" db:"slug"`
	Title     string     `json:"title" db:"title"`
	Author    string     `json:"author" db:"author"`
	Date      string     `json:"date" db:"date"` // YYYY-MM-DD
	Excerpt   string     `json:"excerpt" db:"excerpt"`
	Content   string     `json:"content" db:"content"` // HTML
	Image     string     `json:"image" db:"image"`
	Status    BlogStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// ScheduledBlogPost is an admin-entered topic awaiting automatic
// conversion into a published post once its publish date arrives
type ScheduledBlogPost struct {
	ID          string    `json:"id" db:"id"`
	Topic       string    `json:"topic" db:"topic"`
	Author      string    `json:"author" db:"author"`
	PublishDate string    `json:"publishDate" db:"publish_date"` // YYYY-MM-DD
	Image       string    `json:"image" db:"image"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
