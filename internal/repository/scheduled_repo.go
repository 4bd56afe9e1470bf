package repository

import (
	"context"
	"database/sql"

	"github.com/azpdscc/website-api/internal/database"
	"github.com/azpdscc/website-api/internal/models"
)

// scheduledPostRepo is the concrete implementation of ScheduledPostRepository
type scheduledPostRepo struct {
	db *database.DB
}

// NewScheduledPostRepo creates a new scheduled blog post repository
func NewScheduledPostRepo(db *database.DB) ScheduledPostRepository {
	return &scheduledPostRepo{db: db}
}

// Create inserts a new scheduled blog post
func (r *scheduledPostRepo) Create(ctx context.Context, post *models.ScheduledBlogPost) error {
	query := `
		INSERT INTO scheduled_blog_posts (id, topic, author, publish_date, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Topic, post.Author, post.PublishDate, post.Image, post.CreatedAt,
	)
	return err
}

// Delete removes a scheduled blog post
func (r *scheduledPostRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM scheduled_blog_posts WHERE id = $1", id)
	return err
}

// GetByID retrieves a scheduled blog post by ID
func (r *scheduledPostRepo) GetByID(ctx context.Context, id string) (*models.ScheduledBlogPost, error) {
	query := `
		SELECT id, topic, author, publish_date, image, created_at
		FROM scheduled_blog_posts WHERE id = $1
	`

	var post models.ScheduledBlogPost
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Topic, &post.Author, &post.PublishDate, &post.Image, &post.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves all scheduled blog posts ordered by publish date
func (r *scheduledPostRepo) List(ctx context.Context) ([]*models.ScheduledBlogPost, error) {
	return r.list(ctx, "", "")
}

// ListDue retrieves scheduled posts whose publish date is today or earlier
func (r *scheduledPostRepo) ListDue(ctx context.Context, today string) ([]*models.ScheduledBlogPost, error) {
	return r.list(ctx, " WHERE publish_date <= $1", today)
}

func (r *scheduledPostRepo) list(ctx context.Context, where, arg string) ([]*models.ScheduledBlogPost, error) {
	query := `
		SELECT id, topic, author, publish_date, image, created_at
		FROM scheduled_blog_posts
	` + where + " ORDER BY publish_date ASC"

	var rows *sql.Rows
	var err error
	if where == "" {
		rows, err = r.db.QueryContext(ctx, query)
	} else {
		rows, err = r.db.QueryContext(ctx, query, arg)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.ScheduledBlogPost
	for rows.Next() {
		var post models.ScheduledBlogPost
		err := rows.Scan(&post.ID, &post.Topic, &post.Author, &post.PublishDate, &post.Image, &post.CreatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

// Claim deletes the scheduled post in a single statement and reports
// whether this caller won it. Two concurrent processing passes cannot
// both claim the same entry, so a due topic is published at most once.
func (r *scheduledPostRepo) Claim(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM scheduled_blog_posts WHERE id = $1", id)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
