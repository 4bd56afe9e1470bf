package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/azpdscc/website-api/internal/database"
	"github.com/azpdscc/website-api/internal/models"
)

// blogRepo is the concrete implementation of BlogRepository
type blogRepo struct {
	db *database.DB
}

// NewBlogRepo creates a new blog post repository
func NewBlogRepo(db *database.DB) BlogRepository {
	return &blogRepo{db: db}
}

// Create inserts a new blog post
func (r *blogRepo) Create(ctx context.Context, post *models.BlogPost) error {
	query := `
		INSERT INTO blog_posts (id, slug, title, author, date, excerpt, content, image, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Slug, post.Title, post.Author, post.Date, post.Excerpt,
		post.Content, post.Image, post.Status, post.CreatedAt, time.Now(),
	)
	return err
}

// Update rewrites all mutable fields of a blog post
func (r *blogRepo) Update(ctx context.Context, post *models.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET slug = $2, title = $3, author = $4, date = $5, excerpt = $6,
		    content = $7, image = $8, status = $9, updated_at = $10
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Slug, post.Title, post.Author, post.Date, post.Excerpt,
		post.Content, post.Image, post.Status, time.Now(),
	)
	return err
}

// Delete removes a blog post permanently
func (r *blogRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM blog_posts WHERE id = $1", id)
	return err
}

// GetByID retrieves a blog post by ID
func (r *blogRepo) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	return r.getOne(ctx, "id", id)
}

// GetBySlug retrieves a blog post by its URL slug
func (r *blogRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return r.getOne(ctx, "slug", slug)
}

func (r *blogRepo) getOne(ctx context.Context, column, value string) (*models.BlogPost, error) {
	query := `
		SELECT id, slug, title, author, date, excerpt, content, image, status, created_at, updated_at
		FROM blog_posts WHERE ` + column + ` = $1
	`

	var post models.BlogPost
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&post.ID, &post.Slug, &post.Title, &post.Author, &post.Date, &post.Excerpt,
		&post.Content, &post.Image, &post.Status, &post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// SlugExists checks if a blog post with the given slug exists
func (r *blogRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM blog_posts WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// List retrieves blog posts ordered by date descending. An empty status
// returns every post; otherwise only posts with that status.
func (r *blogRepo) List(ctx context.Context, status models.BlogStatus) ([]*models.BlogPost, error) {
	query := `
		SELECT id, slug, title, author, date, excerpt, content, image, status, created_at, updated_at
		FROM blog_posts
	`
	var args []interface{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.BlogPost
	for rows.Next() {
		var post models.BlogPost
		err := rows.Scan(
			&post.ID, &post.Slug, &post.Title, &post.Author, &post.Date, &post.Excerpt,
			&post.Content, &post.Image, &post.Status, &post.CreatedAt, &post.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}
