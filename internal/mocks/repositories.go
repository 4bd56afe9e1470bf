package mocks

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/azpdscc/website-api/internal/models"
)

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	Events      map[string]*models.Event
	InsertError error
}

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{Events: make(map[string]*models.Event)}
}

func (m *MockEventRepository) Create(ctx context.Context, event *models.Event) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Events[event.ID] = event
	return nil
}

func (m *MockEventRepository) Update(ctx context.Context, event *models.Event) error {
	m.Events[event.ID] = event
	return nil
}

func (m *MockEventRepository) Delete(ctx context.Context, id string) error {
	delete(m.Events, id)
	return nil
}

func (m *MockEventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	return m.Events[id], nil
}

func (m *MockEventRepository) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	for _, e := range m.Events {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, nil
}

func (m *MockEventRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	e, _ := m.GetBySlug(ctx, slug)
	return e != nil, nil
}

func (m *MockEventRepository) List(ctx context.Context) ([]*models.Event, error) {
	var events []*models.Event
	for _, e := range m.Events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date < events[j].Date })
	return events, nil
}

// MockBlogRepository is a mock implementation of BlogRepository
type MockBlogRepository struct {
	Posts       map[string]*models.BlogPost
	InsertError error
	CreateCalls int
}

func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{Posts: make(map[string]*models.BlogPost)}
}

func (m *MockBlogRepository) Create(ctx context.Context, post *models.BlogPost) error {
	m.CreateCalls++
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Posts[post.ID] = post
	return nil
}

func (m *MockBlogRepository) Update(ctx context.Context, post *models.BlogPost) error {
	m.Posts[post.ID] = post
	return nil
}

func (m *MockBlogRepository) Delete(ctx context.Context, id string) error {
	delete(m.Posts, id)
	return nil
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	return m.Posts[id], nil
}

func (m *MockBlogRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	for _, p := range m.Posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (m *MockBlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	p, _ := m.GetBySlug(ctx, slug)
	return p != nil, nil
}

func (m *MockBlogRepository) List(ctx context.Context, status models.BlogStatus) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	for _, p := range m.Posts {
		if status == "" || p.Status == status {
			posts = append(posts, p)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].Date > posts[j].Date })
	return posts, nil
}

// MockScheduledPostRepository is a mock implementation of
// ScheduledPostRepository. Claim removes the entry exactly like the
// conditional delete in the real store, so a second claim reports false.
type MockScheduledPostRepository struct {
	Posts      map[string]*models.ScheduledBlogPost
	ClaimCalls int
}

func NewMockScheduledPostRepository() *MockScheduledPostRepository {
	return &MockScheduledPostRepository{Posts: make(map[string]*models.ScheduledBlogPost)}
}

func (m *MockScheduledPostRepository) Create(ctx context.Context, post *models.ScheduledBlogPost) error {
	m.Posts[post.ID] = post
	return nil
}

func (m *MockScheduledPostRepository) Delete(ctx context.Context, id string) error {
	delete(m.Posts, id)
	return nil
}

func (m *MockScheduledPostRepository) GetByID(ctx context.Context, id string) (*models.ScheduledBlogPost, error) {
	return m.Posts[id], nil
}

func (m *MockScheduledPostRepository) List(ctx context.Context) ([]*models.ScheduledBlogPost, error) {
	var posts []*models.ScheduledBlogPost
	for _, p := range m.Posts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].PublishDate < posts[j].PublishDate })
	return posts, nil
}

func (m *MockScheduledPostRepository) ListDue(ctx context.Context, today string) ([]*models.ScheduledBlogPost, error) {
	var due []*models.ScheduledBlogPost
	for _, p := range m.Posts {
		if p.PublishDate <= today {
			due = append(due, p)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].PublishDate < due[j].PublishDate })
	return due, nil
}

func (m *MockScheduledPostRepository) Claim(ctx context.Context, id string) (bool, error) {
	m.ClaimCalls++
	if _, ok := m.Posts[id]; !ok {
		return false, nil
	}
	delete(m.Posts, id)
	return true, nil
}

// MockSponsorRepository is a mock implementation of SponsorRepository.
// List intentionally returns sponsors unordered so tests exercise the
// service-level sort.
type MockSponsorRepository struct {
	Sponsors map[string]*models.Sponsor
}

func NewMockSponsorRepository() *MockSponsorRepository {
	return &MockSponsorRepository{Sponsors: make(map[string]*models.Sponsor)}
}

func (m *MockSponsorRepository) Create(ctx context.Context, sponsor *models.Sponsor) error {
	m.Sponsors[sponsor.ID] = sponsor
	return nil
}

func (m *MockSponsorRepository) Update(ctx context.Context, sponsor *models.Sponsor) error {
	m.Sponsors[sponsor.ID] = sponsor
	return nil
}

func (m *MockSponsorRepository) Delete(ctx context.Context, id string) error {
	delete(m.Sponsors, id)
	return nil
}

func (m *MockSponsorRepository) GetByID(ctx context.Context, id string) (*models.Sponsor, error) {
	return m.Sponsors[id], nil
}

func (m *MockSponsorRepository) List(ctx context.Context) ([]*models.Sponsor, error) {
	var sponsors []*models.Sponsor
	for _, s := range m.Sponsors {
		sponsors = append(sponsors, s)
	}
	return sponsors, nil
}

// MockTeamRepository is a mock implementation of TeamRepository
type MockTeamRepository struct {
	Members map[string]*models.TeamMember
}

func NewMockTeamRepository() *MockTeamRepository {
	return &MockTeamRepository{Members: make(map[string]*models.TeamMember)}
}

func (m *MockTeamRepository) Create(ctx context.Context, member *models.TeamMember) error {
	m.Members[member.ID] = member
	return nil
}

func (m *MockTeamRepository) Update(ctx context.Context, member *models.TeamMember) error {
	m.Members[member.ID] = member
	return nil
}

func (m *MockTeamRepository) Delete(ctx context.Context, id string) error {
	delete(m.Members, id)
	return nil
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	return m.Members[id], nil
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*models.TeamMember, error) {
	var members []*models.TeamMember
	for _, mm := range m.Members {
		members = append(members, mm)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].CreatedAt.Before(members[j].CreatedAt) })
	return members, nil
}

// MockVendorRepository is a mock implementation of VendorRepository.
// CheckIn mirrors the guarded update: only a pending row transitions.
type MockVendorRepository struct {
	Applications map[string]*models.VendorApplication
}

func NewMockVendorRepository() *MockVendorRepository {
	return &MockVendorRepository{Applications: make(map[string]*models.VendorApplication)}
}

func (m *MockVendorRepository) Create(ctx context.Context, app *models.VendorApplication) error {
	m.Applications[app.ID] = app
	return nil
}

func (m *MockVendorRepository) GetByID(ctx context.Context, id string) (*models.VendorApplication, error) {
	return m.Applications[id], nil
}

func (m *MockVendorRepository) List(ctx context.Context) ([]*models.VendorApplication, error) {
	var apps []*models.VendorApplication
	for _, a := range m.Applications {
		apps = append(apps, a)
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].CreatedAt.After(apps[j].CreatedAt) })
	return apps, nil
}

func (m *MockVendorRepository) CheckIn(ctx context.Context, id string, at time.Time) (bool, error) {
	app, ok := m.Applications[id]
	if !ok || app.CheckInStatus != models.CheckInStatusPending {
		return false, nil
	}
	app.CheckInStatus = models.CheckInStatusCheckedIn
	app.CheckedInAt = &at
	return true, nil
}

// MockSubscriberRepository is a mock implementation of SubscriberRepository
type MockSubscriberRepository struct {
	Subscribers map[string]*models.Subscriber
	UpsertCalls int
}

func NewMockSubscriberRepository() *MockSubscriberRepository {
	return &MockSubscriberRepository{Subscribers: make(map[string]*models.Subscriber)}
}

func (m *MockSubscriberRepository) Upsert(ctx context.Context, sub *models.Subscriber) (bool, error) {
	m.UpsertCalls++
	email := strings.ToLower(sub.Email)
	if _, exists := m.Subscribers[email]; exists {
		return false, nil
	}
	m.Subscribers[email] = sub
	return true, nil
}

func (m *MockSubscriberRepository) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	return m.Subscribers[strings.ToLower(email)], nil
}

func (m *MockSubscriberRepository) IsSubscribed(ctx context.Context, email string) (bool, error) {
	_, exists := m.Subscribers[strings.ToLower(email)]
	return exists, nil
}

func (m *MockSubscriberRepository) Count(ctx context.Context) (int, error) {
	return len(m.Subscribers), nil
}

// MockPerformanceRepository is a mock implementation of PerformanceRepository
type MockPerformanceRepository struct {
	Applications map[string]*models.PerformanceApplication
}

func NewMockPerformanceRepository() *MockPerformanceRepository {
	return &MockPerformanceRepository{Applications: make(map[string]*models.PerformanceApplication)}
}

func (m *MockPerformanceRepository) Create(ctx context.Context, app *models.PerformanceApplication) error {
	m.Applications[app.ID] = app
	return nil
}

func (m *MockPerformanceRepository) List(ctx context.Context) ([]*models.PerformanceApplication, error) {
	var apps []*models.PerformanceApplication
	for _, a := range m.Applications {
		apps = append(apps, a)
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].SubmittedAt.After(apps[j].SubmittedAt) })
	return apps, nil
}
