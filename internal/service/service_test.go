package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/azpdscc/website-api/internal/ai"
	"github.com/azpdscc/website-api/internal/config"
	"github.com/azpdscc/website-api/internal/mailer"
	"github.com/azpdscc/website-api/internal/mocks"
	"github.com/azpdscc/website-api/internal/models"
	"github.com/azpdscc/website-api/internal/repository"
	"github.com/azpdscc/website-api/internal/service"
	"github.com/rs/zerolog"
)

type serviceFixture struct {
	services    *service.Services
	events      *mocks.MockEventRepository
	blog        *mocks.MockBlogRepository
	scheduled   *mocks.MockScheduledPostRepository
	sponsors    *mocks.MockSponsorRepository
	vendors     *mocks.MockVendorRepository
	subscribers *mocks.MockSubscriberRepository
}

func newServiceFixture(aiClient ai.Client, mail mailer.Mailer) *serviceFixture {
	f := &serviceFixture{
		events:      mocks.NewMockEventRepository(),
		blog:        mocks.NewMockBlogRepository(),
		scheduled:   mocks.NewMockScheduledPostRepository(),
		sponsors:    mocks.NewMockSponsorRepository(),
		vendors:     mocks.NewMockVendorRepository(),
		subscribers: mocks.NewMockSubscriberRepository(),
	}

	repos := &repository.Repositories{
		Event:       f.events,
		Blog:        f.blog,
		Scheduled:   f.scheduled,
		Sponsor:     f.sponsors,
		Team:        mocks.NewMockTeamRepository(),
		Vendor:      f.vendors,
		Subscriber:  f.subscribers,
		Performance: mocks.NewMockPerformanceRepository(),
	}

	cfg := &config.Config{
		Email: config.EmailConfig{AdminEmail: "admin@azpdscc.org"},
	}

	f.services = service.NewServices(repos, cfg, aiClient, mail, zerolog.Nop())
	return f
}

const blogJSON = `{"title":"Bhangra Nights","excerpt":"Dance with us","content":"<p>Bhangra</p>"}`

func TestProcessScheduledPosts_PublishesDueEntries(t *testing.T) {
	f := newServiceFixture(mocks.NewMockAIClient(blogJSON), nil)
	f.scheduled.Posts["sp-due"] = &models.ScheduledBlogPost{
		ID:          "sp-due",
		Topic:       "Bhangra Nights",
		PublishDate: "2026-02-01",
	}
	f.scheduled.Posts["sp-future"] = &models.ScheduledBlogPost{
		ID:          "sp-future",
		Topic:       "Next Year",
		PublishDate: "2030-01-01",
	}

	now := time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)
	processed, err := f.services.Blog.ProcessScheduledPosts(context.Background(), now)
	if err != nil {
		t.Fatalf("ProcessScheduledPosts failed: %v", err)
	}
	if processed != 1 {
		t.Errorf("Expected 1 processed entry, got %d", processed)
	}

	published, _ := f.blog.List(context.Background(), models.BlogStatusPublished)
	if len(published) != 1 {
		t.Fatalf("Expected 1 published post, got %d", len(published))
	}
	if published[0].Date != "2026-02-01" {
		t.Errorf("Published post should carry the scheduled date, got %s", published[0].Date)
	}
	if _, remains := f.scheduled.Posts["sp-future"]; !remains {
		t.Error("Future entry should remain scheduled")
	}
}

func TestProcessScheduledPosts_ExactlyOnce(t *testing.T) {
	f := newServiceFixture(mocks.NewMockAIClient(blogJSON), nil)
	f.scheduled.Posts["sp-1"] = &models.ScheduledBlogPost{
		ID:          "sp-1",
		Topic:       "Bhangra Nights",
		PublishDate: "2026-02-01",
	}

	now := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	first, err := f.services.Blog.ProcessScheduledPosts(context.Background(), now)
	if err != nil {
		t.Fatalf("First pass failed: %v", err)
	}
	second, err := f.services.Blog.ProcessScheduledPosts(context.Background(), now)
	if err != nil {
		t.Fatalf("Second pass failed: %v", err)
	}

	if first != 1 || second != 0 {
		t.Errorf("Expected passes to process 1 then 0 entries, got %d then %d", first, second)
	}
	if f.blog.CreateCalls != 1 {
		t.Errorf("Expected exactly one stored post, got %d creates", f.blog.CreateCalls)
	}
}

func TestProcessScheduledPosts_NotConfiguredLeavesEntries(t *testing.T) {
	f := newServiceFixture(nil, nil)
	f.scheduled.Posts["sp-1"] = &models.ScheduledBlogPost{
		ID:          "sp-1",
		Topic:       "Bhangra Nights",
		PublishDate: "2020-01-01",
	}

	processed, err := f.services.Blog.ProcessScheduledPosts(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("ProcessScheduledPosts failed: %v", err)
	}
	if processed != 0 {
		t.Errorf("Expected 0 processed without a model provider, got %d", processed)
	}
	if len(f.scheduled.Posts) != 1 {
		t.Error("Entry should stay scheduled until generation is possible")
	}
}

func TestProcessScheduledPosts_SkipsFailedGeneration(t *testing.T) {
	aiClient := mocks.NewMockAIClient()
	aiClient.Err = errors.New("provider timeout")
	f := newServiceFixture(aiClient, nil)
	f.scheduled.Posts["sp-1"] = &models.ScheduledBlogPost{
		ID:          "sp-1",
		Topic:       "Bhangra Nights",
		PublishDate: "2020-01-01",
	}

	processed, err := f.services.Blog.ProcessScheduledPosts(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("ProcessScheduledPosts should not fail the pass: %v", err)
	}
	if processed != 0 {
		t.Errorf("Expected 0 processed, got %d", processed)
	}
	if f.blog.CreateCalls != 0 {
		t.Errorf("No post should be stored on generation failure, got %d creates", f.blog.CreateCalls)
	}
}

func TestGenerateWeeklyPost(t *testing.T) {
	f := newServiceFixture(mocks.NewMockAIClient(blogJSON), nil)

	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	post, err := f.services.Blog.GenerateWeeklyPost(context.Background(), now)
	if err != nil {
		t.Fatalf("GenerateWeeklyPost failed: %v", err)
	}

	if post.Status != models.BlogStatusDraft {
		t.Errorf("Weekly post should be a draft, got %s", post.Status)
	}
	if post.Author != "AZPDSCC Team" {
		t.Errorf("Expected default author, got %s", post.Author)
	}
	if post.Slug != "bhangra-nights" {
		t.Errorf("Expected slug from generated title, got %s", post.Slug)
	}
	if post.Date != "2026-08-28" {
		t.Errorf("Expected post dated today, got %s", post.Date)
	}
}

func TestGenerateWeeklyPost_NotConfigured(t *testing.T) {
	f := newServiceFixture(nil, nil)

	_, err := f.services.Blog.GenerateWeeklyPost(context.Background(), time.Now())
	if !errors.Is(err, service.ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured, got %v", err)
	}
}

func TestBlogCreate_UniqueSlug(t *testing.T) {
	f := newServiceFixture(nil, nil)

	first, err := f.services.Blog.Create(context.Background(), &models.BlogPost{
		Title: "Festival Recap", Date: "2026-05-01",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := f.services.Blog.Create(context.Background(), &models.BlogPost{
		Title: "Festival Recap", Date: "2026-06-01",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if first.Slug != "festival-recap" {
		t.Errorf("Expected base slug, got %s", first.Slug)
	}
	if second.Slug != "festival-recap-2" {
		t.Errorf("Expected suffixed slug, got %s", second.Slug)
	}
}

const welcomeJSON = `{"subject":"Welcome to AZPDSCC","body":"<p>Glad to have you</p>"}`

func TestSubscribe_SendsWelcomeAndAdminEmails(t *testing.T) {
	mail := mocks.NewMockMailer()
	f := newServiceFixture(mocks.NewMockAIClient(welcomeJSON), mail)

	result, err := f.services.Subscriber.Subscribe(context.Background(), &models.Subscriber{
		Name:  "Simran Kaur",
		Email: "Simran@Example.com",
	})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	if result.AlreadySubscribed {
		t.Error("New subscriber should not report already subscribed")
	}
	if !result.WelcomeEmailSent {
		t.Error("Expected welcome email to be sent")
	}
	if result.Subscriber.Email != "simran@example.com" {
		t.Errorf("Email should be lowercased, got %s", result.Subscriber.Email)
	}
	if mail.SentTo("simran@example.com") != 1 {
		t.Errorf("Expected 1 welcome email, got %d", mail.SentTo("simran@example.com"))
	}
	if mail.SentTo("admin@azpdscc.org") != 1 {
		t.Errorf("Expected 1 admin notification, got %d", mail.SentTo("admin@azpdscc.org"))
	}
	if mail.Sent[0].Subject != "Welcome to AZPDSCC" {
		t.Errorf("Expected generated subject, got %s", mail.Sent[0].Subject)
	}
}

func TestSubscribe_DuplicateIsIdempotent(t *testing.T) {
	mail := mocks.NewMockMailer()
	f := newServiceFixture(nil, mail)
	sub := &models.Subscriber{Name: "Simran Kaur", Email: "simran@example.com"}

	if _, err := f.services.Subscriber.Subscribe(context.Background(), sub); err != nil {
		t.Fatalf("First subscribe failed: %v", err)
	}
	sentAfterFirst := len(mail.Sent)

	result, err := f.services.Subscriber.Subscribe(context.Background(), &models.Subscriber{
		Name: "Simran Kaur", Email: "SIMRAN@example.com",
	})
	if err != nil {
		t.Fatalf("Second subscribe failed: %v", err)
	}

	if !result.AlreadySubscribed {
		t.Error("Duplicate subscription should report already subscribed")
	}
	if len(mail.Sent) != sentAfterFirst {
		t.Errorf("Duplicate subscription should not send email, sent grew from %d to %d", sentAfterFirst, len(mail.Sent))
	}
	if len(f.subscribers.Subscribers) != 1 {
		t.Errorf("Expected 1 subscriber record, got %d", len(f.subscribers.Subscribers))
	}
}

func TestSubscribe_EmailFailureDoesNotUnwindSubscription(t *testing.T) {
	mail := mocks.NewMockMailer()
	mail.Err = errors.New("provider rejected")
	f := newServiceFixture(nil, mail)

	result, err := f.services.Subscriber.Subscribe(context.Background(), &models.Subscriber{
		Name: "Simran Kaur", Email: "simran@example.com",
	})
	if err != nil {
		t.Fatalf("Subscribe should survive email failure: %v", err)
	}

	if result.WelcomeEmailSent {
		t.Error("Welcome email should not report sent")
	}
	if result.EmailError == "" {
		t.Error("Expected the email error to be surfaced")
	}
	if len(f.subscribers.Subscribers) != 1 {
		t.Error("Subscription should stand despite email failure")
	}
}

func TestSubscribe_FallbackWelcomeWithoutModelProvider(t *testing.T) {
	mail := mocks.NewMockMailer()
	f := newServiceFixture(nil, mail)

	result, err := f.services.Subscriber.Subscribe(context.Background(), &models.Subscriber{
		Name: "Simran Kaur", Email: "simran@example.com",
	})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	if !result.WelcomeEmailSent {
		t.Error("Fallback welcome email should still be sent")
	}
	if len(mail.Sent) == 0 || mail.Sent[0].Subject == "" || mail.Sent[0].HTML == "" {
		t.Error("Fallback welcome email should carry subject and body")
	}
}

func TestVendorCheckIn_Idempotent(t *testing.T) {
	f := newServiceFixture(nil, nil)
	app, err := f.services.Vendor.Apply(context.Background(), &models.VendorApplication{
		Name:         "Harpreet Singh",
		Organization: "Singh Sweets",
		Email:        "harpreet@example.com",
		BoothType:    "food",
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if app.CheckInStatus != models.CheckInStatusPending {
		t.Fatalf("New application should be pending, got %s", app.CheckInStatus)
	}

	first, err := f.services.Vendor.CheckIn(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if first.AlreadyCheckedIn {
		t.Error("First scan should not report already checked in")
	}
	if first.Application.CheckInStatus != models.CheckInStatusCheckedIn {
		t.Errorf("Expected checkedIn status, got %s", first.Application.CheckInStatus)
	}
	if first.Application.CheckedInAt == nil {
		t.Fatal("CheckedInAt should be set")
	}
	firstAt := *first.Application.CheckedInAt

	second, err := f.services.Vendor.CheckIn(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("Second CheckIn failed: %v", err)
	}
	if !second.AlreadyCheckedIn {
		t.Error("Second scan should report already checked in")
	}
	if !second.Application.CheckedInAt.Equal(firstAt) {
		t.Error("Second scan must not rewrite the check-in timestamp")
	}
}

func TestVendorCheckIn_NotFound(t *testing.T) {
	f := newServiceFixture(nil, nil)

	_, err := f.services.Vendor.CheckIn(context.Background(), "no-such-app")
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestVendorCheckInPassPNG(t *testing.T) {
	f := newServiceFixture(nil, nil)
	app, _ := f.services.Vendor.Apply(context.Background(), &models.VendorApplication{
		Name:         "Harpreet Singh",
		Organization: "Singh Sweets",
		Email:        "harpreet@example.com",
		BoothType:    "food",
	})

	png, err := f.services.Vendor.CheckInPassPNG(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("CheckInPassPNG failed: %v", err)
	}

	pngHeader := []byte{0x89, 'P', 'N', 'G'}
	if len(png) < 4 || !bytes.Equal(png[:4], pngHeader) {
		t.Error("Expected a PNG image")
	}
}

func TestSponsorList_OrderedByLevelThenName(t *testing.T) {
	f := newServiceFixture(nil, nil)
	seed := []*models.Sponsor{
		{ID: "s1", Name: "Zeta Motors", Level: models.SponsorLevelBronze},
		{ID: "s2", Name: "Desert Diamonds", Level: models.SponsorLevelDiamond},
		{ID: "s3", Name: "Valley Grocers", Level: models.SponsorLevelGold},
		{ID: "s4", Name: "Apex Insurance", Level: models.SponsorLevelGold},
	}
	for _, s := range seed {
		f.sponsors.Sponsors[s.ID] = s
	}

	sponsors, err := f.services.Sponsor.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"Desert Diamonds", "Apex Insurance", "Valley Grocers", "Zeta Motors"}
	if len(sponsors) != len(want) {
		t.Fatalf("Expected %d sponsors, got %d", len(want), len(sponsors))
	}
	for i, name := range want {
		if sponsors[i].Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, sponsors[i].Name)
		}
	}
}

func TestEventGenerate_UniqueSlug(t *testing.T) {
	aiClient := mocks.NewMockAIClient(
		`{"shortDescription":"Short","fullDescription":"<p>Full</p>"}`,
	)
	f := newServiceFixture(aiClient, nil)
	f.events.Events["existing"] = &models.Event{ID: "existing", Slug: "holi-festival", Name: "Holi Festival"}

	event, err := f.services.Event.Generate(context.Background(), &service.GenerateEventRequest{
		Name: "Holi Festival",
		Date: "2026-03-14",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if event.Slug != "holi-festival-2" {
		t.Errorf("Expected deduplicated slug, got %s", event.Slug)
	}
	if event.Category != "Community" {
		t.Errorf("Expected default category, got %s", event.Category)
	}
}

func TestEventGenerate_InvalidModelOutput(t *testing.T) {
	f := newServiceFixture(mocks.NewMockAIClient(`{"shortDescription":""}`), nil)

	_, err := f.services.Event.Generate(context.Background(), &service.GenerateEventRequest{
		Name: "Holi Festival",
		Date: "2026-03-14",
	})

	var invalid *ai.ErrInvalidOutput
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected ErrInvalidOutput, got %v", err)
	}
	if len(f.events.Events) != 0 {
		t.Error("No event should be stored on invalid model output")
	}
}

func TestChatReply_FallbackWithoutModelProvider(t *testing.T) {
	f := newServiceFixture(nil, nil)

	out, err := f.services.Chat.Reply(context.Background(), "When is the next mela?")
	if err != nil {
		t.Fatalf("Reply failed: %v", err)
	}
	if out.Reply == "" {
		t.Error("Expected a fallback reply")
	}
	if !out.Fallback {
		t.Error("Reply should be marked as fallback")
	}
}
