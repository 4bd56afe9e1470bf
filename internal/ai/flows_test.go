package ai_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/azpdscc/website-api/internal/ai"
	"github.com/azpdscc/website-api/internal/mocks"
)

func TestGenerateEventDescriptions(t *testing.T) {
	in := ai.EventDescriptionsInput{
		Name:     "Vaisakhi Mela",
		Date:     "2026-04-11",
		Location: "Phoenix",
		Category: "Festival",
	}

	tests := []struct {
		name       string
		response   string
		wantReason string
	}{
		{
			name:       "not json",
			response:   "sorry, I cannot do that",
			wantReason: "not valid JSON",
		},
		{
			name:       "empty short description",
			response:   `{"shortDescription":"","fullDescription":"<p>x</p>"}`,
			wantReason: "shortDescription is empty",
		},
		{
			name:       "empty full description",
			response:   `{"shortDescription":"A fair","fullDescription":"  "}`,
			wantReason: "fullDescription is empty",
		},
		{
			name:       "missing fields",
			response:   `{}`,
			wantReason: "shortDescription is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ai.GenerateEventDescriptions(context.Background(), mocks.NewMockAIClient(tt.response), in)

			var invalid *ai.ErrInvalidOutput
			if !errors.As(err, &invalid) {
				t.Fatalf("Expected ErrInvalidOutput, got %v", err)
			}
			if !strings.Contains(invalid.Reason, tt.wantReason) {
				t.Errorf("Expected reason containing %q, got %q", tt.wantReason, invalid.Reason)
			}
		})
	}
}

func TestGenerateEventDescriptions_Valid(t *testing.T) {
	client := mocks.NewMockAIClient(`{"shortDescription":"A spring fair","fullDescription":"<p>All day</p>"}`)

	out, err := ai.GenerateEventDescriptions(context.Background(), client, ai.EventDescriptionsInput{
		Name: "Vaisakhi Mela", Date: "2026-04-11",
	})
	if err != nil {
		t.Fatalf("GenerateEventDescriptions failed: %v", err)
	}
	if out.ShortDescription != "A spring fair" {
		t.Errorf("Unexpected short description: %s", out.ShortDescription)
	}
	if client.Calls != 1 {
		t.Errorf("Expected 1 model call, got %d", client.Calls)
	}
}

func TestGenerateEventDescriptions_TrimsLongTeaser(t *testing.T) {
	long := strings.Repeat("a", 200)
	client := mocks.NewMockAIClient(`{"shortDescription":"` + long + `","fullDescription":"<p>x</p>"}`)

	out, err := ai.GenerateEventDescriptions(context.Background(), client, ai.EventDescriptionsInput{Name: "X"})
	if err != nil {
		t.Fatalf("GenerateEventDescriptions failed: %v", err)
	}
	if len(out.ShortDescription) != 160 {
		t.Errorf("Expected teaser trimmed to 160 chars, got %d", len(out.ShortDescription))
	}
	if !strings.HasSuffix(out.ShortDescription, "...") {
		t.Error("Trimmed teaser should end with ellipsis")
	}
}

func TestGenerateEventDescriptions_TransportError(t *testing.T) {
	client := mocks.NewMockAIClient()
	client.Err = errors.New("connection refused")

	_, err := ai.GenerateEventDescriptions(context.Background(), client, ai.EventDescriptionsInput{Name: "X"})
	if err == nil {
		t.Fatal("Expected an error")
	}
	var invalid *ai.ErrInvalidOutput
	if errors.As(err, &invalid) {
		t.Error("Transport failures should not be reported as invalid output")
	}
}

func TestGenerateBlogPost(t *testing.T) {
	tests := []struct {
		name       string
		response   string
		wantReason string
	}{
		{"not json", "nope", "not valid JSON"},
		{"empty title", `{"title":"","excerpt":"x","content":"y"}`, "title is empty"},
		{"empty excerpt", `{"title":"T","excerpt":"","content":"y"}`, "excerpt is empty"},
		{"empty content", `{"title":"T","excerpt":"x","content":" "}`, "content is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ai.GenerateBlogPost(context.Background(), mocks.NewMockAIClient(tt.response), ai.BlogPostInput{Topic: "Seva"})

			var invalid *ai.ErrInvalidOutput
			if !errors.As(err, &invalid) {
				t.Fatalf("Expected ErrInvalidOutput, got %v", err)
			}
			if !strings.Contains(invalid.Reason, tt.wantReason) {
				t.Errorf("Expected reason containing %q, got %q", tt.wantReason, invalid.Reason)
			}
		})
	}

	out, err := ai.GenerateBlogPost(context.Background(),
		mocks.NewMockAIClient(`{"title":"Seva","excerpt":"Service","content":"<p>x</p>"}`),
		ai.BlogPostInput{Topic: "Seva", Author: "AZPDSCC Team"})
	if err != nil {
		t.Fatalf("GenerateBlogPost failed: %v", err)
	}
	if out.Title != "Seva" {
		t.Errorf("Unexpected title: %s", out.Title)
	}
}

func TestGenerateSocialPosts(t *testing.T) {
	_, err := ai.GenerateSocialPosts(context.Background(),
		mocks.NewMockAIClient(`{"twitter":"t","facebook":"","instagram":"i"}`),
		ai.SocialPostsInput{EventName: "Mela"})

	var invalid *ai.ErrInvalidOutput
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected ErrInvalidOutput for missing platform, got %v", err)
	}

	out, err := ai.GenerateSocialPosts(context.Background(),
		mocks.NewMockAIClient(`{"twitter":"t","facebook":"f","instagram":"i"}`),
		ai.SocialPostsInput{EventName: "Mela"})
	if err != nil {
		t.Fatalf("GenerateSocialPosts failed: %v", err)
	}
	if out.Twitter != "t" || out.Facebook != "f" || out.Instagram != "i" {
		t.Errorf("Unexpected output: %+v", out)
	}
}

func TestGenerateWelcomeEmail_NeverFails(t *testing.T) {
	in := ai.WelcomeEmailInput{Name: "Simran"}

	// No client at all
	out := ai.GenerateWelcomeEmail(context.Background(), nil, in)
	if !out.Fallback {
		t.Error("Nil client should yield the fallback")
	}
	if out.Subject == "" || out.Body == "" {
		t.Error("Fallback must carry subject and body")
	}
	if !strings.Contains(out.Body, "Simran") {
		t.Error("Fallback body should address the subscriber by name")
	}

	// Transport failure
	failing := mocks.NewMockAIClient()
	failing.Err = errors.New("timeout")
	if out := ai.GenerateWelcomeEmail(context.Background(), failing, in); !out.Fallback {
		t.Error("Transport failure should yield the fallback")
	}

	// Bad shape
	if out := ai.GenerateWelcomeEmail(context.Background(), mocks.NewMockAIClient(`{"subject":""}`), in); !out.Fallback {
		t.Error("Empty subject should yield the fallback")
	}

	// Good generation
	out = ai.GenerateWelcomeEmail(context.Background(),
		mocks.NewMockAIClient(`{"subject":"Welcome","body":"<p>Hi</p>"}`), in)
	if out.Fallback {
		t.Error("Valid generation should not be marked fallback")
	}
	if out.Subject != "Welcome" {
		t.Errorf("Unexpected subject: %s", out.Subject)
	}
}

func TestGenerateChatReply_NeverFails(t *testing.T) {
	in := ai.ChatInput{Message: "When is the next event?"}

	if out := ai.GenerateChatReply(context.Background(), nil, in); !out.Fallback || out.Reply == "" {
		t.Error("Nil client should yield a non-empty fallback reply")
	}

	if out := ai.GenerateChatReply(context.Background(), mocks.NewMockAIClient("garbage"), in); !out.Fallback {
		t.Error("Malformed output should yield the fallback")
	}

	out := ai.GenerateChatReply(context.Background(), mocks.NewMockAIClient(`{"reply":"Next Saturday!"}`), in)
	if out.Fallback {
		t.Error("Valid generation should not be marked fallback")
	}
	if out.Reply != "Next Saturday!" {
		t.Errorf("Unexpected reply: %s", out.Reply)
	}
}
