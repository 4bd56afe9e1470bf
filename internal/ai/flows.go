package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ErrInvalidOutput wraps every schema mismatch coming back from the
// model, so callers can distinguish a bad generation from a transport
// failure.
type ErrInvalidOutput struct {
	Flow   string
	Reason string
}

func (e *ErrInvalidOutput) Error() string {
	return fmt.Sprintf("flow %s: invalid model output: %s", e.Flow, e.Reason)
}

// EventDescriptionsInput is the structured input for the event
// description flow
type EventDescriptionsInput struct {
	Name     string
	Date     string
	Location string
	Category string
}

// EventDescriptionsOutput is the validated output of the event
// description flow
type EventDescriptionsOutput struct {
	ShortDescription string `json:"shortDescription"`
	FullDescription  string `json:"fullDescription"`
}

// GenerateEventDescriptions produces the short and full marketing copy
// for an event. It never returns a record with empty required fields:
// a malformed or empty model response yields a descriptive error.
func GenerateEventDescriptions(ctx context.Context, c Client, in EventDescriptionsInput) (*EventDescriptionsOutput, error) {
	userPrompt := fmt.Sprintf(
		"Event name: %s\nDate: %s\nLocation: %s\nCategory: %s",
		in.Name, in.Date, in.Location, in.Category,
	)

	raw, err := c.GenerateJSON(ctx, eventDescriptionsSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("generate event descriptions: %w", err)
	}

	var out EventDescriptionsOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, &ErrInvalidOutput{Flow: "eventDescriptions", Reason: "response is not valid JSON"}
	}
	if strings.TrimSpace(out.ShortDescription) == "" {
		return nil, &ErrInvalidOutput{Flow: "eventDescriptions", Reason: "shortDescription is empty"}
	}
	if strings.TrimSpace(out.FullDescription) == "" {
		return nil, &ErrInvalidOutput{Flow: "eventDescriptions", Reason: "fullDescription is empty"}
	}

	// Card layout caps the teaser length; trim rather than fail.
	if len(out.ShortDescription) > 160 {
		out.ShortDescription = out.ShortDescription[:157] + "..."
	}

	return &out, nil
}

// BlogPostInput is the structured input for the blog post flow
type BlogPostInput struct {
	Topic  string
	Author string
}

// BlogPostOutput is the validated output of the blog post flow
type BlogPostOutput struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

// GenerateBlogPost produces a complete post from a topic
func GenerateBlogPost(ctx context.Context, c Client, in BlogPostInput) (*BlogPostOutput, error) {
	userPrompt := fmt.Sprintf("Topic: %s\nAuthor: %s", in.Topic, in.Author)

	raw, err := c.GenerateJSON(ctx, blogPostSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("generate blog post: %w", err)
	}

	var out BlogPostOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, &ErrInvalidOutput{Flow: "blogPost", Reason: "response is not valid JSON"}
	}
	if strings.TrimSpace(out.Title) == "" {
		return nil, &ErrInvalidOutput{Flow: "blogPost", Reason: "title is empty"}
	}
	if strings.TrimSpace(out.Excerpt) == "" {
		return nil, &ErrInvalidOutput{Flow: "blogPost", Reason: "excerpt is empty"}
	}
	if strings.TrimSpace(out.Content) == "" {
		return nil, &ErrInvalidOutput{Flow: "blogPost", Reason: "content is empty"}
	}

	return &out, nil
}

// SocialPostsInput is the structured input for the social posts flow
type SocialPostsInput struct {
	EventName string
	Date      string
	Location  string
	Link      string
}

// SocialPostsOutput is the validated output of the social posts flow
type SocialPostsOutput struct {
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
}

// GenerateSocialPosts produces per-platform promotional copy for an event
func GenerateSocialPosts(ctx context.Context, c Client, in SocialPostsInput) (*SocialPostsOutput, error) {
	userPrompt := fmt.Sprintf(
		"Event: %s\nDate: %s\nLocation: %s\nLink: %s",
		in.EventName, in.Date, in.Location, in.Link,
	)

	raw, err := c.GenerateJSON(ctx, socialPostsSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("generate social posts: %w", err)
	}

	var out SocialPostsOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, &ErrInvalidOutput{Flow: "socialPosts", Reason: "response is not valid JSON"}
	}
	if strings.TrimSpace(out.Twitter) == "" || strings.TrimSpace(out.Facebook) == "" || strings.TrimSpace(out.Instagram) == "" {
		return nil, &ErrInvalidOutput{Flow: "socialPosts", Reason: "one or more platform posts are empty"}
	}

	return &out, nil
}

// WelcomeEmailInput is the structured input for the welcome email flow
type WelcomeEmailInput struct {
	Name string
}

// WelcomeEmailOutput is the output of the welcome email flow. Fallback
// reports whether the static copy was substituted for a failed
// generation.
type WelcomeEmailOutput struct {
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Fallback bool   `json:"-"`
}

// GenerateWelcomeEmail produces the subscriber welcome email. Unlike the
// other flows it never fails: any model or schema error substitutes the
// hand-written fallback copy so the subscription flow can always send
// something.
func GenerateWelcomeEmail(ctx context.Context, c Client, in WelcomeEmailInput) *WelcomeEmailOutput {
	fallback := &WelcomeEmailOutput{
		Subject:  fallbackWelcomeSubject,
		Body:     fmt.Sprintf(fallbackWelcomeBody, in.Name),
		Fallback: true,
	}
	if c == nil {
		return fallback
	}

	raw, err := c.GenerateJSON(ctx, welcomeEmailSystemPrompt, fmt.Sprintf("Subscriber name: %s", in.Name))
	if err != nil {
		return fallback
	}

	var out WelcomeEmailOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return fallback
	}
	if strings.TrimSpace(out.Subject) == "" || strings.TrimSpace(out.Body) == "" {
		return fallback
	}

	return &out
}

// ChatInput is the structured input for the chatbot flow
type ChatInput struct {
	Message string
}

// ChatOutput is the output of the chatbot flow
type ChatOutput struct {
	Reply    string `json:"reply"`
	Fallback bool   `json:"-"`
}

// GenerateChatReply answers a visitor question, substituting a static
// reply when the model call fails or returns a bad shape
func GenerateChatReply(ctx context.Context, c Client, in ChatInput) *ChatOutput {
	fallback := &ChatOutput{Reply: fallbackChatReply, Fallback: true}
	if c == nil {
		return fallback
	}

	raw, err := c.GenerateJSON(ctx, chatSystemPrompt, in.Message)
	if err != nil {
		return fallback
	}

	var out ChatOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return fallback
	}
	if strings.TrimSpace(out.Reply) == "" {
		return fallback
	}

	return &out
}
