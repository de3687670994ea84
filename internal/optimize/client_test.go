package optimize

import (
	"context"
	"errors"
	"testing"

	"github.com/kkkk66/GROWit/internal/llm"
)

type stubLLM struct {
	resp    string
	err     error
	lastReq llm.Request
	calls   int
}

func (s *stubLLM) GenerateStructured(ctx context.Context, req llm.Request) (string, error) {
	_ = ctx
	s.lastReq = req
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.resp, nil
}

const youtubeOnlyResponse = `{
	"shared": {"bestTimeToPost": "6 PM EST", "trendingScore": 82},
	"youtube": {
		"titleOptions": ["Title A", "Title B", "Title C"],
		"description": "A description with a CTA.",
		"keywords": ["bread", "baking", "sourdough", "starter", "recipe"],
		"hashtags": ["baking", "sourdough"]
	}
}`

func testInput(platforms ...Platform) UserInput {
	return UserInput{
		Topic:          "sourdough bread",
		TargetAudience: "home bakers",
		Language:       "English",
		Platforms:      platforms,
	}
}

func TestGenerateMissingCredential(t *testing.T) {
	stub := &stubLLM{resp: youtubeOnlyResponse}
	client := &Client{LLM: stub}

	_, err := client.Generate(context.Background(), testInput(PlatformYouTube), "  ")
	if KindOf(err) != KindMissingCredential {
		t.Fatalf("expected missing_credential, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("provider must not be called without a credential")
	}
}

func TestGenerateSuccess(t *testing.T) {
	stub := &stubLLM{resp: youtubeOnlyResponse}
	client := &Client{LLM: stub}

	result, err := client.Generate(context.Background(), testInput(PlatformYouTube), "key-123")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Shared.TrendingScore != 82 {
		t.Fatalf("trendingScore = %g, want 82", result.Shared.TrendingScore)
	}
	if result.YouTube == nil || len(result.YouTube.TitleOptions) != 3 {
		t.Fatalf("expected youtube payload with 3 titles, got %+v", result.YouTube)
	}
	for _, p := range []Platform{PlatformInstagram, PlatformFacebook, PlatformSnapchat, PlatformTikTok, PlatformYouTubeShorts} {
		if result.Has(p) {
			t.Fatalf("unrequested platform %s present in result", p)
		}
	}

	if stub.lastReq.Temperature != generationTemperature {
		t.Fatalf("temperature = %g, want %g", stub.lastReq.Temperature, generationTemperature)
	}
	if stub.lastReq.Schema == nil || stub.lastReq.Schema.Properties["youtube"] == nil {
		t.Fatalf("request schema must cover the requested platform")
	}
	if stub.lastReq.APIKey != "key-123" {
		t.Fatalf("credential not forwarded to provider")
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	client := &Client{LLM: &stubLLM{resp: "   \n  "}}

	_, err := client.Generate(context.Background(), testInput(PlatformYouTube), "key")
	if KindOf(err) != KindEmptyResponse {
		t.Fatalf("expected empty_response, got %v", err)
	}
}

func TestGenerateMalformedJSON(t *testing.T) {
	client := &Client{LLM: &stubLLM{resp: "{not-json"}}

	_, err := client.Generate(context.Background(), testInput(PlatformYouTube), "key")
	if KindOf(err) != KindMalformedResponse {
		t.Fatalf("expected malformed_response, got %v", err)
	}
}

func TestGenerateMissingPlatformSection(t *testing.T) {
	// Valid JSON, but the tiktok section the schema demanded is absent.
	client := &Client{LLM: &stubLLM{resp: youtubeOnlyResponse}}

	_, err := client.Generate(context.Background(), testInput(PlatformYouTube, PlatformTikTok), "key")
	if KindOf(err) != KindMalformedResponse {
		t.Fatalf("expected malformed_response for missing section, got %v", err)
	}
}

func TestGenerateTrendingScoreOutOfRange(t *testing.T) {
	resp := `{"shared": {"bestTimeToPost": "noon", "trendingScore": 140},
		"instagram": {"caption": "c", "hashtags": ["a"]}}`
	client := &Client{LLM: &stubLLM{resp: resp}}

	_, err := client.Generate(context.Background(), testInput(PlatformInstagram), "key")
	if KindOf(err) != KindMalformedResponse {
		t.Fatalf("expected malformed_response for out-of-range score, got %v", err)
	}
}

func TestGenerateClassifiesProviderFault(t *testing.T) {
	client := &Client{LLM: &stubLLM{err: errors.New("gemini http status 429: resource exhausted")}}

	_, err := client.Generate(context.Background(), testInput(PlatformYouTube), "key")
	if KindOf(err) != KindRateLimitExceeded {
		t.Fatalf("expected rate_limit_exceeded, got %v", err)
	}
}
