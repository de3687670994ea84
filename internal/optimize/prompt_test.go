package optimize

import (
	"strings"
	"testing"
)

func TestComposePromptEmbedsBrief(t *testing.T) {
	input := UserInput{
		Topic:          "sourdough bread",
		TargetAudience: "home bakers",
		Language:       "English",
		Platforms:      []Platform{PlatformYouTube, PlatformTikTok},
	}

	prompt := ComposePrompt(input)

	for _, want := range []string{
		`"sourdough bread"`,
		`"home bakers"`,
		`"English"`,
		"youtube, tiktok",
		"GROWit",
		"3-5 diverse and highly engaging title options",
		"structured JSON format",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestComposePromptDeterministic(t *testing.T) {
	input := UserInput{
		Topic:     "gardening hacks",
		Language:  "Spanish",
		Platforms: []Platform{PlatformInstagram},
	}
	if ComposePrompt(input) != ComposePrompt(input) {
		t.Fatalf("prompt must be deterministic for identical input")
	}
}
