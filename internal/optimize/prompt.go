package optimize

import (
	"fmt"
	"strings"
)

// ComposePrompt renders the generation instruction for one content brief.
// Validation of topic/platform non-emptiness belongs to the caller; this is a
// pure rendering step.
func ComposePrompt(input UserInput) string {
	var b strings.Builder

	b.WriteString("Act as a world-class Social Media content strategist and viral growth hacker named GROWit.\n")
	b.WriteString("Your tone is enthusiastic, creative, and data-driven.\n")
	b.WriteString("Your goal is to generate a complete, viral optimization plan for a short-form video based on the user's request, tailored for each social media platform they have selected.\n\n")

	b.WriteString("User's Request:\n")
	fmt.Fprintf(&b, "- Video Topic: %q\n", input.Topic)
	fmt.Fprintf(&b, "- Target Audience: %q\n", input.TargetAudience)
	fmt.Fprintf(&b, "- Language: %q\n", input.Language)
	fmt.Fprintf(&b, "- Target Platforms: %s\n\n", strings.Join(platformNames(input.Platforms), ", "))

	b.WriteString("Analyze this request and provide a comprehensive optimization plan.\n")
	b.WriteString("For each platform, provide content that is natively optimized for that platform's algorithm and user expectations.\n")
	b.WriteString("Specifically for YouTube, provide a list of 3-5 diverse and highly engaging title options.\n")
	b.WriteString("Generate the response in a structured JSON format according to the provided schema. Be creative, engaging, and use emojis where appropriate.\n")

	return b.String()
}
