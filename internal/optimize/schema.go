package optimize

import "github.com/kkkk66/GROWit/internal/llm"

// The field descriptions double as generation hints; the model shapes its
// output around them, so the wording matters as much as the types.

func youtubeSchema() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"titleOptions": {
				Type:        llm.TypeArray,
				Items:       &llm.Schema{Type: llm.TypeString},
				Description: "A list of 3-5 viral, SEO-optimized title options for the YouTube Short. They should be catchy and include emojis.",
			},
			"description": {
				Type:        llm.TypeString,
				Description: "A detailed YouTube description with relevant keywords, a strong call-to-action (CTA), and placeholder for links.",
			},
			"keywords": {
				Type:        llm.TypeArray,
				Items:       &llm.Schema{Type: llm.TypeString},
				Description: "A list of 5-10 high-ranking, niche-based keywords for YouTube.",
			},
			"hashtags": {
				Type:        llm.TypeArray,
				Items:       &llm.Schema{Type: llm.TypeString},
				Description: "A list of relevant hashtags for YouTube, without the '#' symbol.",
			},
		},
		Required: []string{"titleOptions", "description", "keywords", "hashtags"},
	}
}

func instagramSchema() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"caption": {
				Type:        llm.TypeString,
				Description: "An engaging Instagram caption with emojis, a hook, and a clear call-to-action.",
			},
			"hashtags": {
				Type:        llm.TypeArray,
				Items:       &llm.Schema{Type: llm.TypeString},
				Description: "A list of 10-15 trending and niche hashtags for Instagram Reels, without the '#' symbol.",
			},
		},
		Required: []string{"caption", "hashtags"},
	}
}

func facebookSchema() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"postText": {
				Type:        llm.TypeString,
				Description: "A compelling post text for a Facebook Reel or video, designed to encourage shares and comments.",
			},
			"hashtags": {
				Type:        llm.TypeArray,
				Items:       &llm.Schema{Type: llm.TypeString},
				Description: "A list of 3-5 broad and niche hashtags for Facebook, without the '#' symbol.",
			},
		},
		Required: []string{"postText", "hashtags"},
	}
}

func snapchatSchema() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"caption": {
				Type:        llm.TypeString,
				Description: "A short, punchy caption for a Snapchat Spotlight video.",
			},
			"trendingSounds": {
				Type:        llm.TypeArray,
				Items:       &llm.Schema{Type: llm.TypeString},
				Description: "A list of 1-3 suggested trending sounds or music styles for Snapchat.",
			},
		},
		Required: []string{"caption", "trendingSounds"},
	}
}

func tiktokSchema() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"caption": {
				Type:        llm.TypeString,
				Description: "A short, engaging caption for a TikTok video, including a strong hook.",
			},
			"hashtags": {
				Type:        llm.TypeArray,
				Items:       &llm.Schema{Type: llm.TypeString},
				Description: "A list of 5-7 trending and niche hashtags for TikTok, without the '#' symbol. Include at least one broad hashtag like #fyp.",
			},
			"trendingSounds": {
				Type:        llm.TypeArray,
				Items:       &llm.Schema{Type: llm.TypeString},
				Description: "A list of 1-3 suggested trending sounds or music styles for TikTok.",
			},
		},
		Required: []string{"caption", "hashtags", "trendingSounds"},
	}
}

func platformSchema(p Platform) *llm.Schema {
	switch p {
	case PlatformYouTube, PlatformYouTubeShorts:
		return youtubeSchema()
	case PlatformInstagram:
		return instagramSchema()
	case PlatformFacebook:
		return facebookSchema()
	case PlatformSnapchat:
		return snapchatSchema()
	case PlatformTikTok:
		return tiktokSchema()
	}
	return nil
}

// BuildSchema constructs the structured-output contract for one generation
// call: a mandatory shared section plus one section per requested platform.
// Unknown platform identifiers are skipped silently. The required set is
// {"shared"} plus the recognized platforms, preserving request order.
func BuildSchema(platforms []Platform) *llm.Schema {
	properties := map[string]*llm.Schema{
		"shared": {
			Type: llm.TypeObject,
			Properties: map[string]*llm.Schema{
				"bestTimeToPost": {
					Type:        llm.TypeString,
					Description: "The single best time to post across all selected platforms, including timezone.",
				},
				"trendingScore": {
					Type:        llm.TypeNumber,
					Description: "An estimated score from 0 to 100 indicating the topic's overall viral potential.",
				},
			},
			Required: []string{"bestTimeToPost", "trendingScore"},
		},
	}

	required := []string{"shared"}
	for _, p := range platforms {
		sub := platformSchema(p)
		if sub == nil {
			continue
		}
		properties[string(p)] = sub
		required = append(required, string(p))
	}

	return &llm.Schema{
		Type:       llm.TypeObject,
		Properties: properties,
		Required:   required,
	}
}
