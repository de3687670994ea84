package optimize

import (
	"errors"
	"fmt"
)

// validateResult checks the parsed payload against the platform set that was
// requested. The provider promises schema conformance, but the promise is not
// trusted: a missing section, a missing mandatory field, or an out-of-range
// trending score all count as a malformed response.
func validateResult(result *OptimizationResult, platforms []Platform) error {
	if result == nil {
		return errors.New("result is nil")
	}
	if result.Shared.BestTimeToPost == "" {
		return errors.New("shared.bestTimeToPost is required")
	}
	if result.Shared.TrendingScore < 0 || result.Shared.TrendingScore > 100 {
		return fmt.Errorf("shared.trendingScore must be between 0 and 100, got %g", result.Shared.TrendingScore)
	}

	for _, p := range platforms {
		if !p.Known() {
			continue
		}
		if err := validatePlatformPayload(result, p); err != nil {
			return err
		}
	}
	return nil
}

func validatePlatformPayload(result *OptimizationResult, p Platform) error {
	switch p {
	case PlatformYouTube:
		return validateYouTube(result.YouTube, p)
	case PlatformYouTubeShorts:
		return validateYouTube(result.YouTubeShorts, p)
	case PlatformInstagram:
		if result.Instagram == nil {
			return missingSection(p)
		}
		if result.Instagram.Caption == "" || len(result.Instagram.Hashtags) == 0 {
			return incompleteSection(p)
		}
	case PlatformFacebook:
		if result.Facebook == nil {
			return missingSection(p)
		}
		if result.Facebook.PostText == "" || len(result.Facebook.Hashtags) == 0 {
			return incompleteSection(p)
		}
	case PlatformSnapchat:
		if result.Snapchat == nil {
			return missingSection(p)
		}
		if result.Snapchat.Caption == "" || len(result.Snapchat.TrendingSounds) == 0 {
			return incompleteSection(p)
		}
	case PlatformTikTok:
		if result.TikTok == nil {
			return missingSection(p)
		}
		if result.TikTok.Caption == "" || len(result.TikTok.Hashtags) == 0 || len(result.TikTok.TrendingSounds) == 0 {
			return incompleteSection(p)
		}
	}
	return nil
}

func validateYouTube(payload *YouTubeResult, p Platform) error {
	if payload == nil {
		return missingSection(p)
	}
	if len(payload.TitleOptions) == 0 || payload.Description == "" ||
		len(payload.Keywords) == 0 || len(payload.Hashtags) == 0 {
		return incompleteSection(p)
	}
	return nil
}

func missingSection(p Platform) error {
	return fmt.Errorf("missing %s section in response", p)
}

func incompleteSection(p Platform) error {
	return fmt.Errorf("incomplete %s section in response", p)
}
