package optimize

import "strings"

// Platform identifies a target social network.
type Platform string

const (
	PlatformYouTube       Platform = "youtube"
	PlatformYouTubeShorts Platform = "youtube_shorts"
	PlatformInstagram     Platform = "instagram"
	PlatformFacebook      Platform = "facebook"
	PlatformSnapchat      Platform = "snapchat"
	PlatformTikTok        Platform = "tiktok"
)

// AllPlatforms lists the supported platforms in display order.
var AllPlatforms = []Platform{
	PlatformYouTube,
	PlatformYouTubeShorts,
	PlatformInstagram,
	PlatformFacebook,
	PlatformSnapchat,
	PlatformTikTok,
}

// Known reports whether p is a supported platform identifier.
func (p Platform) Known() bool {
	switch p {
	case PlatformYouTube, PlatformYouTubeShorts, PlatformInstagram,
		PlatformFacebook, PlatformSnapchat, PlatformTikTok:
		return true
	}
	return false
}

// ParsePlatform normalizes a raw identifier. The second return is false for
// unknown identifiers; callers ignore those rather than erroring.
func ParsePlatform(raw string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(raw)))
	return p, p.Known()
}

func platformNames(platforms []Platform) []string {
	names := make([]string, 0, len(platforms))
	for _, p := range platforms {
		names = append(names, string(p))
	}
	return names
}
