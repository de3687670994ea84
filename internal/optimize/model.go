package optimize

// UserInput is the content brief submitted for one generation attempt.
type UserInput struct {
	Topic          string     `json:"topic"`
	TargetAudience string     `json:"targetAudience"`
	Language       string     `json:"language"`
	Platforms      []Platform `json:"platforms"`
}

// YouTubeResult holds the payload shared by youtube and youtube_shorts.
type YouTubeResult struct {
	TitleOptions []string `json:"titleOptions"`
	Description  string   `json:"description"`
	Keywords     []string `json:"keywords"`
	Hashtags     []string `json:"hashtags"`
}

type InstagramResult struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
}

type FacebookResult struct {
	PostText string   `json:"postText"`
	Hashtags []string `json:"hashtags"`
}

type SnapchatResult struct {
	Caption        string   `json:"caption"`
	TrendingSounds []string `json:"trendingSounds"`
}

type TikTokResult struct {
	Caption        string   `json:"caption"`
	Hashtags       []string `json:"hashtags"`
	TrendingSounds []string `json:"trendingSounds"`
}

// SharedResult is present on every successful generation.
type SharedResult struct {
	BestTimeToPost string  `json:"bestTimeToPost"`
	TrendingScore  float64 `json:"trendingScore"`
}

// OptimizationResult is the typed model output. A platform field is non-nil
// exactly when that platform was requested; the schema never asks the model
// for anything else, so no result-side filtering is performed.
type OptimizationResult struct {
	Shared        SharedResult     `json:"shared"`
	YouTube       *YouTubeResult   `json:"youtube,omitempty"`
	YouTubeShorts *YouTubeResult   `json:"youtube_shorts,omitempty"`
	Instagram     *InstagramResult `json:"instagram,omitempty"`
	Facebook      *FacebookResult  `json:"facebook,omitempty"`
	Snapchat      *SnapchatResult  `json:"snapchat,omitempty"`
	TikTok        *TikTokResult    `json:"tiktok,omitempty"`
}

// Has reports whether the result carries a payload for the given platform.
func (r *OptimizationResult) Has(p Platform) bool {
	if r == nil {
		return false
	}
	switch p {
	case PlatformYouTube:
		return r.YouTube != nil
	case PlatformYouTubeShorts:
		return r.YouTubeShorts != nil
	case PlatformInstagram:
		return r.Instagram != nil
	case PlatformFacebook:
		return r.Facebook != nil
	case PlatformSnapchat:
		return r.Snapchat != nil
	case PlatformTikTok:
		return r.TikTok != nil
	}
	return false
}
