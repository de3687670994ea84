package optimize

import "fmt"

// Hint steers the caller toward a follow-up surface after a failure.
type Hint string

const (
	// HintSettings points at the credential configuration surface.
	HintSettings Hint = "settings"
	// HintGuide points at the API-key setup guide.
	HintGuide Hint = "guide"
)

// UserMessage returns the human-readable message and optional steering hint
// for a taxonomy kind. The limit parameter only feeds the quota message.
func UserMessage(kind Kind, limit int) (string, Hint) {
	switch kind {
	case KindMissingCredential, KindInvalidCredential:
		return "The provided API key is invalid or missing. Please check your key in the settings and refer to the guide for help.", HintGuide
	case KindServiceUnavailable:
		return "The free daily generation service is currently unavailable. Please set your own Google Gemini API key in the settings to use the app.", HintSettings
	case KindQuotaExhausted:
		return fmt.Sprintf("You've used all %d free daily generations. To continue creating, please add your own API key as explained in the guide below.", limit), HintGuide
	case KindRateLimitExceeded:
		return "You've made too many requests in a short period. Please wait a moment and try again. This is a limit from the Gemini API.", ""
	case KindContentBlockedSafety:
		return "Your request or the AI's response was blocked due to safety settings. Please adjust your topic to be less sensitive and try again.", ""
	case KindContentBlocked:
		return "The AI's response was blocked. This can happen for various reasons, such as generating repetitive content. Please try adjusting your prompt.", ""
	case KindInvalidRequest:
		return "The AI model couldn't process the request. This can be caused by an overly complex prompt or a temporary issue with the service. Please try simplifying your topic and try again.", ""
	case KindEmptyResponse:
		return "The AI returned an empty response. This might be due to a very restrictive prompt. Try adjusting your topic or target audience.", ""
	case KindMalformedResponse:
		return "The AI returned a malformed response. This is an internal error, please try generating again.", ""
	}
	return "There was an issue contacting the AI service. Please check your internet connection and try again in a few moments. If the problem persists, the service may be temporarily unavailable.", ""
}
