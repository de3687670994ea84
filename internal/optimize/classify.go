package optimize

import (
	"errors"
	"strings"
)

// Provider faults arrive as unstructured text, so classification scans the
// lower-cased error string against a prioritized rule table. First match
// wins; order is load-bearing (a message mentioning both "api key" and "500"
// is a credential problem, not a server fault). Anything unmatched degrades
// to the generic service fault.

type classificationRule struct {
	kind  Kind
	match func(string) bool
}

func containsAny(substrings ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range substrings {
			if strings.Contains(s, sub) {
				return true
			}
		}
		return false
	}
}

var classificationRules = []classificationRule{
	{KindInvalidCredential, containsAny("api key")},
	{KindServiceFault, containsAny("500", "503", "internal server error")},
	{KindContentBlockedSafety, containsAny("safety")},
	{KindContentBlocked, containsAny("recitation", "blocked")},
	{KindRateLimitExceeded, containsAny("429", "rate limit")},
	{KindInvalidRequest, containsAny("400", "invalid argument", "bad request")},
}

// ClassifyProviderError maps a raw provider/transport failure onto the
// taxonomy. Errors already carrying a Kind pass through unchanged.
func ClassifyProviderError(err error) *Error {
	if err == nil {
		return nil
	}
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr
	}

	text := strings.ToLower(err.Error())
	for _, rule := range classificationRules {
		if rule.match(text) {
			return NewError(rule.kind, err)
		}
	}
	return NewError(KindServiceFault, err)
}
