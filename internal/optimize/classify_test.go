package optimize

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyProviderError(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Kind
	}{
		{name: "api key", text: "gemini error 403 PERMISSION_DENIED: API key not valid", want: KindInvalidCredential},
		{name: "server 500", text: "gemini http status 500: boom", want: KindServiceFault},
		{name: "server 503", text: "gemini http status 503: overloaded", want: KindServiceFault},
		{name: "internal server error", text: "internal server error", want: KindServiceFault},
		{name: "safety", text: "gemini candidate blocked: safety", want: KindContentBlockedSafety},
		{name: "recitation", text: "gemini candidate blocked: recitation", want: KindContentBlocked},
		{name: "blocked", text: "gemini prompt blocked: other", want: KindContentBlocked},
		{name: "rate limit 429", text: "gemini http status 429: resource exhausted", want: KindRateLimitExceeded},
		{name: "rate limit phrase", text: "Rate limit exceeded for project", want: KindRateLimitExceeded},
		{name: "bad request 400", text: "gemini error 400 INVALID_ARGUMENT: schema too deep", want: KindInvalidRequest},
		{name: "bad request phrase", text: "Bad Request", want: KindInvalidRequest},
		{name: "unmatched", text: "connection reset by peer", want: KindServiceFault},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyProviderError(errors.New(tt.text))
			if got.Kind != tt.want {
				t.Fatalf("ClassifyProviderError(%q).Kind = %s, want %s", tt.text, got.Kind, tt.want)
			}
		})
	}
}

func TestClassifyPriorityCredentialBeforeServerFault(t *testing.T) {
	err := errors.New("API key rejected with http status 500")
	if got := ClassifyProviderError(err); got.Kind != KindInvalidCredential {
		t.Fatalf("credential check must precede server-fault check, got %s", got.Kind)
	}
}

func TestClassifyPreservesExistingKind(t *testing.T) {
	orig := NewError(KindEmptyResponse, errors.New("nothing came back"))
	wrapped := fmt.Errorf("call failed: %w", orig)

	if got := ClassifyProviderError(wrapped); got.Kind != KindEmptyResponse {
		t.Fatalf("pre-classified errors must pass through, got %s", got.Kind)
	}
}

func TestKindOfUnclassified(t *testing.T) {
	if got := KindOf(errors.New("nil pointer dereference")); got != KindServiceFault {
		t.Fatalf("unclassified errors must report service fault, got %s", got)
	}
}

func TestErrorUnwrapKeepsDiagnostics(t *testing.T) {
	cause := errors.New("detail for the logs")
	err := NewError(KindServiceFault, cause)
	if !errors.Is(err, cause) {
		t.Fatalf("taxonomy errors must retain their cause")
	}
}
