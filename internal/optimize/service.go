package optimize

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kkkk66/GROWit/internal/credentials"
	"github.com/kkkk66/GROWit/internal/history"
	"github.com/kkkk66/GROWit/internal/quota"
	"github.com/kkkk66/GROWit/internal/shared/metrics"
	"github.com/kkkk66/GROWit/internal/shared/telemetry"
)

// Service sequences credential selection, quota metering, the generation
// call, and history recording for one attempt.
type Service struct {
	Client       *Client
	Quota        *quota.Service
	Credentials  *credentials.Service
	History      history.Repo
	SharedAPIKey string
}

// Outcome is a successful generation plus its recorded history entry.
type Outcome struct {
	Entry  history.Entry
	Result *OptimizationResult
}

// Generate runs one attempt for the given client. On the shared-credential
// path the usage counter is charged before the provider call is awaited and
// is not refunded on failure. History is only written on success.
// Topic/platform non-emptiness is enforced by the HTTP handler before this
// point, mirroring the submit gating of the original UI.
func (s *Service) Generate(ctx context.Context, clientID string, input UserInput) (*Outcome, error) {
	apiKey, err := s.Credentials.Get(ctx, clientID)
	if err != nil {
		return nil, NewError(KindServiceFault, err)
	}

	if apiKey == "" {
		if strings.TrimSpace(s.SharedAPIKey) == "" {
			return nil, NewError(KindServiceUnavailable, errors.New("shared credential not provisioned"))
		}
		if _, err := s.Quota.Reserve(ctx, clientID); err != nil {
			if errors.Is(err, quota.ErrLimitReached) {
				return nil, NewError(KindQuotaExhausted, err)
			}
			return nil, NewError(KindServiceFault, err)
		}
		apiKey = s.SharedAPIKey
	}

	metrics.IncGenerationStarted()
	start := time.Now()

	result, err := s.Client.Generate(ctx, input, apiKey)
	metrics.ObserveGenerationDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		kind := KindOf(err)
		metrics.IncGenerationFailed(string(kind))
		telemetry.Error("generation.failed", map[string]any{
			"client_id": clientID,
			"code":      string(kind),
			"error":     err.Error(),
		})
		return nil, err
	}

	entry := history.Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
	}
	entry.Input, _ = json.Marshal(input)
	entry.Result, _ = json.Marshal(result)
	if err := s.History.Append(ctx, clientID, entry); err != nil {
		// The generation itself succeeded; a history write failure must not
		// cost the user their result.
		telemetry.Error("history.append_failed", map[string]any{
			"client_id": clientID,
			"error":     err.Error(),
		})
	}

	metrics.IncGenerationSucceeded()
	return &Outcome{Entry: entry, Result: result}, nil
}

// DailyLimit exposes the configured shared-tier limit for message rendering.
func (s *Service) DailyLimit() int {
	return s.Quota.Limit()
}
