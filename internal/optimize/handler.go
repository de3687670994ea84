package optimize

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kkkk66/GROWit/internal/shared/server/middleware"
	"github.com/kkkk66/GROWit/internal/shared/server/respond"
)

// Handler wires the generation endpoint to the orchestration service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/optimize", h.generate)
}

type generateRequest struct {
	Topic          string   `json:"topic"`
	TargetAudience string   `json:"targetAudience"`
	Language       string   `json:"language"`
	Platforms      []string `json:"platforms"`
}

func (h *Handler) generate(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "topic is required", nil)
		return
	}

	platforms := parsePlatforms(req.Platforms)
	if len(platforms) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "at least one supported platform is required", nil)
		return
	}

	input := UserInput{
		Topic:          strings.TrimSpace(req.Topic),
		TargetAudience: strings.TrimSpace(req.TargetAudience),
		Language:       defaultLanguage(req.Language),
		Platforms:      platforms,
	}

	outcome, err := h.Svc.Generate(c.Request.Context(), clientID, input)
	if err != nil {
		kind := KindOf(err)
		message, hint := UserMessage(kind, h.Svc.DailyLimit())
		var details interface{}
		if hint != "" {
			details = gin.H{"hint": hint}
		}
		respond.Error(c, statusForKind(kind), string(kind), message, details)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"entryId":   outcome.Entry.ID,
		"timestamp": outcome.Entry.Timestamp,
		"result":    outcome.Result,
	})
}

func parsePlatforms(raw []string) []Platform {
	seen := make(map[Platform]struct{}, len(raw))
	var platforms []Platform
	for _, r := range raw {
		p, ok := ParsePlatform(r)
		if !ok {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		platforms = append(platforms, p)
	}
	return platforms
}

func defaultLanguage(raw string) string {
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		return trimmed
	}
	return "English"
}

func statusForKind(kind Kind) int {
	switch kind {
	case KindMissingCredential, KindInvalidCredential:
		return http.StatusUnauthorized
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	case KindQuotaExhausted, KindRateLimitExceeded:
		return http.StatusTooManyRequests
	case KindContentBlockedSafety, KindContentBlocked:
		return http.StatusUnprocessableEntity
	case KindInvalidRequest:
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}
