package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avypatel/finsight/internal/gateway"
	"github.com/avypatel/finsight/internal/model"
)

// Escalator is the cloud path taken when local analysis is inconclusive.
// *gateway.Gateway implements it.
type Escalator interface {
	Escalate(ctx context.Context, prompt string) gateway.Result
}

// KeyReader reports whether a credential is configured without touching it.
type KeyReader interface {
	Get() (string, error)
}

// Presentation-layer messages for the paths where neither tier produced a
// verdict. These substitute for raw gateway output so the user always gets
// a concrete suggestion.
const (
	// NoCloudMessage replaces the gateway's simulated analysis: the
	// cloud was unreachable and the query had no price to fall back on.
	NoCloudMessage = "🤔 **Hmm**: I couldn't reach the cloud, and I didn't see a price in your question. " +
		"Try asking with a number, like 'Can I afford a 50k bike?' so I can calculate it locally!"

	// TipMessage is shown when no key is configured and local analysis
	// found nothing to work with.
	TipMessage = "💡 **Tip**: I work best with numbers! Ask me 'Can I afford 20k?' " +
		"or add your API key with 'finsight key set' for smarter answers."
)

// Service wires the interpreter and decision engine to the escalation
// gateway. It never mutates the UserContext it is handed and every path
// out of Ask is a displayable string.
type Service struct {
	escalator Escalator
	keys      KeyReader
}

// NewService creates an advisor service.
func NewService(escalator Escalator, keys KeyReader) *Service {
	return &Service{escalator: escalator, keys: keys}
}

// Ask answers a free-form spending query. Local analysis runs first; only
// an inconclusive verdict escalates, and only when a credential is already
// configured.
func (s *Service) Ask(ctx context.Context, query string, userCtx model.UserContext) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return TipMessage
	}

	amount, found := Interpret(query)
	verdict := Evaluate(query, amount, found, userCtx)
	slog.Debug("Local affordability analysis",
		"verdict", verdict.Kind.String(),
		"amount_found", found)

	if verdict.Conclusive() {
		return verdict.Message
	}

	key, err := s.keys.Get()
	if err != nil {
		slog.Warn("Failed to check for stored API key", "error", err)
	}
	if key == "" {
		return TipMessage
	}

	result := s.escalator.Escalate(ctx, BuildPrompt(query, userCtx))
	if result.Source == gateway.SourceSimulated {
		// The generic simulation reads oddly for a question with no
		// number in it; steer the user toward one instead.
		return NoCloudMessage
	}
	return result.Text
}

// BuildPrompt renders the bounded prompt sent to the inference endpoint.
func BuildPrompt(query string, userCtx model.UserContext) string {
	return fmt.Sprintf("Strict financing advice. Balance: %s. Q: %s. Short answer.",
		userCtx.TotalBalance.StringFixed(0), query)
}
