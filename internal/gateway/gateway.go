// Package gateway implements the cloud escalation path of the advisor:
// a Gemini text-generation client plus the credential lifecycle around it.
// Every entry point returns a displayable result; failures are folded into
// user-facing messages rather than propagated.
package gateway

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/avypatel/finsight/internal/common"
)

// Source tags where a result's text came from so callers can branch on
// the variant instead of sniffing message content.
type Source int

const (
	// SourceModel is a real completion from the inference endpoint.
	SourceModel Source = iota
	// SourceSimulated is the local stand-in used when the call failed.
	SourceSimulated
	// SourceMissingKey means no credential was stored or supplied.
	SourceMissingKey
	// SourceInvalidKey means the endpoint rejected the credential, which
	// has now been cleared.
	SourceInvalidKey
)

// Result is the gateway's answer to one escalation.
type Result struct {
	Text   string
	Source Source
}

// Store owns the single persisted API credential.
type Store interface {
	Get() (string, error)
	Set(key string) error
	Clear() error
}

// Provider solicits a credential from the user when none is stored. A
// terminal caller prompts interactively; headless callers decline.
type Provider interface {
	Solicit(ctx context.Context) (string, error)
}

// Generator performs the actual inference call. *Client implements it.
type Generator interface {
	Generate(ctx context.Context, apiKey, prompt string) (string, error)
}

// User-facing messages for the non-success paths.
const (
	MissingKeyMessage = "⚠️ API key is missing. Run 'finsight key set' to add one."
	InvalidKeyMessage = "⚠️ Invalid API key. The key has been reset. Please try again with a valid key."

	// SimulatedMessage stands in for a real analysis when the cloud is
	// unreachable, so the user always sees something actionable.
	SimulatedMessage = "**(Simulation Mode)**: Analysis failed (Network/API Error).\n\n" +
		"Based on your local data:\n" +
		"- You are spending 65% of your income.\n" +
		"- Consider cutting down on 'Zomato' to boost your 'Royal Enfield' savings."
)

// Gateway escalates a prompt to the inference endpoint, managing the
// stored credential across calls.
type Gateway struct {
	generator Generator
	store     Store
	provider  Provider
}

// New creates a gateway over the given generator, credential store and
// credential provider.
func New(generator Generator, store Store, provider Provider) *Gateway {
	return &Gateway{
		generator: generator,
		store:     store,
		provider:  provider,
	}
}

// Escalate sends the prompt to the inference endpoint and always returns a
// displayable result. A missing credential is solicited once; a rejected
// credential is cleared so the next call re-prompts; any other failure
// yields the simulated analysis. No path retries automatically.
func (g *Gateway) Escalate(ctx context.Context, prompt string) Result {
	key, err := g.store.Get()
	if err != nil {
		slog.Warn("Failed to read stored API key", "error", err)
		key = ""
	}

	if key == "" {
		entered, solicitErr := g.provider.Solicit(ctx)
		entered = strings.TrimSpace(entered)
		if solicitErr != nil || entered == "" {
			return Result{Text: MissingKeyMessage, Source: SourceMissingKey}
		}
		if setErr := g.store.Set(entered); setErr != nil {
			slog.Warn("Failed to persist API key", "error", setErr)
		}
		key = entered
	}

	text, err := g.generator.Generate(ctx, key, prompt)
	switch {
	case errors.Is(err, common.ErrInvalidAPIKey):
		if clearErr := g.store.Clear(); clearErr != nil {
			slog.Warn("Failed to clear rejected API key", "error", clearErr)
		}
		return Result{Text: InvalidKeyMessage, Source: SourceInvalidKey}
	case err != nil:
		slog.Debug("Escalation failed, using simulated analysis", "error", err)
		return Result{Text: SimulatedMessage, Source: SourceSimulated}
	}

	return Result{Text: text, Source: SourceModel}
}
