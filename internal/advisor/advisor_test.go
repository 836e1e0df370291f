package advisor

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/avypatel/finsight/internal/gateway"
	"github.com/avypatel/finsight/internal/model"
)

type stubEscalator struct {
	result gateway.Result
	calls  int
	prompt string
}

func (s *stubEscalator) Escalate(_ context.Context, prompt string) gateway.Result {
	s.calls++
	s.prompt = prompt
	return s.result
}

type stubKeys struct {
	key string
	err error
}

func (s stubKeys) Get() (string, error) {
	return s.key, s.err
}

func TestAskConclusiveSkipsEscalation(t *testing.T) {
	esc := &stubEscalator{}
	svc := NewService(esc, stubKeys{key: "stored"})

	answer := svc.Ask(context.Background(), "can I afford a 50k bike?", testContext())

	assert.Contains(t, answer, "Safe")
	assert.Equal(t, 0, esc.calls, "conclusive local verdicts never hit the cloud")
}

func TestAskEscalatesWhenInconclusive(t *testing.T) {
	esc := &stubEscalator{result: gateway.Result{Text: "Buy it.", Source: gateway.SourceModel}}
	svc := NewService(esc, stubKeys{key: "stored"})

	answer := svc.Ask(context.Background(), "random text", testContext())

	assert.Equal(t, "Buy it.", answer)
	assert.Equal(t, 1, esc.calls)
	assert.Contains(t, esc.prompt, "Strict financing advice")
	assert.Contains(t, esc.prompt, "random text")
	assert.Contains(t, esc.prompt, "1245000")
}

func TestAskSubstitutesSimulatedFallback(t *testing.T) {
	esc := &stubEscalator{result: gateway.Result{Text: gateway.SimulatedMessage, Source: gateway.SourceSimulated}}
	svc := NewService(esc, stubKeys{key: "stored"})

	answer := svc.Ask(context.Background(), "random text", testContext())

	assert.Equal(t, NoCloudMessage, answer)
	assert.NotContains(t, answer, "Simulation Mode")
}

func TestAskPassesThroughKeyMessages(t *testing.T) {
	esc := &stubEscalator{result: gateway.Result{Text: gateway.InvalidKeyMessage, Source: gateway.SourceInvalidKey}}
	svc := NewService(esc, stubKeys{key: "stored"})

	answer := svc.Ask(context.Background(), "random text", testContext())
	assert.Equal(t, gateway.InvalidKeyMessage, answer)
}

func TestAskWithoutKeyReturnsTip(t *testing.T) {
	esc := &stubEscalator{}
	svc := NewService(esc, stubKeys{})

	answer := svc.Ask(context.Background(), "random text", testContext())

	assert.Equal(t, TipMessage, answer)
	assert.Equal(t, 0, esc.calls, "no key means no escalation attempt")
}

func TestAskEmptyQuery(t *testing.T) {
	esc := &stubEscalator{}
	svc := NewService(esc, stubKeys{key: "stored"})

	assert.Equal(t, TipMessage, svc.Ask(context.Background(), "   ", testContext()))
	assert.Equal(t, 0, esc.calls)
}

func TestBuildPrompt(t *testing.T) {
	uc := model.UserContext{TotalBalance: decimal.NewFromInt(1245000)}
	prompt := BuildPrompt("random text", uc)
	assert.Equal(t, "Strict financing advice. Balance: 1245000. Q: random text. Short answer.", prompt)
}
