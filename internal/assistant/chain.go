package assistant

import (
	"context"
	"log/slog"
)

// FallbackReply is the child-safe answer returned when every model in the
// chain has failed. Data-loading problems are silent; this is the only
// user-facing failure message in the system.
const FallbackReply = "Ôi, mạng vũ trụ đang kẹt xe quá! Cậu chờ xíu rồi hỏi lại tớ nha 🍊💦"

// DefaultModels is the ordered free-model fallback chain.
var DefaultModels = []string{"openai", "qwen", "mistral", "llama"}

// Chain tries an ordered list of models against one provider, stopping at the
// first success. It fails closed: callers always get a reply string.
type Chain struct {
	provider Provider
	models   []string
}

// NewChain creates a chain over the given models, or DefaultModels if none
// are given.
func NewChain(provider Provider, models ...string) *Chain {
	if len(models) == 0 {
		models = DefaultModels
	}
	return &Chain{provider: provider, models: models}
}

// Reply answers a single user message. The exchange is one-shot: only the
// system prompt and the new message go upstream. Models are tried strictly
// in order; a model that errors or answers empty is skipped. Reply never
// returns an error — exhaustion yields FallbackReply.
func (c *Chain) Reply(ctx context.Context, text string) string {
	messages := []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: text},
	}

	for _, model := range c.models {
		out, err := c.provider.Complete(ctx, model, messages)
		if err != nil {
			slog.Warn("chat model failed, trying next", "model", model, "error", err)
			continue
		}
		slog.Debug("chat reply served", "model", model)
		return out
	}

	slog.Error("all chat models failed", "models", len(c.models))
	return FallbackReply
}
