package qa

import (
	"context"
	"fmt"
	"time"

	"github.com/akolanti/FinDocAPI/internal/config"
	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
	"github.com/akolanti/FinDocAPI/internal/metrics"
	"github.com/akolanti/FinDocAPI/internal/qa/llm"
	"github.com/akolanti/FinDocAPI/internal/session"
	"github.com/akolanti/FinDocAPI/pkg/logger_i"
)

// Service answers questions about the session's loaded document. Handlers
// only see this contract, not the provider behind it.
type Service interface {
	Ask(ctx context.Context, sess *session.Context, question string) (string, error)
}

type service struct {
	provider llm.Provider
	logger   *logger_i.Logger
}

func NewService(provider llm.Provider) Service {
	return &service{
		provider: provider,
		logger:   logger_i.NewLogger("QA Service"),
	}
}

// Ask is one blocking upstream round trip: no retry on failure, the caller
// surfaces the error and the user may resubmit. The transcript is only
// touched on success.
func (s *service) Ask(ctx context.Context, sess *session.Context, question string) (string, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", sess.ID())

	content, err := sess.Content()
	if err != nil {
		return "", err
	}
	if s.provider == nil {
		return "", fmt.Errorf("%w: no provider configured", docModel.ErrUpstreamUnavailable)
	}

	callCtx, cancel := context.WithTimeout(ctx, config.UpstreamCallTimeout)
	defer cancel()

	prompt := BuildPrompt(content, question)
	log.Debug("Dispatching question", "prompt length", len(prompt))

	start := time.Now()
	answer, err := s.provider.Generate(callCtx, prompt)
	metrics.CaptureUpstreamMetrics(s.provider.Name(), time.Since(start))
	if err != nil {
		log.Error("Upstream call failed", "error", err)
		return "", fmt.Errorf("%w: %v", docModel.ErrUpstreamUnavailable, err)
	}

	if err := sess.AppendTurn(ctx, question, answer); err != nil {
		// the answer is still good; losing one transcript entry is logged, not fatal
		log.Error("Failed to append turn", "error", err)
	}
	return answer, nil
}
