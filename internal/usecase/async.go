package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/platform/runner"
)

const unexpectedFailureMessage = "Something went wrong. Please try again."

// launcher runs Data Access Port calls off the request goroutine. Every outcome, including a
// panic or a full worker pool, ends in exactly one call to either the task's own dispatch or fail.
type launcher struct {
	runner  runner.Runner
	logger  *logging.Logger
	timeout time.Duration
}

func (l launcher) launch(ctx context.Context, op string, task func(ctx context.Context), fail func(message string)) {
	// The HTTP request ends before the port call does; keep trace values, drop cancellation.
	base := context.WithoutCancel(ctx)

	err := l.runner.Go(func() {
		callCtx, cancel := context.WithTimeout(base, l.timeout)
		defer cancel()
		defer func() {
			if rec := recover(); rec != nil {
				l.logger.ErrorContext(callCtx, "async port call panicked", "op", op, "panic", fmt.Sprint(rec))
				fail(unexpectedFailureMessage)
			}
		}()
		task(callCtx)
	})
	if err != nil {
		l.logger.WarnContext(ctx, "async port call rejected", "op", op, "error", err)
		fail("The server is busy. Please retry.")
	}
}

// failureMessage turns a port error into text for the page. Transport details are not inspected.
func failureMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "The prediction service took too long to respond."
	default:
		return err.Error()
	}
}

func dependencyError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDependencyUnavailable, op, err)
}
