package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/summary-flow/internal/extract"
	"github.com/nguyentantai21042004/summary-flow/internal/failure"
	"github.com/nguyentantai21042004/summary-flow/internal/input"
)

const op = "resolver.Resolve"

// Resolve validates in, then runs the applicable strategies in order and returns
// the first success. When every applicable strategy fails, the returned error
// carries the last strategy's reason and wraps all of their errors.
func (r *implResolver) Resolve(ctx context.Context, in input.Spec, strategies []extract.Strategy) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	var (
		errs       []error
		lastReason failure.Reason
		lastErr    error
	)

	for _, s := range strategies {
		if !s.Applies(in) {
			continue
		}
		r.logger.Debug(ctx, "Trying %s strategy for %s", s.Name(), in.Describe())

		text, err := s.Extract(ctx, in)
		if err == nil {
			r.logger.Info(ctx, "Resolved %s with %s strategy", in.Describe(), s.Name())
			return Result{Text: text, Strategy: s.Name()}, nil
		}

		r.logger.Warn(ctx, "Strategy %s failed: %v", s.Name(), err)
		errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		lastReason = failure.ReasonOf(err)
		lastErr = err
	}

	if lastErr == nil {
		return Result{}, failure.New(failure.NoApplicableStrategy, op, nil,
			fmt.Sprintf("no strategy handles %s input", in.Kind()))
	}

	msg := lastErr.Error()
	var fe *failure.Error
	if errors.As(lastErr, &fe) && fe.Message != "" {
		msg = fe.Message
	}
	return Result{}, failure.New(lastReason, op, errors.Join(errs...), msg)
}
