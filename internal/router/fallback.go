package router

import (
	"context"

	"agent-discovery/pkg/log"
	"agent-discovery/pkg/metrics"
)

// FallbackRouter tries the primary classifier and falls back to the
// secondary one on any error. The fallback result is marked Degraded.
type FallbackRouter struct {
	primary  Classifier
	fallback Classifier
	l        log.Logger
	m        *metrics.Metrics
}

var _ Classifier = (*FallbackRouter)(nil)

// NewFallback composes primary and fallback. m may be nil.
func NewFallback(primary, fallback Classifier, l log.Logger, m *metrics.Metrics) *FallbackRouter {
	return &FallbackRouter{
		primary:  primary,
		fallback: fallback,
		l:        l,
		m:        m,
	}
}

// Classify implements Classifier
func (r *FallbackRouter) Classify(ctx context.Context, in Input) (Classification, error) {
	out, err := r.primary.Classify(ctx, in)
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixFallbackClassify, ErrMsgPrimaryFailed, err)
		r.m.DegradedStage(metrics.StageClassification)

		fb, ferr := r.fallback.Classify(ctx, in)
		if ferr != nil {
			return Classification{}, ferr
		}
		fb.Degraded = true
		return fb, nil
	}

	// Completion answered but extracted nothing the rules can see.
	if out.Extracted.IsEmpty() {
		kw := Extract(in.Utterance)
		if !kw.IsEmpty() {
			out.Extracted = kw
			out.Reasoning = joinReason(out.Reasoning, ReasonKeywordEnriched)
		}
	}
	return out, nil
}

func joinReason(a, b string) string {
	if a == "" {
		return b
	}
	return a + "; " + b
}
