package router

import "context"

// Classifier turns an utterance into an intent plus extracted requirement
// fields. Implementations never mutate session state.
type Classifier interface {
	Classify(ctx context.Context, in Input) (Classification, error)
}
