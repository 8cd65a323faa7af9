package fs

import "strings"

// BatchFailure pairs an item with the error it failed on.
type BatchFailure[T any] struct {
	Item T
	Err  error
}

// BatchResult collects the outcome of running one operation over many items.
type BatchResult[T any] struct {
	Succeeded []T
	Failed    []BatchFailure[T]
}

// Outcome summarises a batch.
type Outcome int

const (
	OutcomeEmpty Outcome = iota
	OutcomeAllSucceeded
	OutcomePartial
	OutcomeAllFailed
)

// RunBatch applies fn to every item. A failure never stops the batch.
func RunBatch[T any](items []T, fn func(T) error) BatchResult[T] {
	var res BatchResult[T]
	for _, item := range items {
		if err := fn(item); err != nil {
			res.Failed = append(res.Failed, BatchFailure[T]{Item: item, Err: err})
			continue
		}
		res.Succeeded = append(res.Succeeded, item)
	}
	return res
}

// Merge appends other's failures; other's successes replace ours. It is used to
// chain a second phase that ran over r.Succeeded.
func (r BatchResult[T]) Merge(next BatchResult[T]) BatchResult[T] {
	failed := make([]BatchFailure[T], 0, len(r.Failed)+len(next.Failed))
	failed = append(failed, r.Failed...)
	failed = append(failed, next.Failed...)
	return BatchResult[T]{Succeeded: next.Succeeded, Failed: failed}
}

func (r BatchResult[T]) Outcome() Outcome {
	switch {
	case len(r.Succeeded) == 0 && len(r.Failed) == 0:
		return OutcomeEmpty
	case len(r.Failed) == 0:
		return OutcomeAllSucceeded
	case len(r.Succeeded) == 0:
		return OutcomeAllFailed
	default:
		return OutcomePartial
	}
}

// Reasons joins the failure messages.
func (r BatchResult[T]) Reasons() string {
	reasons := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		reasons = append(reasons, f.Err.Error())
	}
	return strings.Join(reasons, "; ")
}
