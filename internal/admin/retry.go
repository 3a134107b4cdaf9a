package admin

import (
	"context"
	"regexp"
	"time"
)

// transientSignature matches failures believed to be temporary
// infrastructure conditions (cold start, network blip) rather than permanent
// rejections.
var transientSignature = regexp.MustCompile(`(?i)network error|failed to fetch|bad gateway|\(502\)`)

// retryNotice is emitted between the first failure and the single retry.
const retryNotice = "Temporary server/network issue detected. Retrying..."

const defaultRetryBackoff = 800 * time.Millisecond

// IsTransient reports whether an error carries a transient-failure signature.
func IsTransient(err error) bool {
	return err != nil && transientSignature.MatchString(err.Error())
}

// RetryPolicy retries an action at most once, after a fixed backoff, when the
// first failure looks transient. It does not deduplicate server-side effects:
// if the first attempt committed but the response was lost, the retry can
// create a duplicate record. Accepted for the single-admin, low-volume use.
type RetryPolicy struct {
	Backoff  time.Duration
	notifier Notifier

	// sleep is replaceable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRetryPolicy constructs a RetryPolicy with the default backoff.
func NewRetryPolicy(notifier Notifier) *RetryPolicy {
	if notifier == nil {
		notifier = discardNotifier{}
	}
	return &RetryPolicy{
		Backoff:  defaultRetryBackoff,
		notifier: notifier,
		sleep:    sleepCtx,
	}
}

// Do invokes the action, retrying exactly once on a transient failure.
// Non-transient failures propagate immediately; a failed retry propagates
// unchanged.
func (p *RetryPolicy) Do(ctx context.Context, action func() error) error {
	err := action()
	if err == nil || !IsTransient(err) {
		return err
	}

	p.notifier.Notify(retryNotice)
	if sleepErr := p.sleep(ctx, p.Backoff); sleepErr != nil {
		return err
	}
	return action()
}

// RetryValue runs a value-returning action through the policy.
func RetryValue[T any](ctx context.Context, p *RetryPolicy, action func() (T, error)) (T, error) {
	var out T
	err := p.Do(ctx, func() error {
		var actionErr error
		out, actionErr = action()
		return actionErr
	})
	return out, err
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
