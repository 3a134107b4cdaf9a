package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTransient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"network error", &NetworkError{Cause: errors.New("dial tcp: refused")}, true},
		{"failed to fetch", errors.New("TypeError: Failed to fetch"), true},
		{"bad gateway", errors.New("Bad Gateway"), true},
		{"status code 502", &APIError{Status: 502, Message: "Request failed (502)"}, true},
		{"validation error", &APIError{Status: 400, Message: "Title is required"}, false},
		{"not found", &APIError{Status: 404, Message: "Project not found"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

// stubSleep replaces the policy's backoff sleep and records requested delays.
func stubSleep(p *RetryPolicy, slept *[]time.Duration) {
	p.sleep = func(_ context.Context, d time.Duration) error {
		*slept = append(*slept, d)
		return nil
	}
}

func TestRetryPolicy_Do_RetriesOnceOnTransient(t *testing.T) {
	t.Parallel()

	recorder := &noticeRecorder{}
	policy := NewRetryPolicy(recorder)
	var slept []time.Duration
	stubSleep(policy, &slept)

	attempts := 0
	err := policy.Do(context.Background(), func() error {
		attempts++
		if attempts == 1 {
			return &NetworkError{Cause: errors.New("connection reset")}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, []time.Duration{800 * time.Millisecond}, slept)
	assert.Equal(t, []string{"Temporary server/network issue detected. Retrying..."}, recorder.all())
}

func TestRetryPolicy_Do_NoRetryOnPermanentFailure(t *testing.T) {
	t.Parallel()

	recorder := &noticeRecorder{}
	policy := NewRetryPolicy(recorder)
	var slept []time.Duration
	stubSleep(policy, &slept)

	attempts := 0
	wantErr := &APIError{Status: 400, Message: "Title is required"}
	err := policy.Do(context.Background(), func() error {
		attempts++
		return wantErr
	})

	assert.Equal(t, wantErr, err)
	assert.Equal(t, 1, attempts)
	assert.Empty(t, slept)
	assert.Empty(t, recorder.all())
}

func TestRetryPolicy_Do_SuccessFirstTry(t *testing.T) {
	t.Parallel()

	recorder := &noticeRecorder{}
	policy := NewRetryPolicy(recorder)

	attempts := 0
	err := policy.Do(context.Background(), func() error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
	assert.Empty(t, recorder.all())
}

func TestRetryPolicy_Do_RetryFailurePropagatesUnchanged(t *testing.T) {
	t.Parallel()

	policy := NewRetryPolicy(nil)
	var slept []time.Duration
	stubSleep(policy, &slept)

	second := &APIError{Status: 500, Message: "Internal server error"}
	attempts := 0
	err := policy.Do(context.Background(), func() error {
		attempts++
		if attempts == 1 {
			return &NetworkError{Cause: errors.New("timeout")}
		}
		return second
	})

	assert.Equal(t, 2, attempts)
	assert.Equal(t, second, err)
}

func TestRetryPolicy_Do_CanceledDuringBackoffReturnsFirstError(t *testing.T) {
	t.Parallel()

	policy := NewRetryPolicy(nil)
	policy.sleep = func(ctx context.Context, _ time.Duration) error {
		return context.Canceled
	}

	first := &NetworkError{Cause: errors.New("reset")}
	attempts := 0
	err := policy.Do(context.Background(), func() error {
		attempts++
		return first
	})

	assert.Equal(t, 1, attempts)
	assert.Equal(t, first, err)
}

func TestRetryValue_ReturnsValueFromRetry(t *testing.T) {
	t.Parallel()

	policy := NewRetryPolicy(nil)
	var slept []time.Duration
	stubSleep(policy, &slept)

	attempts := 0
	out, err := RetryValue(context.Background(), policy, func() (string, error) {
		attempts++
		if attempts == 1 {
			return "", errors.New("bad gateway")
		}
		return "created", nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, "created", out)
}
