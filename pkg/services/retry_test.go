package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestPolicy(sleeps *[]time.Duration) RetryPolicy {
	policy := DefaultRelatedRetryPolicy()
	policy.Sleep = func(d time.Duration) {
		*sleeps = append(*sleeps, d)
	}
	return policy
}

func TestRetryStopsOnFirstSuccess(t *testing.T) {
	var sleeps []time.Duration
	policy := newTestPolicy(&sleeps)

	attempts := 0
	err := policy.Do(func() (bool, error) {
		attempts++
		return true, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, attempts)
	assert.Empty(t, sleeps)
}

func TestRetryWaitsLongerAfterErrors(t *testing.T) {
	var sleeps []time.Duration
	policy := newTestPolicy(&sleeps)

	attempts := 0
	err := policy.Do(func() (bool, error) {
		attempts++
		switch attempts {
		case 1:
			return false, errors.New("provider error")
		case 2:
			return false, nil // empty result
		default:
			return true, nil
		}
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []time.Duration{2 * time.Second, 1 * time.Second}, sleeps)
}

func TestRetryExhaustionReturnsLastError(t *testing.T) {
	var sleeps []time.Duration
	policy := newTestPolicy(&sleeps)

	lastErr := errors.New("still failing")
	attempts := 0
	err := policy.Do(func() (bool, error) {
		attempts++
		return false, lastErr
	})

	assert.Equal(t, lastErr, err)
	assert.Equal(t, policy.MaxAttempts, attempts)
	// No sleep after the final attempt.
	assert.Len(t, sleeps, policy.MaxAttempts-1)
}

func TestRetryExhaustionOnEmptyResultsIsNotAnError(t *testing.T) {
	var sleeps []time.Duration
	policy := newTestPolicy(&sleeps)

	err := policy.Do(func() (bool, error) {
		return false, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, []time.Duration{1 * time.Second, 1 * time.Second}, sleeps)
}
