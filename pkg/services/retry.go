package services

import "time"

// RetryPolicy retries a flaky provider call a fixed number of times. The wait
// between attempts depends on how the previous attempt ended: EmptyDelay after
// an attempt that succeeded but produced no usable data, ErrorDelay after an
// attempt that failed outright.
type RetryPolicy struct {
	MaxAttempts int
	EmptyDelay  time.Duration
	ErrorDelay  time.Duration
	// Sleep is swappable so tests can run without real waits. Nil means
	// time.Sleep.
	Sleep func(time.Duration)
}

// DefaultRelatedRetryPolicy is the schedule used for the related-topics and
// related-queries provider calls: three attempts, 1s after an empty result,
// 2s after an error.
func DefaultRelatedRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		EmptyDelay:  1 * time.Second,
		ErrorDelay:  2 * time.Second,
	}
}

// Do runs attempt until it reports ok or the attempts are exhausted. The
// attempt closure owns its own result; Do only returns the last error seen
// (nil when the last attempt merely produced no data).
func (p RetryPolicy) Do(attempt func() (ok bool, err error)) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for i := 0; i < p.MaxAttempts; i++ {
		ok, err := attempt()
		if err == nil && ok {
			return nil
		}
		lastErr = err
		if i == p.MaxAttempts-1 {
			break
		}
		if err != nil {
			sleep(p.ErrorDelay)
		} else {
			sleep(p.EmptyDelay)
		}
	}
	return lastErr
}
