package updater

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type queuedFetcher struct {
	results []fetchResult
	calls   int
}

type fetchResult struct {
	ip  string
	err error
}

func (f *queuedFetcher) IP(_ context.Context) (string, error) {
	result := f.results[f.calls]
	f.calls++
	return result.ip, result.err
}

type noopLogger struct{}

func (noopLogger) Debug(string) {}
func (noopLogger) Info(string)  {}
func (noopLogger) Warn(string)  {}
func (noopLogger) Error(string) {}

func Test_tryAndRepeatGettingIP(t *testing.T) {
	t.Parallel()

	errDummy := errors.New("dummy")

	testCases := map[string]struct {
		results    []fetchResult
		attempts   int
		retryWait  time.Duration
		ip         string
		sleeps     []time.Duration
		errWrapped error
		errMessage string
		fetchCalls int
	}{
		"success_first_attempt": {
			results: []fetchResult{
				{ip: "1.2.3.4"},
			},
			attempts:   3,
			retryWait:  5 * time.Second,
			ip:         "1.2.3.4",
			fetchCalls: 1,
		},
		"success_third_attempt": {
			results: []fetchResult{
				{err: errDummy},
				{err: errDummy},
				{ip: "1.2.3.4"},
			},
			attempts:  3,
			retryWait: 5 * time.Second,
			ip:        "1.2.3.4",
			sleeps: []time.Duration{
				5 * time.Second,
				5 * time.Second,
			},
			fetchCalls: 3,
		},
		"all_attempts_fail": {
			results: []fetchResult{
				{err: errDummy},
				{err: errDummy},
				{err: errDummy},
			},
			attempts:  3,
			retryWait: 5 * time.Second,
			sleeps: []time.Duration{
				5 * time.Second,
				5 * time.Second,
			},
			errWrapped: errDummy,
			errMessage: "getting public IP address after 3 attempts: " +
				"dummy\ndummy\ndummy",
			fetchCalls: 3,
		},
		"single_attempt_fail": {
			results: []fetchResult{
				{err: errDummy},
			},
			attempts:   1,
			retryWait:  5 * time.Second,
			errWrapped: errDummy,
			errMessage: "getting public IP address after 1 attempts: dummy",
			fetchCalls: 1,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fetcher := &queuedFetcher{results: testCase.results}

			var sleeps []time.Duration
			sleep := func(_ context.Context, d time.Duration) error {
				sleeps = append(sleeps, d)
				return nil
			}

			ip, err := tryAndRepeatGettingIP(context.Background(),
				fetcher, testCase.attempts, testCase.retryWait,
				sleep, noopLogger{})

			assert.Equal(t, testCase.ip, ip)
			assert.Equal(t, testCase.sleeps, sleeps)
			assert.Equal(t, testCase.fetchCalls, fetcher.calls)
			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_tryAndRepeatGettingIP_canceled(t *testing.T) {
	t.Parallel()

	errDummy := errors.New("dummy")
	fetcher := &queuedFetcher{results: []fetchResult{
		{err: errDummy},
		{ip: "1.2.3.4"},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	sleep := func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	}

	ip, err := tryAndRepeatGettingIP(ctx, fetcher, 3, time.Second,
		sleep, noopLogger{})

	assert.Empty(t, ip)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, fetcher.calls)
}

func Test_sleepWithContext(t *testing.T) {
	t.Parallel()

	t.Run("duration_elapses", func(t *testing.T) {
		t.Parallel()
		err := sleepWithContext(context.Background(), time.Millisecond)
		assert.NoError(t, err)
	})

	t.Run("context_canceled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := sleepWithContext(ctx, time.Hour)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
