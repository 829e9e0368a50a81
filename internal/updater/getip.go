package updater

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// sleepFunc waits for the duration or until the context is done,
// in which case it returns the context error. It is injected so
// tests do not wait through real retry pauses.
type sleepFunc func(ctx context.Context, duration time.Duration) error

func sleepWithContext(ctx context.Context, duration time.Duration) error {
	timer := time.NewTimer(duration)
	select {
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// tryAndRepeatGettingIP attempts to obtain the public IP address
// up to attempts times, sleeping retryWait between two attempts
// and not after the last one. Each failed attempt is logged as a
// warning; only running out of attempts is an error.
func tryAndRepeatGettingIP(ctx context.Context, fetcher PublicIPFetcher,
	attempts int, retryWait time.Duration, sleep sleepFunc, logger Logger) (
	ip string, err error) {
	errs := make([]error, 0, attempts)
	for try := 1; try <= attempts; try++ {
		ip, err = fetcher.IP(ctx)
		if err == nil {
			if try > 1 {
				logger.Info("Obtained public IP address after " +
					strconv.Itoa(try) + " attempts")
			}
			return ip, nil
		}

		logger.Warn("Attempt " + strconv.Itoa(try) + " of " +
			strconv.Itoa(attempts) + ": failed to retrieve IP: " + err.Error())
		errs = append(errs, err)

		if try == attempts {
			break
		}
		err = sleep(ctx, retryWait)
		if err != nil {
			errs = append(errs, err)
			break
		}
	}

	return "", fmt.Errorf("getting public IP address after %d attempts: %w",
		attempts, errors.Join(errs...))
}
