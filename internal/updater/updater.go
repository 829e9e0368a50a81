// Package updater implements one invocation of the agent: obtain
// the public IP address, compare it with the last applied value
// and push the change to the VolaryDDNS API.
package updater

import (
	"context"
	"fmt"
	"time"
)

type Updater struct {
	fetcher   PublicIPFetcher
	client    UpdateClient
	store     LastIPStore
	notifier  Notifier
	logger    Logger
	attempts  int
	retryWait time.Duration
	sleep     sleepFunc
}

type Settings struct {
	// Fetcher finds the current public IP address.
	Fetcher PublicIPFetcher
	// Client pushes the update to the remote API.
	Client UpdateClient
	// Store persists the last successfully applied IP address.
	Store LastIPStore
	// Notifier is notified of IP changes and update failures.
	Notifier Notifier
	Logger   Logger
	// Attempts is the public IP resolution attempts count.
	Attempts int
	// RetryWait is the pause between two resolution attempts.
	RetryWait time.Duration
}

func New(settings Settings) *Updater {
	return &Updater{
		fetcher:   settings.Fetcher,
		client:    settings.Client,
		store:     settings.Store,
		notifier:  settings.Notifier,
		logger:    settings.Logger,
		attempts:  settings.Attempts,
		retryWait: settings.RetryWait,
		sleep:     sleepWithContext,
	}
}

// Run performs a single update pass. It returns a nil error both
// when the record was updated and when the IP address is unchanged
// and no update request was needed.
func (u *Updater) Run(ctx context.Context) (err error) {
	ip, err := tryAndRepeatGettingIP(ctx, u.fetcher,
		u.attempts, u.retryWait, u.sleep, u.logger)
	if err != nil {
		u.logger.Error("Failed to get valid public IP: " + err.Error())
		return err
	}
	u.logger.Info("Successfully retrieved IP address: " + ip)

	lastIP, hasLastIP, err := u.store.LastIP()
	if err != nil {
		u.logger.Error(err.Error())
		return err
	}

	if hasLastIP && lastIP == ip {
		u.logger.Info("IP address unchanged (" + ip + "), skipping update")
		return nil
	}

	err = u.client.Update(ctx, ip)
	if err != nil {
		u.logger.Error("API request failed: " + err.Error())
		u.notifier.Notify("Failed to update DNS record to " + ip +
			": " + err.Error())
		return err
	}
	u.logger.Info("DNS record updated successfully")

	err = u.store.StoreLastIP(ip)
	if err != nil {
		// the update went through but the next run will repeat it
		u.logger.Error(err.Error())
		return fmt.Errorf("persisting last IP: %w", err)
	}

	u.logger.Info("IP successfully updated to " + ip)
	u.notifier.Notify("IP address updated to " + ip)
	return nil
}
