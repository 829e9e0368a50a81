package updater

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClient struct {
	updatedIPs []string
	err        error
}

func (c *fakeClient) Update(_ context.Context, ip string) error {
	if c.err != nil {
		return c.err
	}
	c.updatedIPs = append(c.updatedIPs, ip)
	return nil
}

type fakeStore struct {
	lastIP    string
	hasLastIP bool
	readErr   error
	storedIPs []string
	storeErr  error
}

func (s *fakeStore) LastIP() (string, bool, error) {
	return s.lastIP, s.hasLastIP, s.readErr
}

func (s *fakeStore) StoreLastIP(ip string) error {
	if s.storeErr != nil {
		return s.storeErr
	}
	s.storedIPs = append(s.storedIPs, ip)
	return nil
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

func Test_Updater_Run(t *testing.T) {
	t.Parallel()

	errFetch := errors.New("fetch failed")
	errUpdate := errors.New("update failed")
	errStore := errors.New("store failed")

	testCases := map[string]struct {
		fetchResults  []fetchResult
		store         *fakeStore
		clientErr     error
		updatedIPs    []string
		storedIPs     []string
		notifications []string
		errWrapped    error
	}{
		"first_run_updates": {
			fetchResults: []fetchResult{{ip: "1.2.3.4"}},
			store:        &fakeStore{},
			updatedIPs:   []string{"1.2.3.4"},
			storedIPs:    []string{"1.2.3.4"},
			notifications: []string{
				"IP address updated to 1.2.3.4",
			},
		},
		"unchanged_ip_skips_update": {
			fetchResults: []fetchResult{{ip: "1.2.3.4"}},
			store: &fakeStore{
				lastIP:    "1.2.3.4",
				hasLastIP: true,
			},
		},
		"changed_ip_updates": {
			fetchResults: []fetchResult{{ip: "5.6.7.8"}},
			store: &fakeStore{
				lastIP:    "1.2.3.4",
				hasLastIP: true,
			},
			updatedIPs: []string{"5.6.7.8"},
			storedIPs:  []string{"5.6.7.8"},
			notifications: []string{
				"IP address updated to 5.6.7.8",
			},
		},
		"fetch_failure": {
			fetchResults: []fetchResult{
				{err: errFetch},
				{err: errFetch},
				{err: errFetch},
			},
			store:      &fakeStore{},
			errWrapped: errFetch,
		},
		"store_read_failure": {
			fetchResults: []fetchResult{{ip: "1.2.3.4"}},
			store:        &fakeStore{readErr: errStore},
			errWrapped:   errStore,
		},
		"update_failure_leaves_store": {
			fetchResults: []fetchResult{{ip: "5.6.7.8"}},
			store: &fakeStore{
				lastIP:    "1.2.3.4",
				hasLastIP: true,
			},
			clientErr: errUpdate,
			notifications: []string{
				"Failed to update DNS record to 5.6.7.8: update failed",
			},
			errWrapped: errUpdate,
		},
		"store_write_failure": {
			fetchResults: []fetchResult{{ip: "1.2.3.4"}},
			store:        &fakeStore{storeErr: errStore},
			updatedIPs:   []string{"1.2.3.4"},
			errWrapped:   errStore,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client := &fakeClient{err: testCase.clientErr}
			notifier := &recordingNotifier{}

			updater := New(Settings{
				Fetcher:   &queuedFetcher{results: testCase.fetchResults},
				Client:    client,
				Store:     testCase.store,
				Notifier:  notifier,
				Logger:    noopLogger{},
				Attempts:  3,
				RetryWait: 5 * time.Second,
			})
			updater.sleep = func(context.Context, time.Duration) error {
				return nil
			}

			err := updater.Run(context.Background())

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.updatedIPs, client.updatedIPs)
			assert.Equal(t, testCase.storedIPs, testCase.store.storedIPs)
			assert.Equal(t, testCase.notifications, notifier.messages)
		})
	}
}
