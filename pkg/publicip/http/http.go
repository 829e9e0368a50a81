// Package http obtains the public IPv4 address of the host from
// HTTP echo services returning the address as a plain text body.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	index   int
	urls    []string
	mutex   sync.Mutex
}

func New(client *http.Client, options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, err
		}
	}

	urls := make([]string, len(settings.providers))
	for i, provider := range settings.providers {
		urls[i] = provider.url()
	}

	return &Fetcher{
		client:  client,
		timeout: settings.timeout,
		urls:    urls,
	}, nil
}

// IP queries the next echo service in the list and returns the
// public IPv4 address found in its response body. Services are
// cycled through on successive calls so a single broken service
// does not break every retry attempt.
func (f *Fetcher) IP(ctx context.Context) (publicIP string, err error) {
	f.mutex.Lock()
	url := f.urls[f.index]
	f.index = (f.index + 1) % len(f.urls)
	f.mutex.Unlock()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	return fetch(ctx, f.client, url)
}
