// Package dns obtains the public IPv4 address of the host by
// querying nameservers echoing the client address, such as
// Cloudflare's whoami or OpenDNS' myip records.
package dns

import (
	"context"
	"sync"

	"github.com/miekg/dns"
)

type Fetcher struct {
	client    Client
	index     int
	providers []Provider
	mutex     sync.Mutex
}

func New(options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, err
		}
	}

	return &Fetcher{
		client: &dns.Client{
			Net:     "udp4",
			Timeout: settings.timeout,
		},
		providers: settings.providers,
	}, nil
}

// IP queries the next echo nameserver in the list and returns the
// public IPv4 address it reports. Providers are cycled through on
// successive calls.
func (f *Fetcher) IP(ctx context.Context) (publicIP string, err error) {
	f.mutex.Lock()
	provider := f.providers[f.index]
	f.index = (f.index + 1) % len(f.providers)
	f.mutex.Unlock()

	return fetch(ctx, f.client, provider.data())
}
