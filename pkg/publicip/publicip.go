// Package publicip finds the public IPv4 address of the host
// from public echo services, over HTTP and/or DNS.
package publicip

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/volarydns/volary-ddns/pkg/publicip/dns"
	"github.com/volarydns/volary-ddns/pkg/publicip/http"
)

type ipFetcher interface {
	IP(ctx context.Context) (publicIP string, err error)
}

type Fetcher struct {
	fetchers []ipFetcher
	// Cycling effect if both fetch types are enabled
	counter *uint32 // 32 bit for 32 bit systems
}

var ErrNoFetchTypeSpecified = errors.New("at least one fetcher type must be specified")

func NewFetcher(dnsSettings DNSSettings, httpSettings HTTPSettings) (
	f *Fetcher, err error) {
	f = &Fetcher{
		counter: new(uint32),
	}

	if dnsSettings.Enabled {
		subFetcher, err := dns.New(dnsSettings.Options...)
		if err != nil {
			return nil, err
		}
		f.fetchers = append(f.fetchers, subFetcher)
	}

	if httpSettings.Enabled {
		subFetcher, err := http.New(httpSettings.Client, httpSettings.Options...)
		if err != nil {
			return nil, err
		}
		f.fetchers = append(f.fetchers, subFetcher)
	}

	if len(f.fetchers) == 0 {
		return nil, ErrNoFetchTypeSpecified
	}

	return f, nil
}

func (f *Fetcher) IP(ctx context.Context) (publicIP string, err error) {
	index := int(atomic.AddUint32(f.counter, 1)) % len(f.fetchers)
	return f.fetchers[index].IP(ctx)
}
