package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/volarydns/volary-ddns/pkg/publicip/dns"
	iphttp "github.com/volarydns/volary-ddns/pkg/publicip/http"
)

const all = "all"

type PubIP struct {
	HTTPEnabled   *bool
	DNSEnabled    *bool
	HTTPProviders []string
	DNSProviders  []string
	DNSTimeout    time.Duration
	// Attempts is the number of tries to obtain the public IP
	// address before giving up for this invocation.
	Attempts *int
	// RetryWait is how long to sleep between two attempts.
	// It is not waited after the last failed attempt.
	RetryWait time.Duration
}

func (p *PubIP) setDefaults() {
	p.HTTPEnabled = gosettings.DefaultPointer(p.HTTPEnabled, true)
	p.DNSEnabled = gosettings.DefaultPointer(p.DNSEnabled, false)
	p.HTTPProviders = gosettings.DefaultSlice(p.HTTPProviders, []string{all})
	p.DNSProviders = gosettings.DefaultSlice(p.DNSProviders, []string{all})
	const defaultDNSTimeout = 3 * time.Second
	p.DNSTimeout = gosettings.DefaultComparable(p.DNSTimeout, defaultDNSTimeout)
	const defaultAttempts = 3
	p.Attempts = gosettings.DefaultPointer(p.Attempts, defaultAttempts)
	const defaultRetryWait = 5 * time.Second
	p.RetryWait = gosettings.DefaultComparable(p.RetryWait, defaultRetryWait)
}

var (
	ErrNoFetcherEnabled  = errors.New("no public IP fetcher is enabled")
	ErrAttemptsTooLow    = errors.New("attempts must be at least 1")
	ErrRetryWaitNegative = errors.New("retry wait duration is negative")
)

func (p PubIP) Validate() (err error) {
	if !*p.HTTPEnabled && !*p.DNSEnabled {
		return fmt.Errorf("%w", ErrNoFetcherEnabled)
	}

	for _, provider := range p.HTTPProviders {
		if provider == all {
			continue
		}
		err = iphttp.ValidateProvider(iphttp.Provider(provider))
		if err != nil {
			return err
		}
	}

	for _, provider := range p.DNSProviders {
		if provider == all {
			continue
		}
		err = dns.ValidateProvider(dns.Provider(provider))
		if err != nil {
			return err
		}
	}

	if *p.Attempts < 1 {
		return fmt.Errorf("%w: %d", ErrAttemptsTooLow, *p.Attempts)
	}
	if p.RetryWait < 0 {
		return fmt.Errorf("%w: %s", ErrRetryWaitNegative, p.RetryWait)
	}

	return nil
}

func (p PubIP) String() string {
	return p.toLinesNode().String()
}

func (p PubIP) toLinesNode() *gotree.Node {
	node := gotree.New("Public IP")
	node.Appendf("Attempts: %d with %s between attempts", *p.Attempts, p.RetryWait)
	if *p.HTTPEnabled {
		node.Appendf("HTTP providers: %s", strings.Join(p.HTTPProviders, ", "))
	}
	if *p.DNSEnabled {
		node.Appendf("DNS providers: %s", strings.Join(p.DNSProviders, ", "))
	}
	return node
}

var ErrInvalidFetcher = errors.New("invalid fetcher specified")

func (p *PubIP) read(r *reader.Reader) (err error) {
	err = p.readFetchers(r)
	if err != nil {
		return err
	}

	p.HTTPProviders = r.CSV("PUBLICIP_HTTP_PROVIDERS")
	p.DNSProviders = r.CSV("PUBLICIP_DNS_PROVIDERS")

	p.DNSTimeout, err = r.Duration("PUBLICIP_DNS_TIMEOUT")
	if err != nil {
		return err
	}

	p.Attempts, err = r.IntPtr("PUBLICIP_ATTEMPTS")
	if err != nil {
		return err
	}

	p.RetryWait, err = r.Duration("PUBLICIP_RETRY_WAIT")
	return err
}

func (p *PubIP) readFetchers(r *reader.Reader) (err error) {
	fetchers := r.CSV("PUBLICIP_FETCHERS")
	for i, fetcher := range fetchers {
		switch strings.ToLower(fetcher) {
		case all:
			p.HTTPEnabled = ptrTo(true)
			p.DNSEnabled = ptrTo(true)
		case "http":
			p.HTTPEnabled = ptrTo(true)
		case "dns":
			p.DNSEnabled = ptrTo(true)
		default:
			return fmt.Errorf("%w: %q at position %d of %d",
				ErrInvalidFetcher, fetcher, i+1, len(fetchers))
		}
	}
	return nil
}

// ToHTTPOptions converts the settings to options for the public IP
// HTTP fetcher. It must be called after setDefaults and Validate.
func (p PubIP) ToHTTPOptions() (options []iphttp.Option) {
	providers := make([]iphttp.Provider, 0, len(p.HTTPProviders))
	for _, provider := range p.HTTPProviders {
		if provider == all {
			providers = append(providers, iphttp.ListProviders()...)
			continue
		}
		providers = append(providers, iphttp.Provider(provider))
	}
	return []iphttp.Option{
		iphttp.SetProviders(providers[0], providers[1:]...),
	}
}

// ToDNSOptions converts the settings to options for the public IP
// DNS fetcher. It must be called after setDefaults and Validate.
func (p PubIP) ToDNSOptions() (options []dns.Option) {
	providers := make([]dns.Provider, 0, len(p.DNSProviders))
	for _, provider := range p.DNSProviders {
		if provider == all {
			providers = append(providers, dns.ListProviders()...)
			continue
		}
		providers = append(providers, dns.Provider(provider))
	}
	return []dns.Option{
		dns.SetTimeout(p.DNSTimeout),
		dns.SetProviders(providers[0], providers[1:]...),
	}
}

func ptrTo[T any](value T) *T { return &value }
