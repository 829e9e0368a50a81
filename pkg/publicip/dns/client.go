package dns

import (
	"context"
	"time"

	"github.com/miekg/dns"
)

// Client is the part of the miekg/dns client used by this package,
// extracted as an interface so tests can exchange canned messages.
type Client interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, a string) (
		r *dns.Msg, rtt time.Duration, err error)
}
