package publicip

import (
	nethttp "net/http"

	"github.com/volarydns/volary-ddns/pkg/publicip/dns"
	"github.com/volarydns/volary-ddns/pkg/publicip/http"
)

type DNSSettings struct {
	Enabled bool
	Options []dns.Option
}

type HTTPSettings struct {
	Enabled bool
	Client  *nethttp.Client
	Options []http.Option
}
