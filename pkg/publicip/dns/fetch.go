package dns

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/miekg/dns"
	"github.com/volarydns/volary-ddns/pkg/publicip/ipcheck"
)

var (
	ErrAnswerNotReceived  = errors.New("response answer not received")
	ErrAnswerTypeMismatch = errors.New("answer type is not expected")
	ErrRecordEmpty        = errors.New("record is empty")
	ErrIPMalformed        = errors.New("IP address malformed")
)

func fetch(ctx context.Context, client Client, data providerData) (
	publicIP string, err error) {
	message := new(dns.Msg)
	message.SetQuestion(data.fqdn, uint16(data.qType))
	message.Question[0].Qclass = uint16(data.class)

	response, _, err := client.ExchangeContext(ctx, message, data.nameserver)
	if err != nil {
		return "", err
	}

	if len(response.Answer) == 0 {
		return "", fmt.Errorf("%w: from %s for %s",
			ErrAnswerNotReceived, data.nameserver, data.fqdn)
	}

	answer := response.Answer[0]
	switch record := answer.(type) {
	case *dns.TXT:
		if len(record.Txt) == 0 {
			return "", fmt.Errorf("%w: TXT record from %s",
				ErrRecordEmpty, data.nameserver)
		}
		publicIP = strings.TrimSpace(record.Txt[0])
	case *dns.A:
		publicIP = record.A.String()
	default:
		return "", fmt.Errorf("%w: %T from %s",
			ErrAnswerTypeMismatch, answer, data.nameserver)
	}

	if !ipcheck.Valid(publicIP) {
		return "", fmt.Errorf("%w: %q from %s",
			ErrIPMalformed, publicIP, data.nameserver)
	}

	return publicIP, nil
}
