package http

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

type Provider string

const (
	Ipify     Provider = "ipify"
	Icanhazip Provider = "icanhazip"
	Ident     Provider = "ident"
	Seeip     Provider = "seeip"
	Wtfismyip Provider = "wtfismyip"
)

// ListProviders returns all the HTTP providers returning
// a plain text IPv4 address body.
func ListProviders() []Provider {
	return []Provider{
		Ipify,
		Icanhazip,
		Ident,
		Seeip,
		Wtfismyip,
	}
}

var (
	ErrUnknownProvider   = errors.New("unknown public IP echo HTTP provider")
	ErrCustomURLNotValid = errors.New("custom public IP echo URL is not valid")
)

func ValidateProvider(provider Provider) error {
	if customURL, ok := strings.CutPrefix(string(provider), "url:"); ok {
		u, err := url.Parse(customURL)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCustomURLNotValid, err)
		} else if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%w: scheme %q", ErrCustomURLNotValid, u.Scheme)
		}
		return nil
	}

	for _, possible := range ListProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

func (provider Provider) url() string {
	switch provider {
	case Ipify:
		return "https://api.ipify.org"
	case Icanhazip:
		return "https://ipv4.icanhazip.com"
	case Ident:
		return "https://v4.ident.me"
	case Seeip:
		return "https://ipv4.seeip.org"
	case Wtfismyip:
		return "https://ipv4.wtfismyip.com/text"
	}

	if strings.HasPrefix(string(provider), "url:") {
		return strings.TrimPrefix(string(provider), "url:")
	}

	panic(`provider unknown: "` + string(provider) + `"`)
}
