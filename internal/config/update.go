package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Update struct {
	// Token is the opaque credential identifying the DNS record
	// to update at the VolaryDDNS API. It is required.
	Token string
	// BaseURL is the base URL of the VolaryDDNS API, for example
	// https://volarydns.example.com - the update path /api/update
	// is appended by the updater. It is required.
	BaseURL   string
	UserAgent string
}

func (u *Update) setDefaults() {
	u.UserAgent = gosettings.DefaultComparable(u.UserAgent, "VolaryDDNS-Script/1.0")
}

var (
	ErrTokenNotSet     = errors.New("token is not set")
	ErrBaseURLNotSet   = errors.New("base API URL is not set")
	ErrBaseURLNotValid = errors.New("base API URL is not valid")
	ErrBaseURLNotHTTPS = errors.New("base API URL is not https")
	ErrUserAgentNotSet = errors.New("user agent is not set")
)

func (u Update) Validate() (err error) {
	switch {
	case u.Token == "":
		return fmt.Errorf("%w: set VOLARY_TOKEN", ErrTokenNotSet)
	case u.BaseURL == "":
		return fmt.Errorf("%w: set VOLARY_API_URL", ErrBaseURLNotSet)
	case u.UserAgent == "":
		return fmt.Errorf("%w", ErrUserAgentNotSet)
	}

	parsedURL, err := url.Parse(u.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBaseURLNotValid, err)
	} else if parsedURL.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q", ErrBaseURLNotHTTPS, parsedURL.Scheme)
	}

	return nil
}

func (u Update) String() string {
	return u.toLinesNode().String()
}

func (u Update) toLinesNode() *gotree.Node {
	node := gotree.New("Update")
	node.Appendf("Token: %s", obfuscated(u.Token))
	node.Appendf("Base API URL: %s", u.BaseURL)
	node.Appendf("User agent: %s", u.UserAgent)
	return node
}

func (u *Update) read(r *reader.Reader) {
	u.Token = r.String("VOLARY_TOKEN", reader.ForceLowercase(false))
	u.BaseURL = r.String("VOLARY_API_URL", reader.ForceLowercase(false))
	u.UserAgent = r.String("USER_AGENT", reader.ForceLowercase(false))
}

func obfuscated(secret string) string {
	if secret == "" {
		return "[not set]"
	}
	return "[set]"
}
