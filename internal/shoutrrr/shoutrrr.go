// Package shoutrrr pushes agent notifications, such as a changed
// public IP or a rejected update, to any service shoutrrr speaks to.
package shoutrrr

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
)

type Erroer interface {
	Error(s string)
}

type Settings struct {
	Addresses    []string
	DefaultTitle string
	Logger       Erroer
}

func (s *Settings) setDefaults() {
	if s.DefaultTitle == "" {
		s.DefaultTitle = "VolaryDDNS"
	}
	if s.Logger == nil {
		s.Logger = &noopLogger{}
	}
}

type Client struct {
	serviceRouter *router.ServiceRouter
	serviceNames  []string
	logger        Erroer
}

// New creates a notification client for the given settings.
// Without any address, the client is a no-op.
func New(settings Settings) (client *Client, err error) {
	settings.setDefaults()

	for i, address := range settings.Addresses {
		settings.Addresses[i], err = addDefaultTitle(address, settings.DefaultTitle)
		if err != nil {
			return nil, fmt.Errorf("address %d of %d: %w",
				i+1, len(settings.Addresses), err)
		}
	}

	serviceRouter, err := shoutrrr.CreateSender(settings.Addresses...)
	if err != nil {
		return nil, fmt.Errorf("creating service router: %w", err)
	}

	serviceNames := make([]string, len(settings.Addresses))
	for i, address := range settings.Addresses {
		serviceNames[i] = strings.Split(address, ":")[0]
	}

	return &Client{
		serviceRouter: serviceRouter,
		serviceNames:  serviceNames,
		logger:        settings.Logger,
	}, nil
}

// Notify sends the message to every configured service. Delivery
// errors are logged and not returned, since a failed notification
// must not fail the DNS update itself.
func (c *Client) Notify(message string) {
	errs := c.serviceRouter.Send(message, nil)
	for i, err := range errs {
		if err != nil {
			c.logger.Error(c.serviceNames[i] + ": " + err.Error())
		}
	}
}

func addDefaultTitle(address, defaultTitle string) (
	updatedAddress string, err error) {
	u, err := url.Parse(address)
	if err != nil {
		return "", fmt.Errorf("parsing address as url: %w", err)
	}

	urlValues := u.Query()
	if urlValues.Has("title") {
		return address, nil
	}

	urlValues.Set("title", defaultTitle)
	u.RawQuery = urlValues.Encode()
	return u.String(), nil
}

type noopLogger struct{}

func (l noopLogger) Error(_ string) {}
