package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/volarydns/volary-ddns/pkg/publicip/ipcheck"
)

var (
	ErrStatusNotOK = errors.New("HTTP status is not OK")
	ErrIPMalformed = errors.New("IP address malformed")
)

func fetch(ctx context.Context, client *http.Client, url string) (
	publicIP string, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	response, err := client.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	err = response.Body.Close()
	if err != nil {
		return "", err
	}

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d from %s",
			ErrStatusNotOK, response.StatusCode, url)
	}

	publicIP = strings.TrimSpace(string(b))
	if !ipcheck.Valid(publicIP) {
		return "", fmt.Errorf("%w: %q from %s", ErrIPMalformed, publicIP, url)
	}

	return publicIP, nil
}
