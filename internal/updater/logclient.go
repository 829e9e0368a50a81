package updater

import (
	"bytes"
	"io"
	"net/http"
	"strings"
)

// makeLogClient wraps the HTTP client transport so every request
// and response of the update call is logged at debug level, with
// the token masked in logged bodies.
func makeLogClient(client *http.Client, logger DebugLogger,
	token string) (newClient *http.Client) {
	originalTransport := client.Transport
	if originalTransport == nil {
		originalTransport = http.DefaultTransport
	}

	return &http.Client{
		Timeout: client.Timeout,
		Transport: &loggingRoundTripper{
			proxied: originalTransport,
			logger:  logger,
			token:   token,
		},
	}
}

type loggingRoundTripper struct {
	proxied http.RoundTripper
	logger  DebugLogger
	token   string
}

func (lrt *loggingRoundTripper) RoundTrip(request *http.Request) (
	response *http.Response, err error) {
	lrt.logger.Debug(lrt.mask(requestToString(request)))

	response, err = lrt.proxied.RoundTrip(request)
	if err != nil {
		return response, err
	}

	lrt.logger.Debug(lrt.mask("API response: " + responseToString(response)))

	return response, nil
}

func (lrt *loggingRoundTripper) mask(s string) string {
	if lrt.token == "" {
		return s
	}
	return strings.ReplaceAll(s, lrt.token, "[masked]")
}

func requestToString(request *http.Request) (s string) {
	s = request.Method + " " + request.URL.String()
	if request.Body != nil {
		newBody, bodyString := readAndResetBody(request.Body)
		request.Body = newBody
		s += " | body: " + bodyString
	}
	return s
}

func responseToString(response *http.Response) (s string) {
	s = response.Status
	if response.Body != nil {
		newBody, bodyString := readAndResetBody(response.Body)
		response.Body = newBody
		s += " | body: " + bodyString
	}
	return s
}

func readAndResetBody(body io.ReadCloser) (
	newBody io.ReadCloser, bodyString string) {
	b, err := io.ReadAll(body)
	if err != nil {
		return body, "error reading body: " + err.Error()
	}
	bodyString = toSingleLine(string(b))
	_ = body.Close()
	newBody = io.NopCloser(bytes.NewBuffer(b))
	return newBody, bodyString
}
