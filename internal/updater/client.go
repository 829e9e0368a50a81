package updater

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/volarydns/volary-ddns/internal/config"
)

// Client updates the DNS record association at the VolaryDDNS API.
type Client struct {
	httpClient *http.Client
	url        string
	token      string
	userAgent  string
	logger     DebugLogger
}

func NewClient(httpClient *http.Client, settings config.Update,
	logger DebugLogger) *Client {
	return &Client{
		httpClient: makeLogClient(httpClient, logger, settings.Token),
		url:        strings.TrimSuffix(settings.BaseURL, "/") + "/api/update",
		token:      settings.Token,
		userAgent:  settings.UserAgent,
		logger:     logger,
	}
}

type updateRequest struct {
	Token string `json:"token"`
	IP    string `json:"ip"`
}

var (
	ErrUpdateRejected = errors.New("update rejected by the API")
)

// Update submits ip to the update endpoint and returns an error
// unless the API response indicates the record was updated.
func (c *Client) Update(ctx context.Context, ip string) (err error) {
	body, err := json.Marshal(updateRequest{
		Token: c.token,
		IP:    ip,
	})
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", c.userAgent)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("doing http request: %w", err)
	}

	responseBody, err := readAndCleanBody(response.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if isUpdateSuccess(response.StatusCode, responseBody) {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUpdateRejected,
		extractAPIError(response.StatusCode, responseBody))
}

// isUpdateSuccess reports whether the API accepted the update:
// a non-error status code together with a body containing one of
// the known success keywords. The VolaryDDNS API has no structured
// success field so this substring heuristic is the contract; keep
// any tightening of the rule inside this single predicate.
func isUpdateSuccess(statusCode int, body string) bool {
	if statusCode >= http.StatusBadRequest {
		return false
	}
	lowercased := strings.ToLower(body)
	for _, keyword := range [...]string{"success", "updated", "ok"} {
		if strings.Contains(lowercased, keyword) {
			return true
		}
	}
	return false
}

// extractAPIError extracts the error message from a rejection
// response body, which is usually JSON with an "error" or
// "message" field, falling back to the raw body text.
func extractAPIError(statusCode int, body string) (message string) {
	var errorData struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	err := json.Unmarshal([]byte(body), &errorData)
	switch {
	case err == nil && errorData.Error != "":
		message = errorData.Error
	case err == nil && errorData.Message != "":
		message = errorData.Message
	default:
		message = toSingleLine(body)
	}
	return fmt.Sprintf("HTTP %d: %s", statusCode, message)
}
