package updater

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volarydns/volary-ddns/internal/config"
)

func Test_Client_Update(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		status     int
		response   string
		errWrapped error
		errMessage string
	}{
		"success_plain": {
			status:   http.StatusOK,
			response: "Updated OK",
		},
		"success_json": {
			status:   http.StatusOK,
			response: `{"status":"success","ip":"1.2.3.4"}`,
		},
		"rejected_error_field": {
			status:     http.StatusBadRequest,
			response:   `{"error":"invalid token"}`,
			errWrapped: ErrUpdateRejected,
			errMessage: "update rejected by the API: " +
				"HTTP 400: invalid token",
		},
		"rejected_message_field": {
			status:     http.StatusForbidden,
			response:   `{"message":"token expired"}`,
			errWrapped: ErrUpdateRejected,
			errMessage: "update rejected by the API: " +
				"HTTP 403: token expired",
		},
		"rejected_raw_body": {
			status:     http.StatusInternalServerError,
			response:   "internal server error",
			errWrapped: ErrUpdateRejected,
			errMessage: "update rejected by the API: " +
				"HTTP 500: internal server error",
		},
		"ok_status_without_keyword": {
			status:     http.StatusOK,
			response:   "hello world",
			errWrapped: ErrUpdateRejected,
			errMessage: "update rejected by the API: " +
				"HTTP 200: hello world",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, http.MethodPost, r.Method)
					assert.Equal(t, "/api/update", r.URL.Path)
					assert.Equal(t, "application/json",
						r.Header.Get("Content-Type"))
					assert.Equal(t, "VolaryDDNS-Script/1.0",
						r.Header.Get("User-Agent"))

					var request updateRequest
					err := json.NewDecoder(r.Body).Decode(&request)
					require.NoError(t, err)
					assert.Equal(t, "secret", request.Token)
					assert.Equal(t, "1.2.3.4", request.IP)

					w.WriteHeader(testCase.status)
					_, _ = w.Write([]byte(testCase.response))
				}))
			t.Cleanup(server.Close)

			client := NewClient(server.Client(), config.Update{
				Token:     "secret",
				BaseURL:   server.URL,
				UserAgent: "VolaryDDNS-Script/1.0",
			}, noopLogger{})

			err := client.Update(context.Background(), "1.2.3.4")

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_Client_Update_transportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(
		func(http.ResponseWriter, *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := NewClient(&http.Client{}, config.Update{
		Token:     "secret",
		BaseURL:   serverURL,
		UserAgent: "VolaryDDNS-Script/1.0",
	}, noopLogger{})

	err := client.Update(context.Background(), "1.2.3.4")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "doing http request: ")
}

func Test_isUpdateSuccess(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		statusCode int
		body       string
		success    bool
	}{
		"ok_with_success":    {http.StatusOK, "success", true},
		"ok_with_updated":    {http.StatusOK, "Record Updated", true},
		"ok_with_ok":         {http.StatusOK, "OK", true},
		"ok_uppercase":       {http.StatusOK, "SUCCESS", true},
		"ok_no_keyword":      {http.StatusOK, "done", false},
		"bad_request":        {http.StatusBadRequest, "success", false},
		"server_error":       {http.StatusInternalServerError, "ok", false},
		"created_with_ok":    {http.StatusCreated, "ok", true},
		"redirect_keyword":   {http.StatusNoContent, "updated", true},
		"ok_empty_body":      {http.StatusOK, "", false},
		"keyword_in_message": {http.StatusOK, `{"status":"updated"}`, true},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			success := isUpdateSuccess(testCase.statusCode, testCase.body)

			assert.Equal(t, testCase.success, success)
		})
	}
}

func Test_extractAPIError(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		statusCode int
		body       string
		message    string
	}{
		"json_error_field": {
			statusCode: http.StatusBadRequest,
			body:       `{"error":"invalid token"}`,
			message:    "HTTP 400: invalid token",
		},
		"json_message_field": {
			statusCode: http.StatusUnauthorized,
			body:       `{"message":"unauthorized"}`,
			message:    "HTTP 401: unauthorized",
		},
		"json_error_preferred_over_message": {
			statusCode: http.StatusBadRequest,
			body:       `{"error":"bad ip","message":"other"}`,
			message:    "HTTP 400: bad ip",
		},
		"json_without_known_fields": {
			statusCode: http.StatusBadRequest,
			body:       `{"detail":"nope"}`,
			message:    `HTTP 400: {"detail":"nope"}`,
		},
		"raw_text": {
			statusCode: http.StatusBadGateway,
			body:       "bad gateway",
			message:    "HTTP 502: bad gateway",
		},
		"multiline_raw_text": {
			statusCode: http.StatusBadGateway,
			body:       "bad\r\ngateway",
			message:    "HTTP 502: badgateway",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			message := extractAPIError(testCase.statusCode, testCase.body)

			assert.Equal(t, testCase.message, message)
		})
	}
}
