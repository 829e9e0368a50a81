package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ValidateProvider(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		provider   Provider
		errMessage string
	}{
		"known_provider": {
			provider: Ipify,
		},
		"unknown_provider": {
			provider:   Provider("abc"),
			errMessage: "unknown public IP echo HTTP provider: abc",
		},
		"custom_https_url": {
			provider: Provider("url:https://ip.example.com"),
		},
		"custom_url_bad_scheme": {
			provider:   Provider("url:ftp://ip.example.com"),
			errMessage: `custom public IP echo URL is not valid: scheme "ftp"`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := ValidateProvider(testCase.provider)

			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
