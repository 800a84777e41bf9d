package security

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestValidateExternalURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rawURL  string
		wantErr string
	}{
		{"httpsPublicHost", "https://example.com/path?q=1", ""},
		{"httpPublicHost", "http://example.com", ""},
		{"publicIPv4", "https://8.8.8.8", ""},
		{"publicHostWithPort", "https://example.com:8443", ""},
		{"ipv6GlobalLiteral", "https://[2606:4700::1111]/", ""},
		{"fileScheme", "file:///etc/passwd", "blocked scheme: file"},
		{"javascriptScheme", "javascript:alert(1)", "blocked scheme: javascript"},
		{"dataScheme", "data:text/html,hi", "blocked scheme: data"},
		{"ftpScheme", "ftp://example.com", "blocked scheme: ftp"},
		{"localhost", "https://localhost/admin", "blocked host: localhost"},
		{"localhostWithPort", "http://localhost:3000", "blocked host: localhost"},
		{"loopbackIPv4", "http://127.0.0.1", "blocked host: 127.0.0.1"},
		{"unspecified", "http://0.0.0.0:8080", "blocked host: 0.0.0.0"},
		{"loopbackIPv6", "http://[::1]:9000", "blocked host: ::1"},
		{"tenSlashEight", "http://10.0.0.5", "blocked private IP: 10.0.0.5"},
		{"tenUpperBound", "https://10.255.255.255", "blocked private IP: 10.255.255.255"},
		{"oneSevenTwo", "http://172.16.0.1", "blocked private IP: 172.16.0.1"},
		{"oneSevenTwoUpper", "http://172.31.254.1", "blocked private IP: 172.31.254.1"},
		{"oneNineTwo", "http://192.168.1.1/router", "blocked private IP: 192.168.1.1"},
		// 172.32.0.0 is outside 172.16.0.0/12.
		{"justOutsideOneSevenTwo", "http://172.32.0.1", ""},
		// Hostnames that merely resolve to private addresses pass; this is
		// a pre-connection check only.
		{"internalSoundingHostname", "https://intranet.corp", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateExternalURL(mustParse(t, tt.rawURL))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateExternalURLNil(t *testing.T) {
	t.Parallel()
	assert.Error(t, ValidateExternalURL(nil))
}
