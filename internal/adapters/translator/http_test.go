package translator

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClientWithExplicitProxy(t *testing.T) {
	t.Parallel()

	client, err := NewHTTPClient("http://127.0.0.1:3128", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)

	req, err := http.NewRequest(http.MethodGet, "https://translate.googleapis.com", nil)
	require.NoError(t, err)
	proxy, err := transport.Proxy(req)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3128", proxy.Host)
}

func TestNewHTTPClientWithoutTimeout(t *testing.T) {
	t.Parallel()

	client, err := NewHTTPClient("", 0)
	require.NoError(t, err)
	assert.Zero(t, client.Timeout)
}

func TestNewHTTPClientRejectsBadProxy(t *testing.T) {
	t.Parallel()

	_, err := NewHTTPClient("://bad", 0)
	require.Error(t, err)
}

func TestReadBodyReportsStatus(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Body:       io.NopCloser(strings.NewReader(strings.Repeat("x", 600))),
	}

	_, err := ReadBody(resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.True(t, strings.HasSuffix(err.Error(), "..."))

	ok := &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("{}"))}
	body, err := ReadBody(ok)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(body))
}
