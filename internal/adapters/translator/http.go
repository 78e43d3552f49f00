// Package translator holds the transport shared by the translation engine
// adapters.
package translator

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	ProviderGoogle         = "google"
	ProviderLibreTranslate = "libretranslate"

	// DesktopUserAgent is sent to endpoints that reject unknown clients.
	DesktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/94.0.4606.81 Safari/537.36"

	maxErrorBody = 500
	maxBodyBytes = 4 << 20
)

var ErrUnexpectedResponse = errors.New("unexpected translator response")

// NewHTTPClient builds a client honouring an explicit proxy URL, or the
// HTTP_PROXY/HTTPS_PROXY environment when proxyURL is empty. A zero timeout
// means requests never time out.
func NewHTTPClient(proxyURL string, timeout time.Duration) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if proxyURL != "" {
		parsed, err := url.Parse(proxyURL)
		if err != nil {
			return nil, fmt.Errorf("parse proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(parsed)
	} else {
		transport.Proxy = http.ProxyFromEnvironment
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}

// ReadBody reads a bounded response body and turns non-200 statuses into
// errors carrying the start of the body.
func ReadBody(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read translator response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translator returned status %d: %s", resp.StatusCode, truncate(string(body), maxErrorBody))
	}

	return body, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
