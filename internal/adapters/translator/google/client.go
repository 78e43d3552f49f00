package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/cliptranslate/internal/adapters/translator"
	"github.com/bnema/cliptranslate/internal/domain"
	"github.com/bnema/cliptranslate/internal/ports"
)

const DefaultBaseURL = "https://translate.googleapis.com"

// Client talks to the keyless endpoint used by the Google Translate web
// widget.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

var _ ports.Translator = (*Client)(nil)

type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.UserAgent == "" {
		opts.UserAgent = translator.DesktopUserAgent
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: opts.HTTPClient,
		userAgent:  opts.UserAgent,
	}
}

func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrEmptyText
	}

	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", sourceLang)
	query.Set("tl", targetLang)
	query.Set("dt", "t")
	query.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/translate_a/single?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create translate request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request google translation: %w", err)
	}
	defer resp.Body.Close()

	body, err := translator.ReadBody(resp)
	if err != nil {
		return "", err
	}

	return parseTranslation(body)
}

func (c *Client) SupportedLanguages(ctx context.Context) ([]domain.Language, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return domain.SupportedLanguages(), nil
}

// parseTranslation joins the translated segments of a response shaped like
// [[["ciao","hello",null,null,10], ...], null, "en", ...].
func parseTranslation(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("%w: decode google response: %v", translator.ErrUnexpectedResponse, err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("%w: empty google response", translator.ErrUnexpectedResponse)
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("%w: decode google segments: %v", translator.ErrUnexpectedResponse, err)
	}

	var b strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(segment[0], &part); err != nil {
			continue
		}
		b.WriteString(part)
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("%w: no translated segments", translator.ErrUnexpectedResponse)
	}

	return b.String(), nil
}
