package libre

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/bnema/cliptranslate/internal/adapters/translator"
	"github.com/bnema/cliptranslate/internal/domain"
	"github.com/bnema/cliptranslate/internal/ports"
)

const DefaultBaseURL = "http://localhost:5000"

// Client talks to a LibreTranslate server.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ ports.Translator = (*Client)(nil)

type Options struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		httpClient: opts.HTTPClient,
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

type languageResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrEmptyText
	}

	payload, err := json.Marshal(translateRequest{
		Q:      text,
		Source: sourceLang,
		Target: targetLang,
		Format: "text",
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("encode translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request libretranslate translation: %w", err)
	}
	defer resp.Body.Close()

	body, err := translator.ReadBody(resp)
	if err != nil {
		return "", err
	}

	var decoded translateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("%w: decode libretranslate response: %v", translator.ErrUnexpectedResponse, err)
	}
	if decoded.Error != "" {
		return "", fmt.Errorf("%w: %s", translator.ErrUnexpectedResponse, decoded.Error)
	}
	if decoded.TranslatedText == "" {
		return "", fmt.Errorf("%w: empty translation", translator.ErrUnexpectedResponse)
	}

	return decoded.TranslatedText, nil
}

func (c *Client) SupportedLanguages(ctx context.Context) ([]domain.Language, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/languages", nil)
	if err != nil {
		return nil, fmt.Errorf("create languages request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request libretranslate languages: %w", err)
	}
	defer resp.Body.Close()

	body, err := translator.ReadBody(resp)
	if err != nil {
		return nil, err
	}

	var decoded []languageResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: decode libretranslate languages: %v", translator.ErrUnexpectedResponse, err)
	}

	languages := make([]domain.Language, 0, len(decoded))
	for _, lang := range decoded {
		if lang.Code == "" {
			continue
		}
		// Codes such as zh-Hans are kept as the server spells them.
		languages = append(languages, domain.Language{Code: lang.Code, Name: lang.Name})
	}
	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Code < languages[j].Code
	})

	return languages, nil
}
