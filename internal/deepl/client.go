package deepl

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// Tier selects the tier-prefixed v2 endpoints.
type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

// Client calls the mocked translation API over HTTP. Retryable failures
// (429, 5xx, connection errors) are retried with exponential backoff.
type Client struct {
	httpClient       *resty.Client
	authKey          string
	tier             Tier
	maxRetryAttempts uint
}

// NewClient creates a Client for the server at baseURL. The auth key is
// sent in the body of v2 calls and in the authorization header of v3
// calls; the server only rejects empty keys.
func NewClient(baseURL, authKey string, tier Tier, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "DeepL-Auth-Key "+authKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		authKey:          authKey,
		tier:             tier,
		maxRetryAttempts: retryAttempts,
	}
}

// Close releases the underlying HTTP client.
func (client *Client) Close() error {
	return client.httpClient.Close()
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

func (client *Client) withRetry(ctx context.Context, call func() error) error {
	return retry.Do(
		func() error {
			if err := call(); err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
}

type messagePayload struct {
	Message string `json:"message"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// Health checks the server's reachability probe and returns its message.
func (client *Client) Health(ctx context.Context) (string, error) {
	var result messagePayload
	if err := client.withRetry(ctx, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetResult(&messagePayload{}).
			Get("/")
		if err != nil {
			return fmt.Errorf("client.R.Get > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		result = *response.Result().(*messagePayload)
		return nil
	}); err != nil {
		return "", err
	}
	return result.Message, nil
}

type translateBody struct {
	AuthKey    string   `json:"auth_key"`
	TargetLang string   `json:"target_lang"`
	SourceLang string   `json:"source_lang,omitempty"`
	Text       []string `json:"text"`
}

type translationsPayload struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// Translate returns one translation per input text.
func (client *Client) Translate(ctx context.Context, request TranslateRequest) ([]string, error) {
	var result translationsPayload
	if err := client.withRetry(ctx, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetBody(translateBody{
				AuthKey:    client.authKey,
				TargetLang: request.TargetLang,
				SourceLang: request.SourceLang,
				Text:       request.Texts,
			}).
			SetResult(&translationsPayload{}).
			Post(client.v2Path("translate"))
		if err != nil {
			return fmt.Errorf("client.R.Post > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		result = *response.Result().(*translationsPayload)
		return nil
	}); err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(result.Translations))
	for _, translation := range result.Translations {
		texts = append(texts, translation.Text)
	}
	return texts, nil
}

type usageBody struct {
	AuthKey string `json:"auth_key"`
}

// Usage reports the tier's character count and limit.
func (client *Client) Usage(ctx context.Context) (Usage, error) {
	var result Usage
	if err := client.withRetry(ctx, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetBody(usageBody{AuthKey: client.authKey}).
			SetResult(&Usage{}).
			Post(client.v2Path("usage"))
		if err != nil {
			return fmt.Errorf("client.R.Post > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		result = *response.Result().(*Usage)
		return nil
	}); err != nil {
		return Usage{}, err
	}
	return result, nil
}

type languagesBody struct {
	Type    string `json:"type"`
	AuthKey string `json:"auth_key"`
}

// Languages returns the supported languages for the direction, which must
// be "source" or "target". The server reports an unknown direction as an
// error payload with status 200; that payload surfaces here as an error.
func (client *Client) Languages(ctx context.Context, direction string) ([]Language, error) {
	var result []Language
	if err := client.withRetry(ctx, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetBody(languagesBody{
				Type:    direction,
				AuthKey: client.authKey,
			}).
			Post(client.v2Path("languages"))
		if err != nil {
			return fmt.Errorf("client.R.Post > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}

		body := response.String()
		var payload errorPayload
		if err := json.Unmarshal([]byte(body), &payload); err == nil && payload.Error != "" {
			return retry.Unrecoverable(fmt.Errorf("languages(%s): %s", direction, payload.Error))
		}
		if err := json.Unmarshal([]byte(body), &result); err != nil {
			return fmt.Errorf("json.Unmarshal > %w. Content: %s", err, body)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateGlossary stores a new glossary and returns the stored record.
func (client *Client) CreateGlossary(ctx context.Context, request GlossaryRequest) (Glossary, error) {
	var result Glossary
	if err := client.withRetry(ctx, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetBody(request).
			SetResult(&Glossary{}).
			Post("/v3/glossaries")
		if err != nil {
			return fmt.Errorf("client.R.Post > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		result = *response.Result().(*Glossary)
		return nil
	}); err != nil {
		return Glossary{}, err
	}
	return result, nil
}

type glossaryListPayload struct {
	Glossaries []Glossary `json:"glossaries"`
}

// ListGlossaries returns all stored glossaries.
func (client *Client) ListGlossaries(ctx context.Context) ([]Glossary, error) {
	var result glossaryListPayload
	if err := client.withRetry(ctx, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetResult(&glossaryListPayload{}).
			Get("/v3/glossaries")
		if err != nil {
			return fmt.Errorf("client.R.Get > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		result = *response.Result().(*glossaryListPayload)
		return nil
	}); err != nil {
		return nil, err
	}
	return result.Glossaries, nil
}

// PatchGlossary renames the glossary and merges in the given dictionaries.
func (client *Client) PatchGlossary(ctx context.Context, glossaryID string, request GlossaryRequest) error {
	return client.withRetry(ctx, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetBody(request).
			Patch("/v3/glossaries/" + glossaryID)
		if err != nil {
			return fmt.Errorf("client.R.Patch > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		return nil
	})
}

// DeleteGlossary removes the glossary.
func (client *Client) DeleteGlossary(ctx context.Context, glossaryID string) error {
	return client.withRetry(ctx, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			Delete("/v3/glossaries/" + glossaryID)
		if err != nil {
			return fmt.Errorf("client.R.Delete > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		return nil
	})
}

type languagePairsPayload struct {
	SupportedLanguages []LanguagePair `json:"supported_languages"`
}

// GlossaryLanguagePairs returns the static supported pair list.
func (client *Client) GlossaryLanguagePairs(ctx context.Context) ([]LanguagePair, error) {
	var result languagePairsPayload
	if err := client.withRetry(ctx, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetResult(&languagePairsPayload{}).
			Get("/v3/glossary-language-pairs")
		if err != nil {
			return fmt.Errorf("client.R.Get > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}
		result = *response.Result().(*languagePairsPayload)
		return nil
	}); err != nil {
		return nil, err
	}
	return result.SupportedLanguages, nil
}

func (client *Client) v2Path(operation string) string {
	return fmt.Sprintf("/%s/v2/%s", client.tier, operation)
}
