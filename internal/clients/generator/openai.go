package generator

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/KirkDiggler/toon-tailor/internal/errors"
)

// DefaultTimeout bounds one completion round trip
const DefaultTimeout = 2 * time.Minute

// Config contains configuration for the OpenAI-compatible client
type Config struct {
	// APIKey may be empty; the provider then rejects the request
	APIKey  string
	BaseURL string
	Model   string
	// Referer identifies the app to the provider
	Referer string
	Timeout time.Duration
	// HTTPClient replaces the default client, mainly for tests
	HTTPClient *http.Client
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.BaseURL != "" && !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		vb.Field("BaseURL", "must be an http or https URL")
	}
	if cfg.Timeout < 0 {
		vb.Field("Timeout", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	api   *openai.Client
	model string
}

// New creates a generation client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = DefaultBaseURL
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	referer := cfg.Referer
	if referer == "" {
		referer = DefaultReferer
	}
	clientConfig.HTTPClient = &headerDoer{client: httpClient, referer: referer}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &client{
		api:   openai.NewClientWithConfig(clientConfig),
		model: model,
	}, nil
}

func (c *client) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil || strings.TrimSpace(input.Prompt) == "" {
		return nil, errors.InvalidArgument("prompt is required")
	}

	messages, err := buildMessages(input)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "requesting character generation", "model", c.model, "prompt_length", len(input.Prompt))

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.FromContext(ctxErr, "character generation abandoned")
		}
		if errors.IsContext(err) {
			return nil, errors.FromContext(err, "character generation abandoned")
		}
		slog.ErrorContext(ctx, "character generation request failed", "model", c.model, "error", err)
		return nil, requestError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		slog.ErrorContext(ctx, "character generation returned no content", "model", c.model, "choices", len(resp.Choices))
		return nil, errors.Unavailable(MessageNoContent).WithReason(ReasonNoContent)
	}

	data, err := ParseContent(resp.Choices[0].Message.Content)
	if err != nil {
		slog.ErrorContext(ctx, "character generation returned invalid data", "model", c.model, "error", err)
		return nil, err
	}

	model := resp.Model
	if model == "" {
		model = c.model
	}
	return &GenerateOutput{Data: data, Model: model}, nil
}

func buildMessages(input *GenerateInput) ([]openai.ChatCompletionMessage, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: SystemInstruction},
	}
	if input.Context != nil {
		guide, err := json.Marshal(input.Context)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "generation context must be JSON serializable")
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: "Use only these options where they apply: " + string(guide),
		})
	}
	return append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: input.Prompt,
	}), nil
}

var fenceReplacer = strings.NewReplacer("```json", "", "```", "")

// ParseContent strips markdown code fences from a completion and checks
// that the rest is JSON
func ParseContent(content string) (json.RawMessage, error) {
	cleaned := strings.TrimSpace(fenceReplacer.Replace(content))
	if cleaned == "" || !json.Valid([]byte(cleaned)) {
		return nil, errors.InvalidArgument(MessageInvalidData).WithReason(ReasonInvalidData)
	}
	return json.RawMessage(cleaned), nil
}

// requestError prefers the provider's own message, falling back to
// MessageRequest when the error body could not be read
func requestError(err error) error {
	var apiErr *openai.APIError
	if stderrors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = MessageRequest
		}
		return errors.WrapWithCode(err, statusCode(apiErr.HTTPStatusCode), message).
			WithReason(ReasonRequest).
			WithMeta("status", apiErr.HTTPStatusCode)
	}

	var reqErr *openai.RequestError
	if stderrors.As(err, &reqErr) {
		message := providerMessage(reqErr.Body)
		if message == "" {
			message = MessageRequest
		}
		return errors.WrapWithCode(err, statusCode(reqErr.HTTPStatusCode), message).
			WithReason(ReasonRequest).
			WithMeta("status", reqErr.HTTPStatusCode)
	}

	return errors.WrapWithCode(err, errors.CodeUnavailable, MessageRequest).WithReason(ReasonRequest)
}

// providerMessage reads {"error": "..."} bodies, which the client library
// does not decode itself
func providerMessage(body []byte) string {
	var payload struct {
		Error json.RawMessage `json:"error"`
	}
	if len(body) == 0 || json.Unmarshal(body, &payload) != nil || len(payload.Error) == 0 {
		return ""
	}
	var message string
	if json.Unmarshal(payload.Error, &message) == nil {
		return message
	}
	var nested struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(payload.Error, &nested) == nil {
		return nested.Message
	}
	return ""
}

func statusCode(status int) errors.Code {
	switch status {
	case http.StatusUnauthorized:
		return errors.CodeUnauthenticated
	case http.StatusForbidden:
		return errors.CodePermissionDenied
	case http.StatusTooManyRequests, http.StatusPaymentRequired:
		return errors.CodeResourceExhausted
	case http.StatusBadRequest:
		return errors.CodeInvalidArgument
	default:
		return errors.CodeUnavailable
	}
}

// headerDoer adds the headers the provider uses to attribute traffic
type headerDoer struct {
	client  *http.Client
	referer string
}

func (d *headerDoer) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Referer", d.referer)
	req.Header.Set("HTTP-Referer", d.referer)
	return d.client.Do(req)
}
