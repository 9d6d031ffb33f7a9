package generator_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/toon-tailor/internal/clients/generator"
	"github.com/KirkDiggler/toon-tailor/internal/errors"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

type OpenAIClientTestSuite struct {
	suite.Suite
	ctx     context.Context
	server  *httptest.Server
	handler http.HandlerFunc
	client  generator.Client

	lastRequest chatRequest
	lastHeader  http.Header
}

func TestOpenAIClientSuite(t *testing.T) {
	suite.Run(t, new(OpenAIClientTestSuite))
}

func (s *OpenAIClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.handler = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastHeader = r.Header.Clone()
		_ = json.NewDecoder(r.Body).Decode(&s.lastRequest)
		s.handler(w, r)
	}))

	client, err := generator.New(&generator.Config{
		APIKey:     "test-key",
		BaseURL:    s.server.URL + "/api/v1/",
		HTTPClient: s.server.Client(),
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *OpenAIClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *OpenAIClientTestSuite) respond(status int, body string) {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (s *OpenAIClientTestSuite) respondContent(content string) {
	body, err := json.Marshal(map[string]any{
		"id":    "gen-1",
		"model": generator.DefaultModel,
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	})
	s.Require().NoError(err)
	s.respond(http.StatusOK, string(body))
}

func (s *OpenAIClientTestSuite) TestGenerateStripsFences() {
	s.respondContent("```json\n{\"name\":\"Bob\"}\n```")

	out, err := s.client.Generate(s.ctx, &generator.GenerateInput{Prompt: "a grumpy dwarf"})
	s.Require().NoError(err)
	s.JSONEq(`{"name":"Bob"}`, string(out.Data))
	s.Equal(generator.DefaultModel, out.Model)
}

func (s *OpenAIClientTestSuite) TestGenerateRequestShape() {
	s.respondContent(`{"name":"Bob"}`)

	_, err := s.client.Generate(s.ctx, &generator.GenerateInput{
		Prompt:  "a grumpy dwarf",
		Context: map[string][]string{"races": {"Human", "Dwarf"}},
	})
	s.Require().NoError(err)

	s.Equal("Bearer test-key", s.lastHeader.Get("Authorization"))
	s.Equal(generator.DefaultReferer, s.lastHeader.Get("Referer"))
	s.Equal(generator.DefaultModel, s.lastRequest.Model)
	s.Require().Len(s.lastRequest.Messages, 3)
	s.Equal("system", s.lastRequest.Messages[0].Role)
	s.Equal(generator.SystemInstruction, s.lastRequest.Messages[0].Content)
	s.Contains(s.lastRequest.Messages[1].Content, `"Dwarf"`)
	s.Equal("user", s.lastRequest.Messages[2].Role)
	s.Equal("a grumpy dwarf", s.lastRequest.Messages[2].Content)
}

func (s *OpenAIClientTestSuite) TestGenerateWithoutContext() {
	s.respondContent(`{}`)

	_, err := s.client.Generate(s.ctx, &generator.GenerateInput{Prompt: "anyone"})
	s.Require().NoError(err)
	s.Len(s.lastRequest.Messages, 2)
}

func (s *OpenAIClientTestSuite) TestGenerateFailures() {
	testCases := []struct {
		name    string
		status  int
		body    string
		content *string
		code    errors.Code
		reason  string
		message string
	}{
		{
			name:    "provider error object",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"message":"No auth credentials found","code":401}}`,
			code:    errors.CodeUnauthenticated,
			reason:  generator.ReasonRequest,
			message: "No auth credentials found",
		},
		{
			name:    "provider error string",
			status:  http.StatusTooManyRequests,
			body:    `{"error":"Rate limit exceeded"}`,
			code:    errors.CodeResourceExhausted,
			reason:  generator.ReasonRequest,
			message: "Rate limit exceeded",
		},
		{
			name:    "unparseable error body",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			code:    errors.CodeUnavailable,
			reason:  generator.ReasonRequest,
			message: generator.MessageRequest,
		},
		{
			name:    "no choices",
			status:  http.StatusOK,
			body:    `{"id":"gen-1","choices":[]}`,
			code:    errors.CodeUnavailable,
			reason:  generator.ReasonNoContent,
			message: generator.MessageNoContent,
		},
		{
			name:    "empty content",
			status:  http.StatusOK,
			body:    `{"id":"gen-1","choices":[{"index":0,"message":{"role":"assistant","content":""}}]}`,
			code:    errors.CodeUnavailable,
			reason:  generator.ReasonNoContent,
			message: generator.MessageNoContent,
		},
		{
			name:    "whitespace content",
			status:  http.StatusOK,
			body:    `{"id":"gen-1","choices":[{"index":0,"message":{"role":"assistant","content":"  \n\t "}}]}`,
			code:    errors.CodeInvalidArgument,
			reason:  generator.ReasonInvalidData,
			message: generator.MessageInvalidData,
		},
		{
			name:    "empty fenced block",
			status:  http.StatusOK,
			body:    `{"id":"gen-1","choices":[{"index":0,"message":{"role":"assistant","content":"` + "```json\\n```" + `"}}]}`,
			code:    errors.CodeInvalidArgument,
			reason:  generator.ReasonInvalidData,
			message: generator.MessageInvalidData,
		},
		{
			name:    "prose instead of json",
			status:  http.StatusOK,
			body:    `{"id":"gen-1","choices":[{"index":0,"message":{"role":"assistant","content":"Here is Bob!"}}]}`,
			code:    errors.CodeInvalidArgument,
			reason:  generator.ReasonInvalidData,
			message: generator.MessageInvalidData,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.respond(tc.status, tc.body)

			out, err := s.client.Generate(s.ctx, &generator.GenerateInput{Prompt: "anyone"})
			s.Require().Error(err)
			s.Nil(out)
			s.Equal(tc.code, errors.GetCode(err))
			s.True(errors.HasReason(err, tc.reason), "expected reason %s, got %v", tc.reason, err)
			s.Equal(tc.message, errors.GetMessage(err))
		})
	}
}

func (s *OpenAIClientTestSuite) TestGenerateAbandonedOnDeadline() {
	release := make(chan struct{})
	defer close(release)
	s.handler = func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}

	ctx, cancel := context.WithTimeout(s.ctx, 50*time.Millisecond)
	defer cancel()

	_, err := s.client.Generate(ctx, &generator.GenerateInput{Prompt: "slow"})
	s.Require().Error(err)
	s.True(errors.IsDeadlineExceeded(err))
}

func (s *OpenAIClientTestSuite) TestGenerateRequiresPrompt() {
	_, err := s.client.Generate(s.ctx, &generator.GenerateInput{Prompt: "  "})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.client.Generate(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OpenAIClientTestSuite) TestGenerateUnserializableContext() {
	_, err := s.client.Generate(s.ctx, &generator.GenerateInput{Prompt: "x", Context: make(chan int)})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OpenAIClientTestSuite) TestCustomModelAndReferer() {
	client, err := generator.New(&generator.Config{
		BaseURL:    s.server.URL,
		Model:      "openai/gpt-4o-mini",
		Referer:    "https://example.test/app",
		HTTPClient: s.server.Client(),
	})
	s.Require().NoError(err)
	s.respondContent(`{"name":"Zed"}`)

	_, err = client.Generate(s.ctx, &generator.GenerateInput{Prompt: "zed"})
	s.Require().NoError(err)
	s.Equal("openai/gpt-4o-mini", s.lastRequest.Model)
	s.Equal("https://example.test/app", s.lastHeader.Get("Referer"))
}

func (s *OpenAIClientTestSuite) TestConfigValidation() {
	_, err := generator.New(nil)
	s.Error(err)

	_, err = generator.New(&generator.Config{BaseURL: "ftp://example.test"})
	s.Error(err)

	_, err = generator.New(&generator.Config{Timeout: -time.Second})
	s.Error(err)
}

func TestParseContent(t *testing.T) {
	suite.Run(t, new(ParseContentTestSuite))
}

type ParseContentTestSuite struct {
	suite.Suite
}

func (s *ParseContentTestSuite) TestParseContent() {
	testCases := []struct {
		name     string
		content  string
		expected string
		valid    bool
	}{
		{name: "plain object", content: `{"name":"Bob"}`, expected: `{"name":"Bob"}`, valid: true},
		{name: "json fence", content: "```json\n{\"name\":\"Bob\"}\n```", expected: `{"name":"Bob"}`, valid: true},
		{name: "bare fence", content: "```\n{\"level\":2}\n```", expected: `{"level":2}`, valid: true},
		{name: "padded", content: "\n\n  {\"a\":1}  \n", expected: `{"a":1}`, valid: true},
		{name: "array still parses", content: `[1,2]`, expected: `[1,2]`, valid: true},
		{name: "fence only", content: "```json\n```", valid: false},
		{name: "prose", content: "Sure! Here is your character.", valid: false},
		{name: "truncated", content: "```json\n{\"name\":", valid: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			data, err := generator.ParseContent(tc.content)
			if !tc.valid {
				s.Require().Error(err)
				s.True(errors.HasReason(err, generator.ReasonInvalidData))
				return
			}
			s.Require().NoError(err)
			s.JSONEq(tc.expected, string(data))
		})
	}
}
